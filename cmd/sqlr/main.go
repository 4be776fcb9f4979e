// Command sqlr is an interactive in-memory SQL database.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"sqlr/internal/display"
	"sqlr/internal/logging"
	"sqlr/internal/repl"
	"sqlr/internal/session"
)

const version = "0.1.0"

// CLI defines the command-line interface for sqlr.
type CLI struct {
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Minimum log level (${enum})."`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log output format (${enum})."`
	LogFile   string `name:"log-file" type:"path" help:"Append logs to this file instead of stderr."`
	Strict    bool   `help:"Reject statements containing characters the tokenizer does not recognize."`
	CacheSize int    `name:"cache-size" default:"128" help:"Number of parsed statements to cache (0 disables)."`
	Import    string `type:"existingfile" help:"Execute the statements in this SQL file before the prompt."`
	NoColor   bool   `name:"no-color" help:"Disable colored output."`

	Version kong.VersionFlag `help:"Print version information and quit."`
}

// Run opens a session, runs the import script if any and starts the prompt.
func (c *CLI) Run(stdin io.Reader, stdout io.Writer) error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return err
	}

	var logOut io.Writer = os.Stderr
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logging.Config{Level: level, Format: format, Output: logOut})

	sess, err := session.New(
		session.WithLogger(logger),
		session.WithStrict(c.Strict),
		session.WithCacheSize(c.CacheSize),
	)
	if err != nil {
		return err
	}

	printer := display.New(stdout, display.WithColor(!c.NoColor))
	r := repl.New(sess, stdin, stdout,
		repl.WithLogger(logger.With("session_id", sess.ID())),
		repl.WithPrinter(printer),
	)

	if c.Import != "" {
		f, err := os.Open(c.Import)
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		err = r.RunScript(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("import %s: %w", c.Import, err)
		}
	}

	return r.Run(context.Background())
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sqlr"),
		kong.Description("An interactive in-memory SQL database."),
		kong.UsageOnError(),
		kong.Vars{"version": "sqlr version " + version},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(cli.Run(os.Stdin, os.Stdout))
}
