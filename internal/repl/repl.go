// Package repl implements the interactive prompt.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"sqlr/internal/display"
	"sqlr/internal/logging"
	"sqlr/internal/session"
	"sqlr/internal/sql"
)

const (
	// Prompt is printed before each statement is read.
	Prompt = "sqlr> "

	welcome = "Welcome to the sqlr!"

	// maxLineSize bounds a single input line.
	maxLineSize = 16 << 20
)

var helpText = [][2]string{
	{".exit", "Exit the application"},
	{".tables", "List all tables"},
	{".schema <table>", "Show the CREATE TABLE statement for a table"},
	{".help", "Show this help"},
}

// REPL reads statements and meta-commands and prints their results.
type REPL struct {
	sess   *session.Session
	in     *bufio.Scanner
	w      io.Writer
	out    *display.Printer
	logger *slog.Logger
}

// Option configures a REPL.
type Option func(*REPL)

// WithLogger sets the logger used for REPL events.
func WithLogger(l *slog.Logger) Option {
	return func(r *REPL) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithPrinter replaces the default colored printer.
func WithPrinter(p *display.Printer) Option {
	return func(r *REPL) {
		if p != nil {
			r.out = p
		}
	}
}

// New creates a REPL reading from in and writing to w.
func New(sess *session.Session, in io.Reader, w io.Writer, opts ...Option) *REPL {
	r := &REPL{
		sess:   sess,
		in:     bufio.NewScanner(in),
		w:      w,
		logger: logging.Discard(),
	}
	r.in.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for _, opt := range opts {
		opt(r)
	}
	if r.out == nil {
		r.out = display.New(w)
	}
	return r
}

// Run prints the welcome line and processes input until .exit, end of
// input, or ctx is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	r.out.Println(welcome)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(r.w, Prompt)
		input, ok := r.readInput()
		if !ok {
			if err := r.in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(r.w)
			return nil
		}

		if r.Handle(input) {
			return nil
		}
	}
}

// readInput reads one logical input. A line ending in a backslash continues
// on the next line; the backslash is dropped and the parts are joined with
// a space.
func (r *REPL) readInput() (string, bool) {
	var b strings.Builder
	read := false

	for r.in.Scan() {
		read = true
		line := strings.TrimRight(r.in.Text(), " \t\r")
		if cont, found := strings.CutSuffix(line, `\`); found {
			b.WriteString(cont)
			b.WriteByte(' ')
			continue
		}
		b.WriteString(line)
		return strings.TrimSpace(b.String()), true
	}

	if read {
		return strings.TrimSpace(b.String()), true
	}
	return "", false
}

// Handle processes one trimmed input and reports whether the REPL should stop.
func (r *REPL) Handle(input string) bool {
	switch {
	case input == "":
		return false
	case strings.HasPrefix(input, "."):
		return r.command(input)
	default:
		r.statement(input)
		return false
	}
}

func (r *REPL) command(input string) bool {
	fields := strings.Fields(input)

	switch fields[0] {
	case ".exit":
		r.out.Println("Exiting the application.")
		return true
	case ".tables":
		tables, err := r.sess.ListTables()
		if err != nil {
			r.out.Error(err)
			return false
		}
		r.out.Tables(tables)
	case ".schema":
		if len(fields) != 2 {
			r.out.Println("Usage: .schema <table>")
			return false
		}
		stmt, err := r.sess.Schema(fields[1])
		if err != nil {
			r.out.Error(err)
			return false
		}
		r.out.Println(stmt.String() + ";")
	case ".help":
		r.out.Help(helpText)
	default:
		r.out.Println("Unknown command: " + input)
	}
	return false
}

func (r *REPL) statement(input string) {
	if err := r.execute(input); err != nil {
		r.out.Error(err)
	}
}

func (r *REPL) execute(input string) error {
	stmt, err := r.sess.Parse(input)
	if err != nil {
		r.logger.Debug("parse failed", slog.String("error", err.Error()))
		return err
	}

	r.out.Echo(stmt)

	res, err := r.sess.ExecStatement(stmt)
	if err != nil {
		return err
	}
	if _, ok := stmt.(*sql.SelectStmt); ok {
		r.out.Result(res.Columns, res.Rows)
	}
	return nil
}

// RunScript executes every ';'-terminated statement read from src, echoing
// each one and printing SELECT results. It stops at the first failing
// statement.
func (r *REPL) RunScript(src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	for i, stmt := range SplitStatements(string(data)) {
		if err := r.execute(stmt); err != nil {
			return &ScriptError{Index: i + 1, Statement: stmt, Err: err}
		}
	}
	return nil
}

// ScriptError reports the statement at which a script stopped.
type ScriptError struct {
	Index     int
	Statement string
	Err       error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("statement %d (%s): %v", e.Index, e.Statement, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// SplitStatements splits a script on semicolons outside quoted literals.
// Blank chunks are dropped; a final chunk without a semicolon is kept.
func SplitStatements(script string) []string {
	var (
		out   []string
		b     strings.Builder
		quote rune
	)

	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
		b.Reset()
	}

	for _, ch := range script {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == ';':
			flush()
			continue
		}
		b.WriteRune(ch)
	}
	flush()
	return out
}
