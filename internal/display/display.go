// Package display renders statement results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	pluralizer "github.com/gertd/go-pluralize"

	"sqlr/internal/sql"
)

var pluralizeClient = pluralizer.NewClient()

// Printer writes results, messages and errors to a writer.
type Printer struct {
	w      io.Writer
	styles styles
}

// Option configures a Printer.
type Option func(*printerConfig)

type printerConfig struct {
	color bool
}

// WithColor enables or disables colored output. Color is on by default and
// is still dropped when the writer is not a terminal.
func WithColor(on bool) Option {
	return func(c *printerConfig) { c.color = on }
}

// New creates a Printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	cfg := printerConfig{color: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := lipgloss.NewRenderer(w)
	p := &Printer{w: w, styles: plainStyles(r)}
	if cfg.color {
		p.styles = colorStyles(r)
	}
	return p
}

// Count formats n with the noun pluralized to match, e.g. "1 row", "3 rows".
func Count(word string, n int) string {
	return pluralizeClient.Pluralize(word, n, true)
}

// Println writes a plain line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Echo writes the parsed form of a statement, prefixed by its kind.
func (p *Printer) Echo(stmt sql.Statement) {
	var label string
	switch stmt.(type) {
	case *sql.CreateTableStmt:
		label = "Create table"
	case *sql.SelectStmt:
		label = "Select"
	case *sql.InsertStmt:
		label = "Insert"
	default:
		label = "Statement"
	}
	fmt.Fprintln(p.w, p.styles.echo.Render(label+": "+stmt.String()))
}

// Error writes err as "Error: <message>".
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.styles.errTag.Render("Error:")+" "+p.styles.errMsg.Render(err.Error()))
}

// Result renders a SELECT result as a grid followed by a row count.
func (p *Printer) Result(cols []string, rows []sql.Row) {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = v.String()
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.styles.border).
		Headers(cols...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.styles.header
			}
			return p.styles.cell
		})

	fmt.Fprintln(p.w, t.String())
	fmt.Fprintln(p.w, p.styles.footer.Render("("+Count("row", len(rows))+")"))
}

// Tables writes one table name per line followed by a count.
func (p *Printer) Tables(names []string) {
	for _, name := range names {
		fmt.Fprintln(p.w, name)
	}
	fmt.Fprintln(p.w, p.styles.footer.Render("("+Count("table", len(names))+")"))
}

// Help writes the meta-command summary.
func (p *Printer) Help(commands [][2]string) {
	width := 0
	for _, c := range commands {
		width = max(width, len(c[0]))
	}
	for _, c := range commands {
		fmt.Fprintf(p.w, "%s%s  %s\n", c[0], strings.Repeat(" ", width-len(c[0])), c[1])
	}
}
