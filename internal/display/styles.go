package display

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#7C3AED")
	accentColor  = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#94A3B8")
)

// styles groups the lipgloss styles a Printer renders with.
type styles struct {
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
	footer lipgloss.Style
	errTag lipgloss.Style
	errMsg lipgloss.Style
	echo   lipgloss.Style
}

func colorStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().Foreground(primaryColor).Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		border: r.NewStyle().Foreground(mutedColor),
		footer: r.NewStyle().Foreground(accentColor),
		errTag: r.NewStyle().Foreground(errorColor).Bold(true),
		errMsg: r.NewStyle().Foreground(errorColor),
		echo:   r.NewStyle().Foreground(mutedColor),
	}
}

func plainStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		border: r.NewStyle(),
		footer: r.NewStyle(),
		errTag: r.NewStyle(),
		errMsg: r.NewStyle(),
		echo:   r.NewStyle(),
	}
}
