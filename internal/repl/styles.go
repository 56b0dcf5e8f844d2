package repl

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	failColor    = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
)

// styles are bound to a renderer for the REPL's own writer, so colour is
// only emitted when that writer is a terminal.
type styles struct {
	prompt lipgloss.Style
	header lipgloss.Style
	ok     lipgloss.Style
	no     lipgloss.Style
	err    lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		prompt: r.NewStyle().Foreground(accentColor).Bold(true),
		header: r.NewStyle().Foreground(accentColor).Bold(true),
		ok:     r.NewStyle().Foreground(successColor),
		no:     r.NewStyle().Foreground(failColor),
		err:    r.NewStyle().Foreground(errorColor),
		muted:  r.NewStyle().Foreground(mutedColor),
	}
}
