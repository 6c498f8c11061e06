package menu

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Campus palette.
var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorPrompt  = lipgloss.Color("#20B9B4")
	colorPath    = lipgloss.Color("#1D9EA3")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

// styles groups the lipgloss styles bound to one output writer.
// A writer that is not a terminal gets the ASCII profile, so styling
// collapses to plain text in pipes and tests.
type styles struct {
	Title   lipgloss.Style
	Option  lipgloss.Style
	Prompt  lipgloss.Style
	Path    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		Title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		Option:  r.NewStyle(),
		Prompt:  r.NewStyle().Foreground(colorPrompt),
		Path:    r.NewStyle().Foreground(colorPath).Bold(true),
		Warning: r.NewStyle().Foreground(colorWarning),
		Error:   r.NewStyle().Foreground(colorError),
		Muted:   r.NewStyle().Foreground(colorMuted),
	}
}
