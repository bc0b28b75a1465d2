package ui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Styles struct {
	Frame     lipgloss.Style
	Highlight lipgloss.Style
	Help      help.Model
}

// NewStyles builds the palette on a renderer pinned to the 16-color ANSI
// profile so frames carry plain SGR codes whatever the environment says.
func NewStyles(dark bool) Styles {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI))
	r.SetColorProfile(termenv.ANSI)

	var s Styles
	if dark {
		s.Frame = r.NewStyle().Inline(true).Foreground(lipgloss.Color("7")).Background(lipgloss.Color("4"))
		s.Highlight = r.NewStyle().Inline(true).Foreground(lipgloss.Color("4")).Background(lipgloss.Color("7"))
	} else {
		s.Frame = r.NewStyle().Inline(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		s.Highlight = r.NewStyle().Inline(true).Foreground(lipgloss.Color("7")).Background(lipgloss.Color("0"))
	}

	// help text sits inside the frame style; its parts stay unstyled
	plain := r.NewStyle()
	s.Help = help.New()
	s.Help.ShortSeparator = "  "
	s.Help.Ellipsis = "..."
	s.Help.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	return s
}
