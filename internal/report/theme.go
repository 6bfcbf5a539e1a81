package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const ruleWidth = 60

// Theme holds the styles used for narration. It is stateless once built
// and can be shared by any number of reporters.
type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Line    lipgloss.Style
	Value   lipgloss.Style
	Command lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style
	Rule    string
}

// NewTheme builds a theme whose colour profile follows w. When color is
// false every style renders as plain text.
func NewTheme(w io.Writer, color bool) Theme {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return Theme{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#8839ef", Dark: "#c678dd"}),
		Label: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#56b6c2"}),
		Line: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#61afef"}),
		Value: r.NewStyle().
			TabWidth(lipgloss.NoTabConversion).
			Foreground(lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#61afef"}),
		Command: r.NewStyle().
			TabWidth(lipgloss.NoTabConversion).
			Foreground(lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#abb2bf"}),
		Success: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#98c379"}),
		Failure: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#e06c75"}),
		Warning: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#e5c07b"}),
		Rule: strings.Repeat("─", ruleWidth),
	}
}

// PlainTheme renders without any escape sequences.
func PlainTheme() Theme {
	return NewTheme(io.Discard, false)
}
