package outline

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")  // Teal - view kinds
	colorGray  = lipgloss.Color("245") // Gray - summaries
	colorDim   = lipgloss.Color("240") // Dim gray - tree lines
	colorAmber = lipgloss.Color("220") // Amber - editing marker
	colorWhite = lipgloss.Color("255") // Bright white - values
)

type styles struct {
	path    lipgloss.Style
	branch  lipgloss.Style
	kind    lipgloss.Style
	summary lipgloss.Style
	editing lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		path:    r.NewStyle().Foreground(colorDim),
		branch:  r.NewStyle().Foreground(colorDim),
		kind:    r.NewStyle().Bold(true).Foreground(colorCyan),
		summary: r.NewStyle().Foreground(colorGray),
		editing: r.NewStyle().Foreground(colorAmber),
		label:   r.NewStyle().Foreground(colorGray),
		value:   r.NewStyle().Foreground(colorWhite),
	}
}
