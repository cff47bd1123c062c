package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}
	colorSpec    = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#87D787"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
	colorError   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#FFAF5F"}
)

// styles are bound to the renderer of one output
type styles struct {
	header  lipgloss.Style
	name    lipgloss.Style
	spec    lipgloss.Style
	muted   lipgloss.Style
	label   lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:  r.NewStyle().Bold(true).Foreground(colorAccent),
		name:    r.NewStyle().Bold(true),
		spec:    r.NewStyle().Foreground(colorSpec),
		muted:   r.NewStyle().Foreground(colorMuted),
		label:   r.NewStyle().Foreground(colorMuted).Width(7),
		err:     r.NewStyle().Bold(true).Foreground(colorError),
		warning: r.NewStyle().Foreground(colorWarning),
	}
}
