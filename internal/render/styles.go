package render

import "github.com/charmbracelet/lipgloss"

var (
	colorUp   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorDown = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	colorNew  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}

	headerStyle = lipgloss.NewStyle().Bold(true)
	upStyle     = lipgloss.NewStyle().Foreground(colorUp)
	downStyle   = lipgloss.NewStyle().Foreground(colorDown)
	newStyle    = lipgloss.NewStyle().Foreground(colorNew)
	peakStyle   = lipgloss.NewStyle().Foreground(colorUp).Bold(true)
)
