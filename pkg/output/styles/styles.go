// Package styles defines the lipgloss styling used for dupfinder's
// top-level terminal output.
//
// All styles use semantic names and adaptive colors that adjust to
// light and dark terminal themes. Styles are built in code: dupfinder
// deliberately reads nothing from disk besides the folder it scans.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

func init() {
	colors := map[string]lipgloss.AdaptiveColor{
		"error":   {Light: "#D70000", Dark: "#FF5F5F"},
		"warning": {Light: "#AF8700", Dark: "#FFD700"},
		"success": {Light: "#008700", Dark: "#5FFF5F"},
		"muted":   {Light: "#6C6C6C", Dark: "#8A8A8A"},
	}

	StyleRegistry = map[string]lipgloss.Style{
		"Error":   lipgloss.NewStyle().Bold(true).Foreground(colors["error"]),
		"Warning": lipgloss.NewStyle().Foreground(colors["warning"]),
		"Success": lipgloss.NewStyle().Foreground(colors["success"]),
		"Muted":   lipgloss.NewStyle().Foreground(colors["muted"]),
		"Header":  lipgloss.NewStyle().Bold(true),
	}
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
