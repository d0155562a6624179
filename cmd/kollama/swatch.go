package main

import (
	"kollama/internal/presentation/theme"

	"github.com/charmbracelet/lipgloss"
)

var (
	swatchOnDark  = lipgloss.Color("#000000")
	swatchOnLight = lipgloss.Color("#ffffff")
)

// renderSwatch draws text on the background color using the text color the
// contrast class calls for: dark text on bright backgrounds.
func renderSwatch(hex string, contrast theme.Contrast, text string) string {
	foreground := swatchOnLight
	if contrast == theme.ContrastDark {
		foreground = swatchOnDark
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(foreground).
		Padding(0, 1).
		Render(text)
}
