package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gosearch/models"
)

// palette holds the Lip Gloss styles for one theme
type palette struct {
	logo    lipgloss.Style
	heading lipgloss.Style
	text    lipgloss.Style
	input   lipgloss.Style
	chip    lipgloss.Style
	button  lipgloss.Style
	status  lipgloss.Style
	help    lipgloss.Style
}

var (
	lightPalette = palette{
		logo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#374151")),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#374151")),
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")),
		input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#d1d5db")).
			Padding(0, 2),
		chip: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#d1d5db")).
			Foreground(lipgloss.Color("#374151")).
			Padding(0, 1),
		button: lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Padding(0, 2),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb")),
		help:   lipgloss.NewStyle().Faint(true),
	}

	darkPalette = palette{
		logo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4b5563")).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2),
		chip: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4b5563")).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1),
		button: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Padding(0, 2),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa")),
		help:   lipgloss.NewStyle().Faint(true),
	}
)

func paletteFor(t models.Theme) palette {
	if t.IsDark() {
		return darkPalette
	}
	return lightPalette
}

// Background for the whole screen: the web gradient has no terminal
// equivalent, so light mode uses its starting blue.
func backgroundFor(t models.Theme) lipgloss.Color {
	return lipgloss.Color(t.Pick("#60a5fa", "#111827"))
}
