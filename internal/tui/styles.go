package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/harbormaster-dev/harbormaster/internal/colormath"
)

type Styles struct {
	Title    lipgloss.Style
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Success  lipgloss.Style
	Subtle   lipgloss.Style
	Error    lipgloss.Style
	Section  lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7AA2F7")).MarginBottom(1),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#C0CAF5")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#565F89")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7768E")),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BB9AF7")),
	}
}

// Swatch renders hex as a colored block labeled with its value.
func Swatch(hex string) string {
	if hex == "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#565F89")).Render(" (theme default) ")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(colormath.Contrast(hex))).
		Render(" " + hex + " ")
}
