// Package header provides the title bar component.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Title string
	Model string
	Width int
}

// Render renders the header component.
func Render(p Props) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		PaddingLeft(1)

	modelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	line := titleStyle.Render(p.Title)
	if p.Model != "" {
		line += modelStyle.Render(fmt.Sprintf("  (%s)", p.Model))
	}

	return lipgloss.NewStyle().
		Width(p.Width).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("63")).
		Render(line)
}
