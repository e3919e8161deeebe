// Package mainview provides the chat content area component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Body   string
	Input  string
}

// Render renders the chat area with the input line pinned below.
func Render(p Props) string {
	bodyStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(1)

	inputStyle := lipgloss.NewStyle().
		Width(p.Width).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color("63")).
		PaddingLeft(1)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		bodyStyle.Render(p.Body),
		inputStyle.Render(p.Input),
	)
}
