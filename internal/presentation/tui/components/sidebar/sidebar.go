// Package sidebar provides the feed list sidebar component.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuto-t/kawaraban/internal/presentation/tui/textutil"
)

// Props defines the properties for the sidebar component.
type Props struct {
	Feeds  []string
	Width  int
	Height int
	Title  string
}

// Render renders the sidebar component.
func Render(p Props) string {
	sidebarStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("63"))

	titleStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		PaddingBottom(1).
		Foreground(lipgloss.Color("205"))

	itemStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("244"))

	lines := make([]string, 0, len(p.Feeds))
	for _, feed := range p.Feeds {
		lines = append(lines, itemStyle.Render(feedLabel(feed, p.Width-3)))
	}

	return sidebarStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(p.Title),
		strings.Join(lines, "\n"),
	))
}

// feedLabel shortens a feed URL to fit the sidebar width.
func feedLabel(url string, width int) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	if width <= 0 {
		return trimmed
	}
	return textutil.Truncate(trimmed, width)
}
