// Package presenter converts domain data into renderable UI content.
package presenter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuto-t/kawaraban/internal/domain/conversation"
	"github.com/yuto-t/kawaraban/internal/presentation/tui/textutil"
)

// ChatTheme holds the colors used for chat labels.
type ChatTheme struct {
	UserLabel  lipgloss.Color
	AgentLabel lipgloss.Color
}

const (
	userLabel  = "You"
	agentLabel = "Kawaraban"
)

// ChatLog renders transcript turns as the viewport body. Before the first
// message of the session, the tail of the previous session is shown dimmed
// above the usage hint.
func ChatLog(turns, previous []conversation.Turn, theme ChatTheme, width int) string {
	if len(turns) == 0 {
		return emptyChatMessage(previous, width)
	}

	userStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.UserLabel)
	agentStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.AgentLabel)
	bodyStyle := lipgloss.NewStyle().PaddingLeft(2)
	if width > 4 {
		bodyStyle = bodyStyle.Width(width - 2)
	}

	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		label := agentStyle.Render(agentLabel)
		if turn.Role == conversation.RoleUser {
			label = userStyle.Render(userLabel)
		}
		b.WriteString(label)
		b.WriteString("  ")
		b.WriteString(turn.CreatedAt.Format("15:04"))
		b.WriteString("\n")
		b.WriteString(bodyStyle.Render(strings.TrimSpace(turn.Text)))
	}
	return b.String()
}

func emptyChatMessage(previous []conversation.Turn, width int) string {
	hint := strings.Join([]string{
		"",
		"  Ask for news or just chat. Examples:",
		"",
		"    latest news",
		"    news from today",
		"    news from yesterday",
		"    news from 2026-08-20",
		"",
		"  After a briefing, follow up with questions about its items.",
	}, "\n")

	if len(previous) == 0 {
		return hint
	}

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Last session:"))
	b.WriteString("\n")
	for _, turn := range previous {
		label := agentLabel
		if turn.Role == conversation.RoleUser {
			label = userLabel
		}
		line := "  " + label + ": " + textutil.SingleLine(turn.Text)
		if width > 0 {
			line = textutil.Truncate(line, width)
		}
		b.WriteString(dimStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(hint)
	return b.String()
}
