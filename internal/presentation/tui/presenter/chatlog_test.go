package presenter

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
	"github.com/yuto-t/kawaraban/internal/domain/conversation"
)

func testTheme() ChatTheme {
	return ChatTheme{
		UserLabel:  lipgloss.Color("212"),
		AgentLabel: lipgloss.Color("36"),
	}
}

func TestChatLogEmpty(t *testing.T) {
	got := ChatLog(nil, nil, testTheme(), 80)
	require.Contains(t, got, "Ask for news or just chat")
	require.Contains(t, got, "latest news")
	require.NotContains(t, got, "Last session:")
}

func TestChatLogEmptyShowsLastSessionTail(t *testing.T) {
	previous := []conversation.Turn{
		{Role: conversation.RoleUser, Text: "any news from\nyesterday?", CreatedAt: time.Now()},
		{Role: conversation.RoleAgent, Text: "Here is what happened.", CreatedAt: time.Now()},
	}

	got := ChatLog(nil, previous, testTheme(), 80)

	require.Contains(t, got, "Last session:")
	require.Contains(t, got, "You: any news from yesterday?", "recap lines are collapsed to one line")
	require.Contains(t, got, "Kawaraban: Here is what happened.")
	require.Contains(t, got, "Ask for news or just chat")
}

func TestChatLogHidesRecapOnceChatStarts(t *testing.T) {
	previous := []conversation.Turn{
		{Role: conversation.RoleAgent, Text: "old reply", CreatedAt: time.Now()},
	}
	turns := []conversation.Turn{
		{Role: conversation.RoleUser, Text: "fresh message", CreatedAt: time.Now()},
	}

	got := ChatLog(turns, previous, testTheme(), 80)

	require.Contains(t, got, "fresh message")
	require.NotContains(t, got, "Last session:")
	require.NotContains(t, got, "old reply")
}

func TestChatLogRendersTurns(t *testing.T) {
	at := time.Date(2026, 8, 24, 14, 5, 0, 0, time.UTC)
	turns := []conversation.Turn{
		{Role: conversation.RoleUser, Text: "any news?", CreatedAt: at},
		{Role: conversation.RoleAgent, Text: "Here are the headlines.", CreatedAt: at.Add(time.Second)},
	}

	got := ChatLog(turns, nil, testTheme(), 80)

	require.Contains(t, got, "You")
	require.Contains(t, got, "Kawaraban")
	require.Contains(t, got, "14:05")
	require.Contains(t, got, "any news?")
	require.Contains(t, got, "Here are the headlines.")

	userIdx := strings.Index(got, "any news?")
	agentIdx := strings.Index(got, "Here are the headlines.")
	require.Less(t, userIdx, agentIdx, "turns must render in order")
}

func TestChatLogTrimsBodies(t *testing.T) {
	turns := []conversation.Turn{
		{Role: conversation.RoleUser, Text: "  padded message  \n", CreatedAt: time.Now()},
	}

	got := ChatLog(turns, nil, testTheme(), 0)
	require.Contains(t, got, "padded message")
	require.NotContains(t, got, "  padded message  ")
}
