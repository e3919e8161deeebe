// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yuto-t/kawaraban/internal/application/usecase"
	"github.com/yuto-t/kawaraban/internal/domain/conversation"
	"github.com/yuto-t/kawaraban/internal/presentation/tui/state"
)

// TranscriptLogger records exchanged turns; logging failures never break a
// chat turn.
type TranscriptLogger interface {
	Append(ctx context.Context, sessionID string, turn conversation.Turn) error
}

// Deps groups external dependencies for updates.
type Deps struct {
	Chat *usecase.ChatService
	Log  TranscriptLogger
}

// AgentRepliedMsg is emitted after the agent answered (or failed to answer)
// one user message.
type AgentRepliedMsg struct {
	UserText string
	Reply    string
	Err      error
}

// SendMessageCmd creates a command that runs one chat turn.
func SendMessageCmd(deps Deps, sessionID, text string) tea.Cmd {
	text = strings.TrimSpace(text)
	return func() tea.Msg {
		reply, err := deps.Chat.Respond(context.Background(), text)
		if err == nil && deps.Log != nil {
			now := time.Now()
			_ = deps.Log.Append(context.Background(), sessionID, conversation.Turn{Role: conversation.RoleUser, Text: text, CreatedAt: now})
			_ = deps.Log.Append(context.Background(), sessionID, conversation.Turn{Role: conversation.RoleAgent, Text: reply, CreatedAt: now})
		}
		return AgentRepliedMsg{UserText: text, Reply: reply, Err: err}
	}
}

// HandleKeyMsg processes a key press. The bool result reports whether the
// key was consumed; unconsumed keys fall through to the text input.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	switch {
	case key.Matches(msg, s.Keys.Quit):
		s.Session = state.QuitView
		return nil, true
	case key.Matches(msg, s.Keys.Help):
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	case key.Matches(msg, s.Keys.ScrollUp):
		s.Viewport.HalfViewUp()
		return nil, true
	case key.Matches(msg, s.Keys.ScrollDown):
		s.Viewport.HalfViewDown()
		return nil, true
	case key.Matches(msg, s.Keys.Clear):
		return handleClear(s, deps), true
	case key.Matches(msg, s.Keys.Submit):
		return handleSubmit(s, deps), true
	}
	return nil, false
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc":
		s.Session = state.ChatView
	}
	return nil, true
}

func handleClear(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Loading {
		return nil
	}
	if deps.Chat != nil && deps.Chat.Transcript != nil {
		deps.Chat.Transcript.Clear()
	}
	s.Turns = nil
	s.Err = nil
	s.StatusMessage = "Conversation cleared."
	return nil
}

func handleSubmit(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Loading {
		return nil
	}
	text := strings.TrimSpace(s.TextInput.Value())
	if text == "" {
		return nil
	}

	s.Turns = append(s.Turns, conversation.Turn{
		Role:      conversation.RoleUser,
		Text:      text,
		CreatedAt: time.Now(),
	})
	s.TextInput.Reset()
	s.Loading = true
	s.Err = nil
	s.StatusMessage = ""

	return tea.Batch(s.Spinner.Tick, SendMessageCmd(deps, s.SessionID, text))
}

// HandleWindowSize recomputes component dimensions.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	sidebarWidth := msg.Width / 4
	if sidebarWidth > 40 {
		sidebarWidth = 40
	}
	mainWidth := msg.Width - sidebarWidth - 1

	// Header, input border plus line, and footer each take vertical space.
	chatHeight := msg.Height - 2 - 2 - 2
	if chatHeight < 3 {
		chatHeight = 3
	}

	s.Viewport.Width = mainWidth
	s.Viewport.Height = chatHeight
	s.TextInput.Width = mainWidth - 4
}

// HandleAgentRepliedMsg applies the outcome of one chat turn.
//
// On error the user's turn stays visible and an error line is shown; the
// conversation state is preserved so the user may retry.
func HandleAgentRepliedMsg(s *state.ModelState, msg AgentRepliedMsg) {
	s.Loading = false
	if msg.Err != nil {
		s.Err = msg.Err
		s.StatusMessage = ""
		return
	}

	s.Err = nil
	s.Turns = append(s.Turns, conversation.Turn{
		Role:      conversation.RoleAgent,
		Text:      msg.Reply,
		CreatedAt: time.Now(),
	})
}
