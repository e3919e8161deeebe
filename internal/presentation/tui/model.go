// Package tui provides the chat user interface model and view components.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yuto-t/kawaraban/internal/application/settings"
	"github.com/yuto-t/kawaraban/internal/application/usecase"
	"github.com/yuto-t/kawaraban/internal/domain/conversation"
	"github.com/yuto-t/kawaraban/internal/presentation/tui/presenter"
	"github.com/yuto-t/kawaraban/internal/presentation/tui/state"
	"github.com/yuto-t/kawaraban/internal/presentation/tui/update"
	"github.com/yuto-t/kawaraban/internal/presentation/tui/view"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	chat     *usecase.ChatService
	log      update.TranscriptLogger
	state    *state.ModelState
}

// NewModel creates a new application model. previous is the tail of the
// last logged session, shown before the first message of this one.
func NewModel(cfg settings.Settings, chat *usecase.ChatService, log update.TranscriptLogger, previous []conversation.Turn) *Model {
	return &Model{
		settings: cfg,
		chat:     chat,
		log:      log,
		state:    newModelState(cfg, previous),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, textinput.Blink)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			m.refreshChatLog()
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
		m.refreshChatLog()
	case update.AgentRepliedMsg:
		update.HandleAgentRepliedMsg(m.state, msg)
		m.refreshChatLog()
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state.Session == state.ChatView {
		m.state.TextInput, cmd = m.state.TextInput.Update(msg)
		cmds = append(cmds, cmd)
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Chat: m.chat,
		Log:  m.log,
	}
}

func (m *Model) refreshChatLog() {
	theme := presenter.ChatTheme{
		UserLabel:  lipgloss.Color(m.settings.Theme.UserLabel),
		AgentLabel: lipgloss.Color(m.settings.Theme.AgentLabel),
	}
	atBottom := m.state.Viewport.AtBottom()
	m.state.Viewport.SetContent(presenter.ChatLog(m.state.Turns, m.state.PreviousTurns, theme, m.state.Viewport.Width))
	if atBottom {
		m.state.Viewport.GotoBottom()
	}
}

func newModelState(cfg settings.Settings, previous []conversation.Turn) *state.ModelState {
	st := &state.ModelState{
		Session:       state.ChatView,
		Viewport:      newViewport(),
		TextInput:     newTextInput(),
		Spinner:       newSpinner(),
		Help:          help.New(),
		Keys:          state.NewKeyMap(cfg.KeyMap),
		PreviousTurns: previous,
		Feeds:         append([]string(nil), cfg.Feeds...),
		SessionID:     newSessionID(),
		Model:         cfg.Gemini.Model,
	}
	return st
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Ask for news (e.g. 'latest news'), follow up, or just chat..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	return ti
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}

func newSessionID() string {
	return fmt.Sprintf("session-%d", time.Now().UnixNano())
}
