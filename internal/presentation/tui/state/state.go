// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/yuto-t/kawaraban/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	ChatView Session = iota
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Submit     key.Binding
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Clear      key.Binding
	Help       key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ScrollUp, k.ScrollDown, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear},
		{k.ScrollUp, k.ScrollDown},
		{k.Quit, k.Help},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Submit)...),
			key.WithHelp(cfg.Submit, "send"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys(splitKeys(cfg.ScrollUp)...),
			key.WithHelp(cfg.ScrollUp, "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys(splitKeys(cfg.ScrollDown)...),
			key.WithHelp(cfg.ScrollDown, "scroll down"),
		),
		Clear: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Clear)...),
			key.WithHelp(cfg.Clear, "clear chat"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
