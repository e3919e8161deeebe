// Package state holds UI state types for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/yuto-t/kawaraban/internal/domain/conversation"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session       Session
	Viewport      viewport.Model
	TextInput     textinput.Model
	Spinner       spinner.Model
	Help          help.Model
	Keys          KeyMap
	Loading       bool
	Width         int
	Height        int
	Err           error
	StatusMessage string
	Turns         []conversation.Turn
	PreviousTurns []conversation.Turn
	Feeds         []string
	SessionID     string
	Model         string
}
