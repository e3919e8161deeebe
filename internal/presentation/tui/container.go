package tui

import (
	"fmt"

	"github.com/yuto-t/kawaraban/internal/presentation/tui/components/header"
	mainview "github.com/yuto-t/kawaraban/internal/presentation/tui/components/main"
	"github.com/yuto-t/kawaraban/internal/presentation/tui/components/modal"
	"github.com/yuto-t/kawaraban/internal/presentation/tui/components/sidebar"
	"github.com/yuto-t/kawaraban/internal/presentation/tui/state"
	"github.com/yuto-t/kawaraban/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header:  m.buildHeaderProps(),
		Sidebar: m.buildSidebarProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	return header.Props{
		Title: "Kawaraban News Chat",
		Model: m.state.Model,
		Width: m.state.Width,
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	sidebarWidth := m.state.Width - m.state.Viewport.Width - 1
	return sidebar.Props{
		Feeds:  m.state.Feeds,
		Width:  sidebarWidth,
		Height: m.state.Viewport.Height + 2,
		Title:  "Feeds",
	}
}

func (m *Model) buildMainProps() mainview.Props {
	body := m.state.Viewport.View()
	if m.state.Loading {
		body = fmt.Sprintf("%s\n\n %s Assistant is thinking...", body, m.state.Spinner.View())
	} else if m.state.Err != nil {
		body = fmt.Sprintf("%s\n\nError: %v (your message is kept, you can retry)", body, m.state.Err)
	}

	return mainview.Props{
		Width:  m.state.Viewport.Width,
		Height: m.state.Viewport.Height,
		Body:   body,
		Input:  m.state.TextInput.View(),
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Loading, m.state.StatusMessage, helpText)
}
