// Command kawaraban runs the news chat terminal application.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yuto-t/kawaraban/internal/application/usecase"
	"github.com/yuto-t/kawaraban/internal/domain/conversation"
	"github.com/yuto-t/kawaraban/internal/infrastructure/ai/gemini"
	"github.com/yuto-t/kawaraban/internal/infrastructure/config"
	"github.com/yuto-t/kawaraban/internal/infrastructure/feed"
	"github.com/yuto-t/kawaraban/internal/infrastructure/history"
	"github.com/yuto-t/kawaraban/internal/presentation/tui"
)

// previousTailTurns is how many turns of the last session the chat view
// recaps before the first message.
const previousTailTurns = 6

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kawaraban: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	store, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings

	// A missing API key must stop startup before any request is served.
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout(),
	})
	if err != nil {
		return err
	}

	fetcher := feed.NewFetcher(feed.NewCache())
	briefings := usecase.NewBriefingService(fetcher, cfg.MaxItems)
	chat := usecase.NewChatService(client, briefings, cfg.Feeds)

	log, err := history.Open(cfg.HistoryFile)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = log.Close() }()

	model := tui.NewModel(cfg, chat, log, lastSessionTail(log))
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// lastSessionTail loads the closing turns of the previous session. A
// history read failure only costs the recap, never startup.
func lastSessionTail(log *history.Store) []conversation.Turn {
	ctx := context.Background()
	sessionID, err := log.LastSessionID(ctx)
	if err != nil || sessionID == "" {
		return nil
	}
	turns, err := log.RecentTurns(ctx, sessionID, previousTailTurns)
	if err != nil {
		return nil
	}
	return turns
}
