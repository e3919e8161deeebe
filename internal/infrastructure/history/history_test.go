package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yuto-t/kawaraban/internal/domain/conversation"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAppendAndRecentTurns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	turns := []conversation.Turn{
		{Role: conversation.RoleUser, Text: "latest news", CreatedAt: base},
		{Role: conversation.RoleAgent, Text: "here you go", CreatedAt: base.Add(time.Second)},
		{Role: conversation.RoleUser, Text: "thanks", CreatedAt: base.Add(2 * time.Second)},
	}
	for _, turn := range turns {
		require.NoError(t, store.Append(ctx, "session-1", turn))
	}

	got, err := store.RecentTurns(ctx, "session-1", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, turn := range turns {
		require.Equal(t, turn.Role, got[i].Role)
		require.Equal(t, turn.Text, got[i].Text)
		require.True(t, turn.CreatedAt.Equal(got[i].CreatedAt), "turn %d timestamp mismatch", i)
	}
}

func TestRecentTurnsLimitKeepsNewest(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	for i := range 5 {
		turn := conversation.Turn{
			Role:      conversation.RoleUser,
			Text:      fmt.Sprintf("message-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, store.Append(ctx, "session-1", turn))
	}

	got, err := store.RecentTurns(ctx, "session-1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "message-3", got[0].Text)
	require.Equal(t, "message-4", got[1].Text)
}

func TestRecentTurnsScopedToSession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Append(ctx, "session-a", conversation.Turn{Role: conversation.RoleUser, Text: "a", CreatedAt: now}))
	require.NoError(t, store.Append(ctx, "session-b", conversation.Turn{Role: conversation.RoleUser, Text: "b", CreatedAt: now}))

	got, err := store.RecentTurns(ctx, "session-a", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].Text)
}

func TestLastSessionID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	id, err := store.LastSessionID(ctx)
	require.NoError(t, err)
	require.Empty(t, id, "empty log has no last session")

	require.NoError(t, store.Append(ctx, "session-a", conversation.Turn{Role: conversation.RoleUser, Text: "a", CreatedAt: now}))
	require.NoError(t, store.Append(ctx, "session-b", conversation.Turn{Role: conversation.RoleUser, Text: "b", CreatedAt: now}))

	id, err = store.LastSessionID(ctx)
	require.NoError(t, err)
	require.Equal(t, "session-b", id)
}

func TestRecentTurnsZeroLimit(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RecentTurns(context.Background(), "session-1", 0)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRecentTurnsEmptySession(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RecentTurns(context.Background(), "missing", 10)
	require.NoError(t, err)
	require.Empty(t, got)
}
