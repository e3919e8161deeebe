// Package history manages persistent storage of chat transcripts.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/yuto-t/kawaraban/internal/domain/conversation"
)

// Store appends chat turns to a SQLite file. It is a log of past sessions;
// the live conversation state stays in memory and is session-scoped.
type Store struct {
	conn *sql.DB
}

// Open creates or opens the transcript database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	store := &Store{conn: conn}
	if err := store.initSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS turns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id, id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Append records one turn for the given session.
func (s *Store) Append(ctx context.Context, sessionID string, turn conversation.Turn) error {
	query := `INSERT INTO turns (session_id, role, content, created_at) VALUES (?, ?, ?, ?)`
	_, err := s.conn.ExecContext(ctx, query, sessionID, string(turn.Role), turn.Text, turn.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

// LastSessionID returns the id of the most recently written session, or
// the empty string when the log is empty.
func (s *Store) LastSessionID(ctx context.Context) (string, error) {
	row := s.conn.QueryRowContext(ctx, `SELECT session_id FROM turns ORDER BY id DESC LIMIT 1`)
	var id string
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("query last session: %w", err)
	}
	return id, nil
}

// RecentTurns returns up to limit of the most recent turns for a session,
// oldest first.
func (s *Store) RecentTurns(ctx context.Context, sessionID string, limit int) ([]conversation.Turn, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := `
	SELECT role, content, created_at FROM (
		SELECT id, role, content, created_at FROM turns
		WHERE session_id = ?
		ORDER BY id DESC
		LIMIT ?
	) ORDER BY id ASC`

	rows, err := s.conn.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var turns []conversation.Turn
	for rows.Next() {
		var role, content, createdAt string
		if err := rows.Scan(&role, &content, &createdAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		at, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			continue // Skip malformed rows
		}
		turns = append(turns, conversation.Turn{
			Role:      conversation.Role(role),
			Text:      content,
			CreatedAt: at,
		})
	}
	return turns, rows.Err()
}
