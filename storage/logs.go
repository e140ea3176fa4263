package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Logs is the append-only conversation event store.
type Logs struct {
	db *sqlx.DB
}

func NewLogs(db *sqlx.DB) *Logs {
	return &Logs{db: db}
}

// Append records one conversation event for a user.
func (s *Logs) Append(ctx context.Context, userID int64, eventType, content string) error {
	const q = `INSERT INTO logs (user_id, event_type, content, ts) VALUES ($1, $2, $3, NOW())`
	if _, err := s.db.ExecContext(ctx, q, userID, eventType, content); err != nil {
		return fmt.Errorf("append log for %d: %w", userID, err)
	}
	return nil
}

// ByUser returns a user's full event history in insertion order.
// The id tie-break keeps entries written in the same instant ordered.
func (s *Logs) ByUser(ctx context.Context, userID int64) ([]LogEntry, error) {
	var entries []LogEntry
	const q = `SELECT id, user_id, event_type, content, ts
		FROM logs WHERE user_id = $1 ORDER BY ts, id`
	if err := s.db.SelectContext(ctx, &entries, q, userID); err != nil {
		return nil, fmt.Errorf("select logs for %d: %w", userID, err)
	}
	return entries, nil
}
