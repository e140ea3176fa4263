package storage

import "time"

// User is one funnel participant with identity and progress flags.
type User struct {
	ID              int64     `db:"user_id"`
	Username        string    `db:"username"`
	FirstName       string    `db:"first_name"`
	JoinedAt        time.Time `db:"joined_at"`
	LastInteraction time.Time `db:"last_interaction"`
	IsFinished      bool      `db:"is_finished"`
	Reminded        bool      `db:"reminded"`
}

// LogEntry is an immutable audit record of a single user-visible event.
// Entries are append-only and ordered by (Timestamp, ID).
type LogEntry struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	EventType string    `db:"event_type"`
	Content   string    `db:"content"`
	Timestamp time.Time `db:"ts"`
}
