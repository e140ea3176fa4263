package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Users provides access to the durable user registry.
type Users struct {
	db *sqlx.DB
}

// NewUsers constructs a Users store on top of an established connection.
func NewUsers(db *sqlx.DB) *Users {
	return &Users{db: db}
}

// Upsert registers a new user or refreshes identity fields and the
// interaction timestamp of an existing one. joined_at is set once and
// never overwritten.
func (s *Users) Upsert(ctx context.Context, id int64, username, firstName string) error {
	const q = `
		INSERT INTO users (user_id, username, first_name, joined_at, last_interaction)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username,
		    first_name = EXCLUDED.first_name,
		    last_interaction = NOW()`
	if _, err := s.db.ExecContext(ctx, q, id, username, firstName); err != nil {
		return fmt.Errorf("upsert user %d: %w", id, err)
	}
	return nil
}

// Touch updates the last interaction timestamp of a user.
func (s *Users) Touch(ctx context.Context, id int64) error {
	const q = `UPDATE users SET last_interaction = NOW() WHERE user_id = $1`
	if _, err := s.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("touch user %d: %w", id, err)
	}
	return nil
}

// MarkFinished flips the monotonic completion flag. It is never reset.
func (s *Users) MarkFinished(ctx context.Context, id int64) error {
	const q = `UPDATE users SET is_finished = TRUE WHERE user_id = $1`
	if _, err := s.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("mark finished %d: %w", id, err)
	}
	return nil
}

// SetReminded flips the at-most-once reminder flag.
func (s *Users) SetReminded(ctx context.Context, id int64) error {
	const q = `UPDATE users SET reminded = TRUE WHERE user_id = $1`
	if _, err := s.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("set reminded %d: %w", id, err)
	}
	return nil
}

// ResetReminded clears the reminder flag when a user re-enters the funnel.
func (s *Users) ResetReminded(ctx context.Context, id int64) error {
	const q = `UPDATE users SET reminded = FALSE WHERE user_id = $1`
	if _, err := s.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("reset reminded %d: %w", id, err)
	}
	return nil
}

// Get returns a user by id, or nil when the user is unknown.
func (s *Users) Get(ctx context.Context, id int64) (*User, error) {
	var u User
	const q = `SELECT user_id, username, first_name, joined_at, last_interaction, is_finished, reminded
		FROM users WHERE user_id = $1`
	if err := s.db.GetContext(ctx, &u, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

// ForReminder selects ids of unfinished, un-reminded users whose last
// interaction is older than the cutoff.
func (s *Users) ForReminder(ctx context.Context, cutoff time.Time) ([]int64, error) {
	var ids []int64
	const q = `SELECT user_id FROM users
		WHERE is_finished = FALSE AND reminded = FALSE AND last_interaction < $1`
	if err := s.db.SelectContext(ctx, &ids, q, cutoff); err != nil {
		return nil, fmt.Errorf("select reminder candidates: %w", err)
	}
	return ids, nil
}

// Page returns one page of users ordered by join time descending.
func (s *Users) Page(ctx context.Context, page, size int) ([]User, error) {
	var users []User
	const q = `SELECT user_id, username, first_name, joined_at, last_interaction, is_finished, reminded
		FROM users ORDER BY joined_at DESC LIMIT $1 OFFSET $2`
	if err := s.db.SelectContext(ctx, &users, q, size, page*size); err != nil {
		return nil, fmt.Errorf("select user page %d: %w", page, err)
	}
	return users, nil
}

// Count returns the total number of registered users.
func (s *Users) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
