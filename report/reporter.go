// Package report renders completed-funnel transcripts and delivers
// them to operators.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/m3rciful/funnelbot/core/logger"
	"github.com/m3rciful/funnelbot/notify"
	"github.com/m3rciful/funnelbot/storage"
)

const timeLayout = "2006-01-02 15:04:05"

// UserGetter reads one user's registry row.
type UserGetter interface {
	Get(ctx context.Context, id int64) (*storage.User, error)
}

// LogReader reads a user's full transcript in insertion order.
type LogReader interface {
	ByUser(ctx context.Context, userID int64) ([]storage.LogEntry, error)
}

// DocumentSender delivers a file to a chat.
type DocumentSender interface {
	SendDocument(ctx context.Context, chatID int64, filename, caption string, content []byte) error
}

// Reporter builds completion reports and fans them out to every
// configured operator.
type Reporter struct {
	users     UserGetter
	logs      LogReader
	sender    DocumentSender
	operators []int64
}

func New(users UserGetter, logs LogReader, sender DocumentSender, operators []int64) *Reporter {
	return &Reporter{users: users, logs: logs, sender: sender, operators: operators}
}

// Deliver reads the user's current registry row and transcript and
// sends the rendered report to each operator. Per-operator failures
// are swallowed so one blocked operator does not starve the rest.
func (r *Reporter) Deliver(ctx context.Context, userID int64) error {
	user, err := r.users.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("report user %d: %w", userID, err)
	}
	entries, err := r.logs.ByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("report logs %d: %w", userID, err)
	}

	username, firstName := "Unknown", "Unknown"
	if user != nil {
		username, firstName = user.Username, user.FirstName
	}

	content := []byte(Render(userID, username, firstName, entries))
	filename := fmt.Sprintf("report_%d.txt", userID)
	caption := fmt.Sprintf("Отчет по пользователю %s (@%s)", firstName, username)

	for _, op := range r.operators {
		notify.BestEffort(ctx, logger.RPT, "operator_report", func() error {
			return r.sender.SendDocument(ctx, op, filename, caption, content)
		})
	}
	return nil
}

// Render produces the report body: a header identifying the user
// followed by one transcript line per event.
func Render(userID int64, username, firstName string, entries []storage.LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Пользователь завершил воронку:\nID: %d\nName: %s\nUsername: @%s\n\nИстория ответов:\n",
		userID, firstName, username)
	b.WriteString(Transcript(entries))
	return b.String()
}

// Transcript renders one line per event. The admin log export shares
// this rendering.
func Transcript(entries []storage.LogEntry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s] %s: %s\n", e.Timestamp.Format(timeLayout), e.EventType, e.Content)
	}
	return b.String()
}
