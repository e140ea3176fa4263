// Package reminder nudges users who stalled mid-funnel.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/m3rciful/funnelbot/core/logger"
	"github.com/m3rciful/funnelbot/notify"
)

const reminderText = "Здравствуйте! Я заметила, что вы не завершили наш диалог. " +
	"Хотите продолжить путь к изменениям? Нажмите на последнюю кнопку или напишите /start, чтобы начать заново."

// CandidateStore selects stalled users and records that they were
// nudged.
type CandidateStore interface {
	ForReminder(ctx context.Context, cutoff time.Time) ([]int64, error)
	SetReminded(ctx context.Context, id int64) error
}

// MessageSender delivers plain text to a chat.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Sweep periodically reminds users whose last interaction is older
// than the staleness window. Each user is reminded at most once: the
// flag is set even when delivery fails, matching blocked-bot reality
// where retries would fail the same way.
type Sweep struct {
	store     CandidateStore
	sender    MessageSender
	staleness time.Duration
	interval  time.Duration
}

func NewSweep(store CandidateStore, sender MessageSender, staleness, interval time.Duration) *Sweep {
	return &Sweep{store: store, sender: sender, staleness: staleness, interval: interval}
}

// Run loops until the context is cancelled. Pass errors are logged and
// the loop keeps going.
func (s *Sweep) Run(ctx context.Context) {
	logger.Info(ctx, logger.SWEEP, "sweep.started",
		slog.Duration("staleness", s.staleness),
		slog.Duration("interval", s.interval))
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, logger.SWEEP, "sweep.stopped")
			return
		case <-t.C:
			if err := s.RunOnce(ctx, time.Now()); err != nil {
				logger.Warn(ctx, logger.SWEEP, "sweep.pass_failed", slog.String("error", err.Error()))
			}
		}
	}
}

// RunOnce performs one pass: select candidates, send, flag.
func (s *Sweep) RunOnce(ctx context.Context, now time.Time) error {
	ids, err := s.store.ForReminder(ctx, now.Add(-s.staleness))
	if err != nil {
		return err
	}
	for _, id := range ids {
		notify.BestEffort(ctx, logger.SWEEP, "reminder", func() error {
			return s.sender.SendMessage(ctx, id, reminderText)
		})
		if err := s.store.SetReminded(ctx, id); err != nil {
			logger.Warn(ctx, logger.SWEEP, "sweep.flag_failed",
				slog.Int64("user_id", id), slog.String("error", err.Error()))
		}
	}
	if len(ids) > 0 {
		logger.Info(ctx, logger.SWEEP, "sweep.reminded", slog.Int("count", len(ids)))
	}
	return nil
}
