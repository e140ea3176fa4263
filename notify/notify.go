// Package notify centralizes best-effort delivery: operations whose
// failure must never propagate into the calling flow.
package notify

import (
	"context"
	"log/slog"

	"github.com/m3rciful/funnelbot/core/logger"
)

// BestEffort runs fn and swallows its error, leaving a single debug
// record behind. Used for operator notifications and other sends whose
// loss is acceptable.
func BestEffort(ctx context.Context, component *slog.Logger, action string, fn func() error) {
	if err := fn(); err != nil {
		logger.Debug(ctx, component, "notify.delivery_failed",
			slog.String("action", action),
			slog.String("error", err.Error()))
	}
}
