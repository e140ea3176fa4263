package middleware

import tele "gopkg.in/telebot.v4"

// OperatorOptions defines how operator-only checks behave.
type OperatorOptions struct {
	// IsOperator reports allow-list membership for a user id.
	IsOperator func(userID int64) bool
}

// OperatorOnlyMiddleware silently drops updates from users outside the
// operator allow-list. Non-operators get no response at all.
func OperatorOnlyMiddleware(opts OperatorOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil || opts.IsOperator == nil || !opts.IsOperator(sender.ID) {
				return nil
			}
			return next(c)
		}
	}
}
