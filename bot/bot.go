// Package bot routes Telegram updates into the funnel machine and the
// operator surface.
package bot

import (
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/funnelbot/admin"
	"github.com/m3rciful/funnelbot/core/config"
	"github.com/m3rciful/funnelbot/core/telegram"
	"github.com/m3rciful/funnelbot/core/telegram/callbacks"
	"github.com/m3rciful/funnelbot/core/telegram/middleware"
	"github.com/m3rciful/funnelbot/funnel"
)

// Bot glues the transport to the domain handlers.
type Bot struct {
	cfg     *config.Config
	machine *funnel.Machine
	admin   *admin.Handler
}

func New(cfg *config.Config, machine *funnel.Machine, adminH *admin.Handler) *Bot {
	return &Bot{cfg: cfg, machine: machine, admin: adminH}
}

// Middlewares returns the global chain in application order.
func (b *Bot) Middlewares() []telegram.Middleware {
	mws := []telegram.Middleware{
		{Name: "recover", Use: middleware.RecoverMiddleware},
		{Name: "logger", Use: middleware.LoggerMiddleware},
	}
	if b.cfg.RateLimit.IntervalMS > 0 {
		exclude := make(map[string]struct{}, len(b.cfg.RateLimit.ExcludeUpdates))
		for _, kind := range b.cfg.RateLimit.ExcludeUpdates {
			exclude[kind] = struct{}{}
		}
		mws = append(mws, telegram.Middleware{
			Name: "rate_limit",
			Use: middleware.RateLimitMiddleware(middleware.RateLimitOptions{
				Interval: time.Duration(b.cfg.RateLimit.IntervalMS) * time.Millisecond,
				Exclude:  exclude,
			}),
		})
	}
	return mws
}

// Routes binds the endpoints. All callback tokens go through a single
// dispatcher; /conv is wrapped so non-operators get silence.
func (b *Bot) Routes() []telegram.Route {
	operatorOnly := middleware.OperatorOnlyMiddleware(middleware.OperatorOptions{
		IsOperator: b.cfg.IsOperator,
	})
	return []telegram.Route{
		{Endpoint: "/start", Handler: b.onStart},
		{Endpoint: "/conv", Handler: operatorOnly(b.onConv)},
		{Endpoint: tele.OnCallback, Handler: b.onCallback},
		{Endpoint: tele.OnText, Handler: b.onText},
	}
}

func (b *Bot) onStart(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	ctx := middleware.ContextFrom(c)
	return b.machine.Start(ctx, sender.ID, sender.Username, sender.FirstName, ctxMessenger{c})
}

func (b *Bot) onConv(c tele.Context) error {
	return b.admin.Conv(middleware.ContextFrom(c), adminMessenger{c})
}

func (b *Bot) onCallback(c tele.Context) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	// Default ack. Handlers that already responded with an alert or
	// toast make this a no-op failure, which is fine.
	defer func() { _ = c.Respond() }()

	ctx := middleware.ContextFrom(c)
	token := callbacks.CallbackKey(c)

	switch token {
	case "adm_page":
		if !b.cfg.IsOperator(sender.ID) {
			return nil
		}
		page, err := callbacks.PayloadInt(c)
		if err != nil {
			return nil
		}
		return b.admin.Page(ctx, page, adminMessenger{c})
	case "adm_search_id":
		if !b.cfg.IsOperator(sender.ID) {
			return nil
		}
		return b.admin.AskID(ctx, sender.ID, adminMessenger{c})
	}

	return b.machine.Dispatch(ctx, sender.ID, token, ctxMessenger{c})
}

// onText is only meaningful for an operator who owes us a user id.
// Everyone else's free text is ignored.
func (b *Bot) onText(c tele.Context) error {
	sender := c.Sender()
	if sender == nil || !b.cfg.IsOperator(sender.ID) {
		return nil
	}
	if !b.admin.Entering(sender.ID) {
		return nil
	}
	return b.admin.HandleText(middleware.ContextFrom(c), sender.ID, c.Text(), adminMessenger{c})
}
