package funnel

import (
	"context"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/funnelbot/core/config"
	"github.com/m3rciful/funnelbot/core/logger"
	"github.com/m3rciful/funnelbot/core/telegram/keyboard"
)

// Messenger abstracts outbound delivery to the chat an update came
// from. The telegram wiring provides the real implementation, tests a
// recording fake.
type Messenger interface {
	Send(ctx context.Context, text string, kb *tele.ReplyMarkup) error
	Edit(ctx context.Context, text string, kb *tele.ReplyMarkup) error
	Alert(ctx context.Context, text string) error
	Toast(ctx context.Context, text string) error
	SendVideo(ctx context.Context, fileID, caption string) error
}

// UserStore is the subset of the registry the machine writes to.
type UserStore interface {
	Upsert(ctx context.Context, id int64, username, firstName string) error
	Touch(ctx context.Context, id int64) error
	MarkFinished(ctx context.Context, id int64) error
	ResetReminded(ctx context.Context, id int64) error
}

// EventLog appends conversation events to the durable transcript.
type EventLog interface {
	Append(ctx context.Context, userID int64, eventType, content string) error
}

// MembershipChecker reports whether a user is subscribed to the
// required channel.
type MembershipChecker interface {
	IsMember(ctx context.Context, userID int64) (bool, error)
}

// Machine drives the conversation flow: a transition table keyed by
// state and callback token, per-user sessions, and durable side
// effects through the stores.
type Machine struct {
	sessions   *Sessions
	users      UserStore
	log        EventLog
	membership MembershipChecker
	videos     config.VideoConfig
	channelURL string
	pause      time.Duration
	onFinished func(ctx context.Context, userID int64)
	table      map[State]map[string]transition
}

type MachineOptions struct {
	Sessions   *Sessions
	Users      UserStore
	Log        EventLog
	Membership MembershipChecker
	Videos     config.VideoConfig
	ChannelURL string
	// Pause separates consecutive lesson deliveries. Zero disables it.
	Pause time.Duration
	// OnFinished fires after a user reaches the terminal state.
	OnFinished func(ctx context.Context, userID int64)
}

func NewMachine(opts MachineOptions) *Machine {
	m := &Machine{
		sessions:   opts.Sessions,
		users:      opts.Users,
		log:        opts.Log,
		membership: opts.Membership,
		videos:     opts.Videos,
		channelURL: opts.ChannelURL,
		pause:      opts.Pause,
		onFinished: opts.OnFinished,
	}
	m.table = m.buildTable()
	return m
}

// Start handles /start: registers the user, restarts the dialog from
// the greeting and re-arms the reminder. The completion flag is left
// untouched so finished users stay finished in reporting.
func (m *Machine) Start(ctx context.Context, userID int64, username, firstName string, msg Messenger) error {
	if err := m.users.Upsert(ctx, userID, username, firstName); err != nil {
		return err
	}
	m.logEvent(ctx, userID, "Пользователь", "Запустил бота /start")

	m.sessions.Reset(userID, StateCheckSubscription)
	if err := m.users.ResetReminded(ctx, userID); err != nil {
		logger.Warn(ctx, logger.FUNNEL, "funnel.reset_reminded_failed",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}

	kb := keyboard.InlineButtons([]keyboard.InlineBtn{{Text: "Пройти опрос", Unique: "start_flow"}})
	if err := msg.Send(ctx, greetingText, kb); err != nil {
		return err
	}
	m.logEvent(ctx, userID, "Бот", "Отправил приветствие")
	return nil
}

// Dispatch routes one callback token through the transition table.
// Tokens not defined for the user's current state are ignored without
// side effects.
func (m *Machine) Dispatch(ctx context.Context, userID int64, token string, msg Messenger) error {
	state := m.sessions.State(userID)
	entry, ok := m.table[state][token]
	if !ok {
		logger.Debug(ctx, logger.FUNNEL, "funnel.token_ignored",
			slog.Int64("user_id", userID),
			slog.String("state", string(state)),
			slog.String("token", token))
		return nil
	}

	if err := m.users.Touch(ctx, userID); err != nil {
		logger.Warn(ctx, logger.FUNNEL, "funnel.touch_failed",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}

	if err := entry.handle(ctx, userID, token, msg); err != nil {
		return err
	}
	if entry.next != StateIdle {
		m.sessions.SetState(userID, entry.next)
	}
	return nil
}

// logEvent appends to the transcript best-effort: a log write failure
// must not break the dialog.
func (m *Machine) logEvent(ctx context.Context, userID int64, eventType, content string) {
	if err := m.log.Append(ctx, userID, eventType, content); err != nil {
		logger.Warn(ctx, logger.FUNNEL, "funnel.log_append_failed",
			slog.Int64("user_id", userID),
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
	}
}

func (m *Machine) sleep(ctx context.Context) {
	if m.pause <= 0 {
		return
	}
	t := time.NewTimer(m.pause)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
