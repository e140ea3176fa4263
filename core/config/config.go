package config

import (
	"fmt"
	"strings"
)

// TelegramConfig holds Telegram bot related settings.
type TelegramConfig struct {
	Token   string `yaml:"token" envconfig:"BOT_TOKEN"`
	RunMode string `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// ChannelConfig identifies the marketing channel checked by the subscription guard.
type ChannelConfig struct {
	ID        int64  `yaml:"id" envconfig:"CHANNEL_ID"`
	InviteURL string `yaml:"invite_url" envconfig:"CHANNEL_INVITE_URL"`
}

// VideoConfig lists pre-provisioned Telegram file IDs for the intensive lessons.
type VideoConfig struct {
	Welcome string `yaml:"welcome" envconfig:"VIDEO_WELCOME_ID"`
	Lesson1 string `yaml:"lesson_1" envconfig:"VIDEO_LESSON_1_ID"`
	Lesson2 string `yaml:"lesson_2" envconfig:"VIDEO_LESSON_2_ID"`
	Lesson3 string `yaml:"lesson_3" envconfig:"VIDEO_LESSON_3_ID"`
}

// ReminderConfig controls the staleness sweep.
type ReminderConfig struct {
	StalenessHours      int `yaml:"staleness_hours" envconfig:"REMINDER_STALENESS_HOURS"`
	PollIntervalSeconds int `yaml:"poll_interval_seconds" envconfig:"REMINDER_POLL_INTERVAL_SECONDS"`
}

// WebhookConfig specifies webhook settings.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"WEBHOOK_PORT"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Dir     string `yaml:"dir"`
	BotFile string `yaml:"bot_file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

const (
	// RunModeWebhook selects webhook mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

const (
	// UpdateCallback identifies callback updates for rate limit exclusions.
	UpdateCallback = "callback"
	// UpdateMessage identifies message updates for rate limit exclusions.
	UpdateMessage = "message"
)

// RateLimitConfig holds settings for rate limiting.
// ExcludeUpdates accepts update types to bypass limiting:
// - "callback": Telegram callback button presses
// - "message": standard text messages
type RateLimitConfig struct {
	IntervalMS     int      `yaml:"interval_ms" envconfig:"RATE_LIMIT_INTERVAL_MS"`
	ExcludeUpdates []string `yaml:"exclude_updates" envconfig:"RATE_LIMIT_EXCLUDE_UPDATES"`
}

// Config aggregates the runtime configuration of the funnel bot.
type Config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Channel   ChannelConfig   `yaml:"channel"`
	Videos    VideoConfig     `yaml:"videos"`
	Operators []int64         `yaml:"operators" envconfig:"OPERATOR_IDS"`
	Reminder  ReminderConfig  `yaml:"reminder"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Normalize performs basic validation of required configuration fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required")
	}
	if cfg.Channel.ID == 0 {
		return fmt.Errorf("channel.id is required")
	}
	if len(cfg.Operators) == 0 {
		return fmt.Errorf("at least one operator id is required")
	}

	rm := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	if rm == "" {
		rm = RunModeLongpoll
	}
	if rm == "polling" { // accept alias
		rm = RunModeLongpoll
	}
	switch rm {
	case RunModeWebhook:
		if strings.TrimSpace(cfg.Webhook.URL) == "" {
			return fmt.Errorf("webhook.url is required when telegram.run_mode is 'webhook'")
		}
		if strings.TrimSpace(cfg.Webhook.Listen) == "" {
			return fmt.Errorf("webhook.listen is required when telegram.run_mode is 'webhook'")
		}
		if cfg.Webhook.Port <= 0 {
			return fmt.Errorf("webhook.port must be > 0 when telegram.run_mode is 'webhook'")
		}
	case RunModeLongpoll:
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
		}
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = rm

	if cfg.Reminder.StalenessHours <= 0 {
		cfg.Reminder.StalenessHours = 24
	}
	if cfg.Reminder.PollIntervalSeconds <= 0 {
		cfg.Reminder.PollIntervalSeconds = 3
	}

	allowed := map[string]struct{}{
		UpdateCallback: {},
		UpdateMessage:  {},
	}
	for i, v := range cfg.RateLimit.ExcludeUpdates {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := allowed[key]; !ok {
			return fmt.Errorf("invalid rate_limit.exclude_updates value %q; allowed: callback, message", v)
		}
		cfg.RateLimit.ExcludeUpdates[i] = key
	}
	return nil
}

// IsOperator reports whether the given user id belongs to the operator allow-list.
func (c *Config) IsOperator(userID int64) bool {
	for _, id := range c.Operators {
		if id == userID {
			return true
		}
	}
	return false
}
