package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram:  TelegramConfig{Token: "token"},
		Channel:   ChannelConfig{ID: -100123, InviteURL: "https://t.me/example"},
		Operators: []int64{1},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
	if cfg.Reminder.StalenessHours != 24 {
		t.Fatalf("staleness = %d, want 24", cfg.Reminder.StalenessHours)
	}
	if cfg.Reminder.PollIntervalSeconds != 3 {
		t.Fatalf("poll interval = %d, want 3", cfg.Reminder.PollIntervalSeconds)
	}
}

func TestNormalizeRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing token", func(c *Config) { c.Telegram.Token = "" }, "token"},
		{"missing channel", func(c *Config) { c.Channel.ID = 0 }, "channel.id"},
		{"missing operators", func(c *Config) { c.Operators = nil }, "operator"},
		{"bad run mode", func(c *Config) { c.Telegram.RunMode = "carrier-pigeon" }, "run_mode"},
		{"webhook without url", func(c *Config) { c.Telegram.RunMode = RunModeWebhook }, "webhook.url"},
	}
	for _, tc := range cases {
		cfg := validConfig()
		tc.mutate(cfg)
		err := Normalize(cfg)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("%s: error = %v, want mention of %q", tc.name, err, tc.wantErr)
		}
	}
}

func TestNormalizeAcceptsPollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
}

func TestIsOperator(t *testing.T) {
	cfg := validConfig()
	cfg.Operators = []int64{1015082973, 1931600027}
	if !cfg.IsOperator(1015082973) {
		t.Fatal("listed id should be an operator")
	}
	if cfg.IsOperator(5) {
		t.Fatal("unlisted id should not be an operator")
	}
}
