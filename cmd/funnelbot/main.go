package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	tele "gopkg.in/telebot.v4"
	"gopkg.in/yaml.v3"

	"github.com/m3rciful/funnelbot/admin"
	"github.com/m3rciful/funnelbot/bot"
	"github.com/m3rciful/funnelbot/core/bootstrap"
	"github.com/m3rciful/funnelbot/core/buildinfo"
	coreconfig "github.com/m3rciful/funnelbot/core/config"
	coredatabase "github.com/m3rciful/funnelbot/core/database"
	"github.com/m3rciful/funnelbot/core/logger"
	"github.com/m3rciful/funnelbot/core/telegram"
	"github.com/m3rciful/funnelbot/funnel"
	"github.com/m3rciful/funnelbot/reminder"
	"github.com/m3rciful/funnelbot/report"
	"github.com/m3rciful/funnelbot/storage"
)

// appConfig joins the application config with the database section.
type appConfig struct {
	coreconfig.Config `yaml:",inline"`

	Database coredatabase.Config `yaml:"database"`
}

func loadConfig(path string) (*appConfig, error) {
	var cfg appConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	res, err := bootstrap.Run(bootstrap.Options{
		Config:   &cfg.Config,
		Database: cfg.Database,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "bootstrap:", err)
		os.Exit(1)
	}
	defer res.DB.Close()
	defer logger.Shutdown()

	users := storage.NewUsers(res.DB)
	logs := storage.NewLogs(res.DB)
	sessions := funnel.NewSessions()

	membership := bot.NewChannelMembership(cfg.Channel.ID)
	notifier := &bot.Notifier{}
	reporter := report.New(users, logs, notifier, cfg.Operators)

	machine := funnel.NewMachine(funnel.MachineOptions{
		Sessions:   sessions,
		Users:      users,
		Log:        logs,
		Membership: membership,
		Videos:     cfg.Videos,
		ChannelURL: cfg.Channel.InviteURL,
		Pause:      time.Second,
		OnFinished: func(ctx context.Context, userID int64) {
			if err := reporter.Deliver(ctx, userID); err != nil {
				logger.Warn(ctx, logger.RPT, "report.deliver_failed",
					slog.Int64("user_id", userID),
					slog.String("error", err.Error()))
			}
		},
	})

	adminH := admin.NewHandler(users, logs, sessions)
	b := bot.New(&cfg.Config, machine, adminH)

	sweep := reminder.NewSweep(users, notifier,
		time.Duration(cfg.Reminder.StalenessHours)*time.Hour,
		time.Duration(cfg.Reminder.PollIntervalSeconds)*time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = telegram.RunTelegram(ctx, telegram.RunOptions{
		Config:      &cfg.Config,
		Middlewares: b.Middlewares(),
		Routes:      b.Routes(),
		OnStart: func(ctx context.Context, tb *tele.Bot) error {
			membership.SetBot(tb)
			notifier.SetBot(tb)
			go sweep.Run(ctx)
			logger.L.Info("funnelbot started",
				slog.String("event", "startup"),
				slog.String("version", buildinfo.Version),
				slog.String("commit", buildinfo.Commit))
			return nil
		},
		OnStop: func(context.Context, *tele.Bot) error {
			logger.L.Info("funnelbot stopped", slog.String("event", "shutdown"))
			return nil
		},
	})
	if err != nil {
		logger.L.Error("funnelbot exited with error",
			slog.String("event", "fatal"),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
