package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskping/config"
	"taskping/internal/scheduler"
	taskPostgre "taskping/internal/task/repository/postgre"
	"taskping/pkg/civiltime"
	"taskping/pkg/log"
	"taskping/pkg/telegram"
)

// main is the entry point for the standalone cadence service. It is an
// alternative to the /cron/* trigger routes for deployments with no
// external cron: a ticker drives the reminder scan, and the daily
// digest fires once per civil day at the configured hour.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting scheduler service...")

	if cfg.Telegram.BotToken == "" {
		logger.Error(ctx, "TELEGRAM_BOT_TOKEN is required")
		return
	}

	db, err := taskPostgre.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer db.Close()

	interval, err := time.ParseDuration(cfg.Scheduler.ReminderInterval)
	if err != nil || interval <= 0 {
		logger.Warnf(ctx, "Invalid reminder interval %q, falling back to 1m", cfg.Scheduler.ReminderInterval)
		interval = time.Minute
	}

	civil := civiltime.New(civiltime.SystemClock{})
	bot := telegram.NewBot(cfg.Telegram.BotToken)
	sched := scheduler.New(logger, taskPostgre.New(db, logger), bot, civil)

	logger.Infof(ctx, "Scheduler running: reminder scan every %s, digest at %02d:00 %s",
		interval, cfg.Scheduler.DigestHour, civiltime.ZoneName)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastDigestDay string

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Scheduler service stopped gracefully")
			return
		case <-ticker.C:
			if err := sched.RunDueReminders(ctx); err != nil {
				logger.Errorf(ctx, "Reminder pass failed: %v", err)
			}

			// Fire the digest on the first tick at or past the configured
			// hour, at most once per civil day.
			now := civil.Now()
			day := civil.FormatDate(now)
			if now.Hour() >= cfg.Scheduler.DigestHour && day != lastDigestDay {
				if err := sched.RunDailyDigest(ctx); err != nil {
					logger.Errorf(ctx, "Digest pass failed: %v", err)
				} else {
					lastDigestDay = day
				}
			}
		}
	}
}
