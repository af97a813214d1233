package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskping/config"
	_ "taskping/docs" // Swagger docs
	"taskping/internal/httpserver"
	"taskping/internal/router"
	"taskping/internal/scheduler"
	tgDelivery "taskping/internal/task/delivery/telegram"
	taskPostgre "taskping/internal/task/repository/postgre"
	"taskping/internal/task/usecase"
	"taskping/internal/webhook"
	"taskping/pkg/civiltime"
	"taskping/pkg/gcalendar"
	"taskping/pkg/log"
	"taskping/pkg/openai"
	"taskping/pkg/telegram"
)

// @title       TaskPing API
// @description Telegram task reminder bot: LLM task intake, scheduled reminders, and daily digests.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskPing...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	db, err := taskPostgre.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer db.Close()

	civil := civiltime.New(civiltime.SystemClock{})
	taskRepo := taskPostgre.New(db, logger)

	// 4. Task domain
	var telegramHandler tgDelivery.Handler
	var telegramBot *telegram.Bot

	if cfg.Telegram.BotToken != "" && cfg.OpenAI.APIKey != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)

		openaiClient := openai.NewClient(cfg.OpenAI.APIKey)
		if cfg.OpenAI.BaseURL != "" {
			openaiClient.SetAPIURL(cfg.OpenAI.BaseURL)
		}
		if cfg.OpenAI.ChatModel != "" {
			openaiClient.SetChatModel(cfg.OpenAI.ChatModel)
		}
		if cfg.OpenAI.TranscribeModel != "" {
			openaiClient.SetTranscribeModel(cfg.OpenAI.TranscribeModel)
		}

		// Google Calendar client (optional)
		var calendarClient usecase.CalendarClient
		if cfg.GoogleCalendar.CredentialsPath != "" {
			gcal, gcalErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
			if gcalErr != nil {
				logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcalErr)
			} else {
				calendarClient = gcal
				logger.Info(ctx, "Google Calendar initialized")
			}
		}

		taskUC := usecase.New(logger, openaiClient, calendarClient, taskRepo, civil, cfg.GoogleCalendar.CalendarID)

		telegramHandler = tgDelivery.New(logger, taskUC, telegramBot, openaiClient, router.New(), civil)

		// Register webhook: auto-detect ngrok or fall back to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Task intake skipped: TELEGRAM_BOT_TOKEN or OPENAI_API_KEY is missing")
	}

	// 5. Scheduler passes (exposed as cron trigger routes)
	var sched *scheduler.Scheduler
	if telegramBot != nil {
		sched = scheduler.New(logger, taskRepo, telegramBot, civil)
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
		Scheduler:       sched,
		Security: webhook.NewSecurityValidator(webhook.SecurityConfig{
			TelegramSecret:  cfg.Telegram.WebhookSecret,
			TriggerSecret:   cfg.Webhook.TriggerSecret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
