package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CasinoBot_Go/internal/bootstrap"
	"github.com/osse101/CasinoBot_Go/internal/botstatus"
	"github.com/osse101/CasinoBot_Go/internal/client"
	"github.com/osse101/CasinoBot_Go/internal/command"
	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/delivery"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/telegram"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Telegram bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	warnings, err := config.ValidateEnvWithWarnings(config.BinaryTelegram)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg, config.BinaryTelegram)
	if err != nil {
		return err
	}
	defer logFile.Close()
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.NewAPIClient(cfg.APIURL, cfg.APIKey)
	tracker := botstatus.NewTracker(domain.PlatformTelegram)

	bot, err := telegram.New(telegram.Config{
		Token:      cfg.TelegramBotToken,
		FrameDelay: cfg.FrameDelay,
		Delivery: delivery.Config{
			MaxAttempts: cfg.DeliveryMaxAttempts,
			BaseDelay:   cfg.DeliveryBaseDelay,
		},
	}, command.NewDispatcher(api), tracker)
	if err != nil {
		return err
	}

	health := botstatus.NewHTTPServer(cfg.BotHealthPort, tracker, botstatus.Probes{
		Connected: bot.Connected,
		APIHealth: api.Health,
	})
	health.Start()
	defer health.Stop(context.Background())

	return bot.Run(ctx)
}
