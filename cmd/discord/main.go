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
	"github.com/osse101/CasinoBot_Go/internal/discord"
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Discord bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	warnings, err := config.ValidateEnvWithWarnings(config.BinaryDiscord)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg, config.BinaryDiscord)
	if err != nil {
		return err
	}
	defer logFile.Close()
	for _, w := range warnings {
		slog.Warn(w)
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.NewAPIClient(cfg.APIURL, cfg.APIKey)
	tracker := botstatus.NewTracker(domain.PlatformDiscord)

	bot, err := discord.New(discord.Config{
		Token:      cfg.DiscordToken,
		AppID:      cfg.DiscordAppID,
		GuildID:    cfg.DiscordGuildID,
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

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(forceUpdate); err != nil {
		// commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	return bot.Run(ctx)
}
