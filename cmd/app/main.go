package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/bootstrap"
	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/server"
)

// ShutdownTimeout bounds the graceful shutdown sequence
const ShutdownTimeout = 15 * time.Second

//go:generate swag init -g cmd/app/main.go -d ../../ -o ../../docs

// @title CasinoBot API
// @version 1.0
// @description Chip economy and slot machines behind the Discord and Telegram bots.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	warnings, err := config.ValidateEnvWithWarnings(config.BinaryServer)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg, config.BinaryServer)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}

	handlers, err := bootstrap.RegisterEventHandlers(ctx, cfg, bus)
	if err != nil {
		storage.Close()
		return err
	}

	catalog, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		handlers.Close()
		storage.Close()
		return err
	}

	services, err := bootstrap.InitializeServices(cfg, catalog, storage.Store, publisher, handlers.Board)
	if err != nil {
		handlers.Close()
		storage.Close()
		return err
	}
	services.Sweeper.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		AllowedOrigins: cfg.AllowedOrigins,
	}, server.Services{
		Economy: services.Economy,
		Slots:   services.Slots,
		Winners: services.Winners,
		Ready:   bootstrap.ReadinessChecks(storage, handlers),
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-errCh:
		slog.Error("Server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Services:           services,
		Handlers:           handlers,
		ResilientPublisher: publisher,
		Storage:            storage,
		LogFile:            logFile,
	})
	return err
}
