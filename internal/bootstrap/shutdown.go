package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Services           *Services
	Handlers           *EventHandlers
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
	LogFile            *os.File
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Background workers (cancel pending timers)
// 3. Application services (complete in-flight operations)
// 4. Event publisher (flush pending events), then the subscribers it feeds
// 5. Storage and the log file
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Services != nil {
		if c.Services.Sweeper != nil {
			if err := c.Services.Sweeper.Shutdown(ctx); err != nil {
				slog.Error(WorkerNameEffectSweeper+LogMsgWorkerShutdownFailed, "error", err)
			}
		}
		shutdownService(ctx, ServiceNameSlots, c.Services.Slots)
		shutdownService(ctx, ServiceNameEconomy, c.Services.Economy)
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Handlers != nil {
		if c.Handlers.RecorderPool != nil {
			if err := c.Handlers.RecorderPool.Shutdown(ctx); err != nil {
				slog.Error(WorkerNameRecorderPool+LogMsgWorkerShutdownFailed, "error", err)
			}
			c.Handlers.RecorderPool = nil
		}
		c.Handlers.Close()
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)

	if c.LogFile != nil {
		if err := c.LogFile.Close(); err != nil {
			slog.Error(ClosableNameLogFile+LogMsgCloseFailed, "error", err)
		}
	}
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if service == nil {
		return
	}
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownErr, "error", err)
	}
}
