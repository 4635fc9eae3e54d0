package bootstrap

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/event"
)

// InitializeEventSystem creates the in-process bus and the resilient publisher
// that the casino services publish spins, jackpots and purchases through.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	maxRetries := cmp.Or(cfg.EventMaxRetries, config.DefaultEventMaxRetries)
	retryDelay := cmp.Or(cfg.EventRetryDelay, config.DefaultEventRetryDelay)
	deadLetterPath := cmp.Or(cfg.EventDeadLetterPath, config.DefaultEventDeadLetterPath)

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	if pending, err := event.ReadDeadLetters(deadLetterPath); err == nil && len(pending) > 0 {
		slog.Warn(LogMsgDeadLettersPending, "count", len(pending), "path", deadLetterPath)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return bus, publisher, nil
}
