package bootstrap

import (
	"context"

	"github.com/osse101/CasinoBot_Go/internal/handler"
)

// ReadinessChecks lists the backends /readyz probes. Unconfigured ones are left out.
func ReadinessChecks(storage *Storage, handlers *EventHandlers) map[string]handler.Pinger {
	checks := make(map[string]handler.Pinger)
	if db := storage.Pinger(); db != nil {
		checks[ReadyCheckDatabase] = db
	}
	if handlers != nil && handlers.RedisClient != nil {
		client := handlers.RedisClient
		checks[ReadyCheckRedis] = handler.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	}
	return checks
}
