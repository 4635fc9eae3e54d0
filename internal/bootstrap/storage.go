package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/database"
	"github.com/osse101/CasinoBot_Go/internal/database/memory"
	"github.com/osse101/CasinoBot_Go/internal/database/postgres"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Store is every repository the services need, satisfied by both backends
type Store interface {
	repository.Player
	repository.Inventory
	repository.SpinLog
	repository.Jackpot
	repository.Effect
	repository.Transactor
}

// Storage holds the selected backend. Pool is nil for in-memory storage.
type Storage struct {
	Store Store
	Pool  *pgxpool.Pool
}

// Pinger returns the readiness probe target, nil when there is no database
func (s *Storage) Pinger() database.Pool {
	if s.Pool == nil {
		return nil
	}
	return s.Pool
}

// Close releases the connection pool
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// InitializeStorage opens the backend named by cfg.Storage, applying
// migrations first when DB_AUTO_MIGRATE is set.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		slog.Warn(LogMsgStorageMemory)
		return &Storage{Store: memory.NewStore()}, nil

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
			MaxConns:    cfg.DBMaxConns,
			MaxIdleTime: cfg.DBMaxConnIdleTime,
			MaxLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		slog.Info(LogMsgStoragePostgres, "host", cfg.DBHost, "db", cfg.DBName)

		if cfg.DBAutoMigrate {
			if err := database.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
			}
			slog.Info(LogMsgMigrationsApplied)
		}

		store, err := postgres.NewStore(pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateStore, err)
		}
		return &Storage{Store: store, Pool: pool}, nil
	}

	return nil, fmt.Errorf(ErrMsgUnknownStorageKind, cfg.Storage)
}
