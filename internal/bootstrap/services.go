package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CasinoBot_Go/internal/concurrency"
	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/economy"
	"github.com/osse101/CasinoBot_Go/internal/effect"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/jackpot"
	"github.com/osse101/CasinoBot_Go/internal/leaderboard"
	"github.com/osse101/CasinoBot_Go/internal/slots"
	"github.com/osse101/CasinoBot_Go/internal/worker"
)

// Services are the wired domain services and their background workers
type Services struct {
	Economy  economy.Service
	Slots    slots.Service
	Winners  leaderboard.Service
	Effects  *effect.Store
	Sweeper  *worker.EffectSweeper
	Registry *slots.Registry
}

// LoadCatalog reads and validates the machine and shop catalog
func LoadCatalog(cfg *config.Config) (*config.Catalog, error) {
	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded,
		"path", cfg.CatalogPath,
		"machines", len(catalog.Machines),
		"items", len(catalog.Items))
	return catalog, nil
}

// InitializeServices wires the economy, slots and leaderboard services over one store.
// Services publish through publisher so failed deliveries are retried.
// board may be nil.
func InitializeServices(cfg *config.Config, catalog *config.Catalog, store Store, publisher *event.ResilientPublisher, board leaderboard.WinnersBoard) (*Services, error) {
	registry, err := slots.NewRegistry(catalog.Machines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildRegistry, err)
	}

	locks := concurrency.NewLockManager()
	ledger := economy.NewLedger(store)
	effects := effect.NewStore(store, store, store, locks)
	pool := jackpot.NewPool(store, catalog.Machines)

	economySvc := economy.NewService(
		economy.Config{
			StartingBalance:  cfg.StartingBalance,
			DailyBonus:       cfg.DailyBonus,
			DailyCooldown:    cfg.DailyCooldown,
			LeaderboardLimit: cfg.LeaderboardLimit,
		},
		economy.Repos{Players: store, Inventory: store, SpinLog: store, Tx: store},
		ledger,
		effects,
		locks,
		publisher,
		catalog.Items,
	)

	slotsSvc := slots.NewService(registry, store, store, store, ledger, pool, effects, publisher)

	return &Services{
		Economy:  economySvc,
		Slots:    slotsSvc,
		Winners:  leaderboard.NewService(board, store, store),
		Effects:  effects,
		Sweeper:  worker.NewEffectSweeper(effects, publisher, cfg.EffectSweepInterval),
		Registry: registry,
	}, nil
}
