package repository

import (
	"context"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Effect defines the interface for live player effects
type Effect interface {
	// GetActiveEffect reads one effect and deletes it in the same operation if it expired by now.
	// Returns nil when absent.
	GetActiveEffect(ctx context.Context, playerID string, kind domain.EffectKind, now time.Time) (*domain.Effect, error)
	// ListActiveEffects reads and reaps every effect of a player
	ListActiveEffects(ctx context.Context, playerID string, now time.Time) ([]domain.Effect, error)
	UpsertEffect(ctx context.Context, effect domain.Effect) error
	DeleteEffect(ctx context.Context, playerID string, kind domain.EffectKind) error
	DeleteExpiredEffects(ctx context.Context, now time.Time) (int64, error)
}
