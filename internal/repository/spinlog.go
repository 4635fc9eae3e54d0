package repository

import (
	"context"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// SpinLog defines the interface for the append-only spin record log
type SpinLog interface {
	RecordSpin(ctx context.Context, record *domain.SpinRecord) error
	GetSpinStats(ctx context.Context, playerID string) (map[string]domain.SpinStats, error)
	TopWinners(ctx context.Context, limit int) ([]domain.WinnerEntry, error)
}
