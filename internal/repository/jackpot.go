package repository

import "context"

// Jackpot defines the interface for per-machine jackpot pools.
// Every method creates a missing pool lazily.
type Jackpot interface {
	// AddToPool creates the pool at max(amount, seed) or increments it, returning the new total
	AddToPool(ctx context.Context, machineKey string, amount, seed int64) (int64, error)
	// ResetPool returns the current total and sets the pool back to seed
	ResetPool(ctx context.Context, machineKey string, seed int64) (int64, error)
	GetPool(ctx context.Context, machineKey string, seed int64) (int64, error)
}
