package repository

import (
	"context"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Inventory defines the interface for player item holdings
type Inventory interface {
	GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error)
	GetQuantity(ctx context.Context, playerID, itemID string) (int, error)
	// AddItem increments a holding; maxQuantity > 0 caps it and fails with domain.ErrItemAlreadyOwned
	AddItem(ctx context.Context, playerID, itemID string, quantity, maxQuantity int) (int, error)
	// ConsumeItem removes one unit; fails with domain.ErrItemNotOwned when none is held
	ConsumeItem(ctx context.Context, playerID, itemID string) (int, error)
}
