package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// GetInventory lists a player's non-empty holdings ordered by item ID
func (s *Store) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error) {
	defer s.lock(ctx)()

	entries := make([]domain.InventoryEntry, 0, len(s.state.inventory[playerID]))
	for itemID, qty := range s.state.inventory[playerID] {
		if qty > 0 {
			entries = append(entries, domain.InventoryEntry{PlayerID: playerID, ItemID: itemID, Quantity: qty})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ItemID < entries[j].ItemID })
	return entries, nil
}

// GetQuantity returns how many units of an item a player holds
func (s *Store) GetQuantity(ctx context.Context, playerID, itemID string) (int, error) {
	defer s.lock(ctx)()
	return s.state.inventory[playerID][itemID], nil
}

// AddItem increments a holding up to maxQuantity
func (s *Store) AddItem(ctx context.Context, playerID, itemID string, quantity, maxQuantity int) (int, error) {
	defer s.lock(ctx)()

	items, ok := s.state.inventory[playerID]
	if !ok {
		items = make(map[string]int)
		s.state.inventory[playerID] = items
	}
	next := items[itemID] + quantity
	if maxQuantity > 0 && next > maxQuantity {
		return items[itemID], fmt.Errorf("%w: %s", domain.ErrItemAlreadyOwned, itemID)
	}
	items[itemID] = next
	return next, nil
}

// ConsumeItem removes one unit of an item
func (s *Store) ConsumeItem(ctx context.Context, playerID, itemID string) (int, error) {
	defer s.lock(ctx)()

	items := s.state.inventory[playerID]
	if items[itemID] <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrItemNotOwned, itemID)
	}
	items[itemID]--
	if items[itemID] == 0 {
		delete(items, itemID)
		return 0, nil
	}
	return items[itemID], nil
}
