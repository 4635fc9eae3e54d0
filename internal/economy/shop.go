package economy

import (
	"context"
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// GetShopCatalog lists every item for sale in catalog order
func (s *service) GetShopCatalog() []domain.ShopItem {
	items := make([]domain.ShopItem, 0, len(s.itemOrder))
	for _, id := range s.itemOrder {
		items = append(items, s.items[id])
	}
	return items
}

func (s *service) lookupItem(itemID string) (domain.ShopItem, error) {
	item, ok := s.items[itemID]
	if !ok {
		return domain.ShopItem{}, fmt.Errorf(ErrMsgUnknownItemFmt, domain.ErrItemNotFound, itemID)
	}
	return item, nil
}

// BuyItem debits the price and adds one unit in a single unit of work.
// Purchases never draw on a credit line.
func (s *service) BuyItem(ctx context.Context, playerID, itemID string) (*domain.PurchaseResult, error) {
	item, err := s.lookupItem(itemID)
	if err != nil {
		return nil, err
	}

	maxQty := 0
	if item.Unique {
		maxQty = 1
	}

	result := &domain.PurchaseResult{ItemID: item.ID, Cost: item.Price}
	err = s.repos.Tx.Do(ctx, func(ctx context.Context) error {
		balance, err := s.ledger.Adjust(ctx, playerID, -item.Price, domain.NoOverdraft)
		if err != nil {
			return err
		}
		qty, err := s.repos.Inventory.AddItem(ctx, playerID, item.ID, 1, maxQty)
		if err != nil {
			return err
		}
		result.Balance = balance
		result.Quantity = qty
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemPurchased, "player_id", playerID, "item", item.ID, "price", item.Price, "balance", result.Balance)
	s.publishAsync(ctx, event.NewItemBoughtEvent(playerID, item.ID, item.Price))
	return result, nil
}

// GetInventory joins the player's holdings with the catalog
func (s *service) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryView, error) {
	entries, err := s.repos.Inventory.GetInventory(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInventoryFailed, err)
	}

	views := make([]domain.InventoryView, 0, len(entries))
	for _, e := range entries {
		item, ok := s.items[e.ItemID]
		if !ok {
			// retired from the catalog
			item = domain.ShopItem{ID: e.ItemID, Name: e.ItemID}
		}
		views = append(views, domain.InventoryView{Item: item, Quantity: e.Quantity})
	}
	return views, nil
}

// UseItem consumes one unit of an owned item and activates its effect
func (s *service) UseItem(ctx context.Context, playerID, itemID string) (*domain.Effect, error) {
	item, err := s.lookupItem(itemID)
	if err != nil {
		return nil, err
	}

	activated, err := s.effects.Activate(ctx, playerID, item)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemUsed, "player_id", playerID, "item", item.ID, "kind", activated.Kind)
	s.publishAsync(ctx, event.NewEffectActivatedEvent(*activated, item.ID))
	return activated, nil
}
