package domain

// InventoryEntry is the quantity of one item held by a player
type InventoryEntry struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// InventoryView is an inventory entry joined with its catalog item
type InventoryView struct {
	Item     ShopItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// PurchaseResult is returned by a successful shop purchase
type PurchaseResult struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Cost     int64  `json:"cost"`
	Balance  int64  `json:"balance"`
}

// BalanceView is a player's balance with their live effects
type BalanceView struct {
	PlayerID string   `json:"player_id"`
	Username string   `json:"username"`
	Balance  int64    `json:"balance"`
	Effects  []Effect `json:"effects"`
}
