package domain

// SpinCompletedPayload is the event payload for spin.completed events
type SpinCompletedPayload struct {
	PlayerID      string `json:"player_id"`
	MachineKey    string `json:"machine_key"`
	Bet           int64  `json:"bet"`
	TotalWinnings int64  `json:"total_winnings"`
	FreeSpins     int    `json:"free_spins"`
	Balance       int64  `json:"balance"`
	Timestamp     int64  `json:"timestamp"`
}

// JackpotWonPayload is the event payload for jackpot.won events
type JackpotWonPayload struct {
	PlayerID   string `json:"player_id"`
	MachineKey string `json:"machine_key"`
	Amount     int64  `json:"amount"`
	Timestamp  int64  `json:"timestamp"`
}

// EffectActivatedPayload is the event payload for effect.activated events
type EffectActivatedPayload struct {
	PlayerID  string     `json:"player_id"`
	ItemID    string     `json:"item_id"`
	Kind      EffectKind `json:"kind"`
	ExpiresAt int64      `json:"expires_at,omitempty"`
	Timestamp int64      `json:"timestamp"`
}

// EffectExpiredPayload is the event payload for effect.expired events
type EffectExpiredPayload struct {
	Count     int64 `json:"count"`
	Timestamp int64 `json:"timestamp"`
}

// ItemBoughtPayload is the event payload for item.bought events
type ItemBoughtPayload struct {
	PlayerID  string `json:"player_id"`
	ItemID    string `json:"item_id"`
	Price     int64  `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// PlayerRegisteredPayload is the event payload for player.registered events
type PlayerRegisteredPayload struct {
	PlayerID  string `json:"player_id"`
	Platform  string `json:"platform"`
	Timestamp int64  `json:"timestamp"`
}

// DailyClaimedPayload is the event payload for daily.claimed events
type DailyClaimedPayload struct {
	PlayerID  string `json:"player_id"`
	Bonus     int64  `json:"bonus"`
	Timestamp int64  `json:"timestamp"`
}

// TransferCompletedPayload is the event payload for transfer.completed events
type TransferCompletedPayload struct {
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Amount      int64  `json:"amount"`
	Timestamp   int64  `json:"timestamp"`
}
