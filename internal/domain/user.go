package domain

import "time"

// Platform identifiers for chat transports
const (
	PlatformDiscord  = "discord"
	PlatformTelegram = "telegram"
	PlatformAPI      = "api"
)

// ValidPlatforms lists the platforms a player may register from
var ValidPlatforms = map[string]bool{
	PlatformDiscord:  true,
	PlatformTelegram: true,
	PlatformAPI:      true,
}

// Player represents a registered casino player
type Player struct {
	ID             string     `json:"id"`
	Platform       string     `json:"platform"`
	PlatformID     string     `json:"platform_id"`
	Username       string     `json:"username"`
	Balance        int64      `json:"balance"`
	LastDailyClaim *time.Time `json:"last_daily_claim,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// LeaderboardEntry is one row of the balance leaderboard
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

// WinnerEntry is one row of the biggest-winners leaderboard
type WinnerEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Username string `json:"username,omitempty"`
	TotalWon int64  `json:"total_won"`
}

// DailyClaim is the result of a successful daily bonus claim
type DailyClaim struct {
	Bonus     int64     `json:"bonus"`
	Balance   int64     `json:"balance"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// TransferResult is the result of a chip transfer between two players
type TransferResult struct {
	SenderID         string `json:"sender_id"`
	RecipientID      string `json:"recipient_id"`
	RecipientName    string `json:"recipient_name"`
	Amount           int64  `json:"amount"`
	SenderBalance    int64  `json:"sender_balance"`
	RecipientBalance int64  `json:"recipient_balance"`
}
