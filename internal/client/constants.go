package client

import "time"

const (
	// APIPrefix is the versioned path of the core API
	APIPrefix = "/api/v1"

	// HeaderAPIKey carries the shared API key
	HeaderAPIKey = "X-API-Key"

	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond

	// MaxErrorBodyBytes caps how much of an error body is decoded
	MaxErrorBodyBytes = 64 << 10
)

const (
	ErrMsgStatus   = "API returned status: %d"
	LogMsgRetrying = "Retrying API request"
)

// API paths
const (
	PathHealth      = "/healthz"
	PathRegister    = "/player/register"
	PathBalance     = "/player/balance"
	PathDaily       = "/player/daily"
	PathTransfer    = "/player/transfer"
	PathInventory   = "/player/inventory"
	PathAnalytics   = "/player/analytics"
	PathLeaderboard = "/leaderboard"
	PathWinners     = "/leaderboard/winners"
	PathMachines    = "/slots/machines"
	PathSpin        = "/slots/spin"
	PathJackpots    = "/jackpots"
	PathShop        = "/shop"
	PathBuy         = "/shop/buy"
	PathUse         = "/shop/use"
)
