package economy

import "time"

// Defaults used when configuration leaves a value unset
const (
	DefaultStartingBalance  = 1000
	DefaultDailyBonus       = 200
	DefaultDailyCooldown    = 24 * time.Hour
	DefaultLeaderboardLimit = 5
	MaxLeaderboardLimit     = 100
)

// Identity cache
const (
	PlayerCacheSize = 1000
	PlayerCacheTTL  = 10 * time.Minute
)

// Lock key prefixes for per-player named locks
const (
	LockKeyDaily    = "daily:"
	LockKeyRegister = "register:"
)

// ==================== Error Messages ====================

const (
	ErrMsgGetPlayerFailed        = "failed to get player: %w"
	ErrMsgCreatePlayerFailed     = "failed to create player: %w"
	ErrMsgAdjustBalanceFailed    = "failed to adjust balance: %w"
	ErrMsgTransferFailed         = "failed to transfer chips: %w"
	ErrMsgDailyClaimFailed       = "failed to claim daily bonus: %w"
	ErrMsgLeaderboardFailed      = "failed to load leaderboard: %w"
	ErrMsgInventoryFailed        = "failed to load inventory: %w"
	ErrMsgPurchaseFailed         = "failed to buy item: %w"
	ErrMsgAnalyticsFailed        = "failed to load analytics: %w"
	ErrMsgShutdownTimedOut       = "shutdown timed out: %w"
	ErrMsgCooldownRemainingFmt   = "%w: next claim in %s"
	ErrMsgInvalidAmountFmt       = "%w: %d"
	ErrMsgSelfTransferFmt        = "%w: %s"
	ErrMsgUnknownItemFmt         = "%w: %s"
	ErrMsgInsufficientForItemFmt = "%w: %s costs %d"
)

// ==================== Log Messages ====================

const (
	LogMsgPlayerRegistered  = "Player registered"
	LogMsgUsernameSynced    = "Player username updated"
	LogMsgDailyClaimed      = "Daily bonus claimed"
	LogMsgTransferCompleted = "Chips transferred"
	LogMsgItemPurchased     = "Item purchased"
	LogMsgItemUsed          = "Item used"
	LogMsgPublishFailed     = "Failed to publish economy event"
	LogMsgShuttingDown      = "Economy service shutting down, waiting for background tasks..."
)
