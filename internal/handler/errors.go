package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Operation failures
	ErrMsgRegisterFailed    = "Failed to register player"
	ErrMsgBalanceFailed     = "Failed to load balance"
	ErrMsgDailyFailed       = "Failed to claim daily bonus"
	ErrMsgTransferFailed    = "Failed to transfer chips"
	ErrMsgInventoryFailed   = "Failed to get inventory"
	ErrMsgAnalyticsFailed   = "Failed to load analytics"
	ErrMsgLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgSpinFailed        = "Failed to process slots spin"
	ErrMsgJackpotsFailed    = "Failed to retrieve jackpots"
	ErrMsgBuyItemFailed     = "Failed to buy item"
	ErrMsgUseItemFailed     = "Failed to use item"
)

// User-facing messages for domain errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgUserNotFoundError     = "Player not found. Register first."
	ErrMsgAlreadyRegisteredErr  = "Player is already registered"
	ErrMsgSelfTransferError     = "You cannot transfer chips to yourself"
	ErrMsgInvalidAmountError    = "Amount must be positive"
	ErrMsgAnalyticsLockedError  = "Analytics are locked. Use an analytics pass first."
	ErrMsgNotEnoughChipsError   = "Not enough chips"
	ErrMsgInvalidBetError       = "Bet must be a positive number"
	ErrMsgUnknownMachineError   = "Unknown slot machine"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgItemNotOwnedError     = "You don't have that item"
	ErrMsgItemAlreadyOwnedError = "You already own that item"
	ErrMsgAlreadyActiveError    = "That effect is already active"
	ErrMsgNotActivatableError   = "That item cannot be used"
	ErrMsgInvalidPlatformError  = "Invalid platform"
)

// Success messages
const (
	MsgPlayerRegistered     = "Welcome to the casino!"
	MsgPlayerAlreadyExisted = "Welcome back!"
)
