package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Tables and columns
const (
	tablePlayers = "players"
	tableJackpot = "jackpot_pools"
	tableItems   = "player_items"
	tableEffects = "player_effects"
	tableSpinLog = "spin_log"

	colID             = "id"
	colPlatform       = "platform"
	colPlatformID     = "platform_id"
	colUsername       = "username"
	colBalance        = "balance"
	colLastDailyClaim = "last_daily_claim"
	colCreatedAt      = "created_at"
	colUpdatedAt      = "updated_at"

	colPlayerID     = "player_id"
	colItemID       = "item_id"
	colQuantity     = "quantity"
	colKind         = "kind"
	colSourceItemID = "source_item_id"
	colExpiresAt    = "expires_at"
	colMagnitude    = "magnitude"

	colMachineKey  = "machine_key"
	colAmount      = "amount"
	colBet         = "bet"
	colTotalWin    = "total_win"
	colWasFreeSpin = "was_free_spin"
)

// Error Messages
const (
	ErrMsgTxManagerFailed   = "failed to create transaction manager: %w"
	ErrMsgBuildQueryFailed  = "failed to build query: %w"
	ErrMsgQueryFailed       = "failed to query %s: %w"
	ErrMsgScanFailed        = "failed to scan %s: %w"
	ErrMsgInsertFailed      = "failed to insert %s: %w"
	ErrMsgUpdateFailed      = "failed to update %s: %w"
	ErrMsgDeleteFailed      = "failed to delete %s: %w"
	ErrMsgTransferLockFmt   = "failed to lock transfer rows: %w"
	ErrMsgPoolNotFoundAfter = "jackpot pool %s missing after upsert"
)
