package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgUserNotFound      = "user not found"
	ErrMsgAlreadyRegistered = "player already registered"
	ErrMsgSelfTransfer      = "cannot transfer chips to yourself"
	ErrMsgInvalidAmount     = "amount must be positive"
	ErrMsgOnCooldown        = "action on cooldown"
	ErrMsgAnalyticsLocked   = "analytics access is not active"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Slots errors
	ErrMsgInvalidBet     = "bet must be a positive number"
	ErrMsgUnknownMachine = "unknown slot machine"
	ErrMsgInvalidMachine = "invalid machine definition"

	// Shop and effect errors
	ErrMsgItemNotFound     = "item not found"
	ErrMsgItemNotOwned     = "item not owned"
	ErrMsgItemAlreadyOwned = "unique item already owned"
	ErrMsgAlreadyActive    = "effect is already active"
	ErrMsgNotActivatable   = "item cannot be activated"

	// Input errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidPlatform = "invalid platform"

	// Database/System errors
	ErrMsgDatabaseError     = "database error"
	ErrMsgConnectionTimeout = "connection timeout"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrAlreadyRegistered = errors.New(ErrMsgAlreadyRegistered)
	ErrSelfTransfer      = errors.New(ErrMsgSelfTransfer)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrOnCooldown        = errors.New(ErrMsgOnCooldown)
	ErrAnalyticsLocked   = errors.New(ErrMsgAnalyticsLocked)

	// Ledger errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Slots errors
	ErrInvalidBet     = errors.New(ErrMsgInvalidBet)
	ErrUnknownMachine = errors.New(ErrMsgUnknownMachine)
	ErrInvalidMachine = errors.New(ErrMsgInvalidMachine)

	// Shop and effect errors
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrItemNotOwned     = errors.New(ErrMsgItemNotOwned)
	ErrItemAlreadyOwned = errors.New(ErrMsgItemAlreadyOwned)
	ErrAlreadyActive    = errors.New(ErrMsgAlreadyActive)
	ErrNotActivatable   = errors.New(ErrMsgNotActivatable)

	// Validation errors
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidPlatform = errors.New(ErrMsgInvalidPlatform)

	// Database/System errors
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
)
