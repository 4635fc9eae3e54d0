package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "spin.completed")
const (
	// EventTypeSpinCompleted is published after a spin and its free spins settle
	EventTypeSpinCompleted = "spin.completed"

	// EventTypeJackpotWon is published when a jackpot pool is paid out
	EventTypeJackpotWon = "jackpot.won"

	// EventTypeEffectActivated is published when an item activates an effect
	EventTypeEffectActivated = "effect.activated"

	// EventTypeEffectExpired is published by the sweeper for reaped effects
	EventTypeEffectExpired = "effect.expired"

	// EventTypeItemBought is published when an item is bought from the shop
	EventTypeItemBought = "item.bought"

	// EventTypePlayerRegistered is published when a new player joins
	EventTypePlayerRegistered = "player.registered"

	// EventTypeDailyClaimed is published when a daily bonus is claimed
	EventTypeDailyClaimed = "daily.claimed"

	// EventTypeTransferCompleted is published after a chip transfer
	EventTypeTransferCompleted = "transfer.completed"
)
