package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// Type names what happened, e.g. "spin.completed"
type Type string

// Event is one fact published by the casino services. Payload is one of the
// domain *Payload structs until it crosses a process boundary, after which
// DecodePayload recovers it.
type Event struct {
	Version   string `json:"version"`
	Type      Type   `json:"type"`
	Payload   any    `json:"payload"`
	RequestID string `json:"request_id,omitempty"`
}

func newEvent(eventType string, payload any) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(eventType),
		Payload: payload,
	}
}

// NewSpinCompletedEvent creates a spin.completed event from a settled spin
func NewSpinCompletedEvent(result *domain.SpinResult) Event {
	freeSpins := 0
	for _, r := range result.Rounds {
		if r.FreeSpin {
			freeSpins++
		}
	}
	return newEvent(domain.EventTypeSpinCompleted, domain.SpinCompletedPayload{
		PlayerID:      result.PlayerID,
		MachineKey:    result.MachineKey,
		Bet:           result.Bet,
		TotalWinnings: result.TotalWinnings,
		FreeSpins:     freeSpins,
		Balance:       result.Balance,
		Timestamp:     result.SettledAt.Unix(),
	})
}

// NewJackpotWonEvent creates a jackpot.won event
func NewJackpotWonEvent(playerID, machineKey string, amount int64) Event {
	return newEvent(domain.EventTypeJackpotWon, domain.JackpotWonPayload{
		PlayerID:   playerID,
		MachineKey: machineKey,
		Amount:     amount,
		Timestamp:  time.Now().Unix(),
	})
}

// NewEffectActivatedEvent creates an effect.activated event
func NewEffectActivatedEvent(effect domain.Effect, itemID string) Event {
	payload := domain.EffectActivatedPayload{
		PlayerID:  effect.PlayerID,
		ItemID:    itemID,
		Kind:      effect.Kind,
		Timestamp: time.Now().Unix(),
	}
	if effect.HasExpiry() {
		payload.ExpiresAt = effect.ExpiresAt.Unix()
	}
	return newEvent(domain.EventTypeEffectActivated, payload)
}

// NewEffectExpiredEvent creates an effect.expired event for a sweep
func NewEffectExpiredEvent(count int64) Event {
	return newEvent(domain.EventTypeEffectExpired, domain.EffectExpiredPayload{
		Count:     count,
		Timestamp: time.Now().Unix(),
	})
}

// NewItemBoughtEvent creates an item.bought event
func NewItemBoughtEvent(playerID, itemID string, price int64) Event {
	return newEvent(domain.EventTypeItemBought, domain.ItemBoughtPayload{
		PlayerID:  playerID,
		ItemID:    itemID,
		Price:     price,
		Timestamp: time.Now().Unix(),
	})
}

// NewPlayerRegisteredEvent creates a player.registered event
func NewPlayerRegisteredEvent(player *domain.Player) Event {
	return newEvent(domain.EventTypePlayerRegistered, domain.PlayerRegisteredPayload{
		PlayerID:  player.ID,
		Platform:  player.Platform,
		Timestamp: player.CreatedAt.Unix(),
	})
}

// NewDailyClaimedEvent creates a daily.claimed event
func NewDailyClaimedEvent(playerID string, claim *domain.DailyClaim) Event {
	return newEvent(domain.EventTypeDailyClaimed, domain.DailyClaimedPayload{
		PlayerID:  playerID,
		Bonus:     claim.Bonus,
		Timestamp: claim.ClaimedAt.Unix(),
	})
}

// NewTransferCompletedEvent creates a transfer.completed event
func NewTransferCompletedEvent(result *domain.TransferResult) Event {
	return newEvent(domain.EventTypeTransferCompleted, domain.TransferCompletedPayload{
		SenderID:    result.SenderID,
		RecipientID: result.RecipientID,
		Amount:      result.Amount,
		Timestamp:   time.Now().Unix(),
	})
}

// Handler reacts to one event
type Handler func(ctx context.Context, event Event) error

// Bus fans events out to the handlers subscribed to their type
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus delivers events synchronously inside the process
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewMemoryBus creates an empty bus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish runs every handler for the event's type, even after one fails,
// and stamps the request ID from ctx when the event has none.
func (b *MemoryBus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	handlers := b.handlers[evt.Type]
	b.mu.RUnlock()

	if evt.RequestID == "" {
		evt.RequestID, _ = logger.RequestIDFromContext(ctx)
	}

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlersFailed, len(errs), evt.Type, errors.Join(errs...))
	}
	return nil
}

// Subscribe adds handler for eventType
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
