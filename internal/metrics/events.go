package metrics

import (
	"context"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		domain.EventTypeSpinCompleted,
		domain.EventTypeJackpotWon,
		domain.EventTypeEffectActivated,
		domain.EventTypeEffectExpired,
		domain.EventTypeItemBought,
		domain.EventTypePlayerRegistered,
		domain.EventTypeDailyClaimed,
		domain.EventTypeTransferCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case domain.EventTypeSpinCompleted:
		var p domain.SpinCompletedPayload
		if p, err = event.DecodePayload[domain.SpinCompletedPayload](evt.Payload); err == nil {
			Spins.WithLabelValues(p.MachineKey).Inc()
			FreeSpins.WithLabelValues(p.MachineKey).Add(float64(p.FreeSpins))
			ChipsWagered.WithLabelValues(p.MachineKey).Add(float64(p.Bet))
			ChipsWon.WithLabelValues(p.MachineKey).Add(float64(p.TotalWinnings))
		}

	case domain.EventTypeJackpotWon:
		var p domain.JackpotWonPayload
		if p, err = event.DecodePayload[domain.JackpotWonPayload](evt.Payload); err == nil {
			JackpotsWon.WithLabelValues(p.MachineKey).Inc()
			JackpotChipsPaid.WithLabelValues(p.MachineKey).Add(float64(p.Amount))
		}

	case domain.EventTypeEffectActivated:
		var p domain.EffectActivatedPayload
		if p, err = event.DecodePayload[domain.EffectActivatedPayload](evt.Payload); err == nil {
			EffectsActivated.WithLabelValues(string(p.Kind)).Inc()
		}

	case domain.EventTypeEffectExpired:
		var p domain.EffectExpiredPayload
		if p, err = event.DecodePayload[domain.EffectExpiredPayload](evt.Payload); err == nil {
			EffectsExpired.Add(float64(p.Count))
		}

	case domain.EventTypeItemBought:
		var p domain.ItemBoughtPayload
		if p, err = event.DecodePayload[domain.ItemBoughtPayload](evt.Payload); err == nil {
			ItemsBought.WithLabelValues(p.ItemID).Inc()
			ChipsSpent.Add(float64(p.Price))
		}

	case domain.EventTypePlayerRegistered:
		var p domain.PlayerRegisteredPayload
		if p, err = event.DecodePayload[domain.PlayerRegisteredPayload](evt.Payload); err == nil {
			PlayersRegistered.WithLabelValues(p.Platform).Inc()
		}

	case domain.EventTypeDailyClaimed:
		DailyClaims.Inc()

	case domain.EventTypeTransferCompleted:
		var p domain.TransferCompletedPayload
		if p, err = event.DecodePayload[domain.TransferCompletedPayload](evt.Payload); err == nil {
			ChipsTransferred.Add(float64(p.Amount))
		}
	}

	if err != nil {
		// Metrics never fail the publisher
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
