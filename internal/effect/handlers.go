package effect

import (
	"fmt"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// ActivationHandler applies the activation rule of one effect kind
type ActivationHandler interface {
	// Validate rejects item configurations that cannot produce a usable effect
	Validate(item domain.ShopItem) error
	// Apply builds the new effect given the current live one (nil when absent)
	Apply(playerID string, item domain.ShopItem, current *domain.Effect, now time.Time) (domain.Effect, error)
}

// HandlerRegistry maps each effect kind to its activation rule
type HandlerRegistry struct {
	handlers map[domain.EffectKind]ActivationHandler
}

// NewHandlerRegistry creates a registry with the built-in kinds
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: map[domain.EffectKind]ActivationHandler{
			domain.EffectCreditLine:      creditLineHandler{},
			domain.EffectWinBoost:        winBoostHandler{},
			domain.EffectAnalyticsAccess: analyticsHandler{},
		},
	}
}

// HandlerFor resolves the handler for an item, failing with ErrNotActivatable
func (r *HandlerRegistry) HandlerFor(item domain.ShopItem) (domain.EffectKind, ActivationHandler, error) {
	kind, ok := item.Type.EffectKind()
	if !ok {
		return "", nil, fmt.Errorf("%w: %s has no effect", domain.ErrNotActivatable, item.ID)
	}
	h, ok := r.handlers[kind]
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", domain.ErrNotActivatable, kind)
	}
	if err := h.Validate(item); err != nil {
		return "", nil, err
	}
	return kind, h, nil
}

// creditLineHandler grants a one-shot overdraft with no time limit
type creditLineHandler struct{}

func (creditLineHandler) Validate(item domain.ShopItem) error {
	if item.CreditLimit <= 0 {
		return fmt.Errorf("%w: %s has no credit limit", domain.ErrNotActivatable, item.ID)
	}
	return nil
}

func (creditLineHandler) Apply(playerID string, item domain.ShopItem, current *domain.Effect, _ time.Time) (domain.Effect, error) {
	if current != nil {
		return domain.Effect{}, fmt.Errorf("%w: %s", domain.ErrAlreadyActive, domain.EffectCreditLine)
	}
	return domain.Effect{
		PlayerID:     playerID,
		Kind:         domain.EffectCreditLine,
		SourceItemID: item.ID,
		Magnitude:    float64(item.CreditLimit),
	}, nil
}

// winBoostHandler multiplies winnings until expiry; it never extends a live boost
type winBoostHandler struct{}

func (winBoostHandler) Validate(item domain.ShopItem) error {
	if item.Multiplier <= 1 {
		return fmt.Errorf("%w: %s multiplier %.2f", domain.ErrNotActivatable, item.ID, item.Multiplier)
	}
	if item.Duration <= 0 {
		return fmt.Errorf("%w: %s has no duration", domain.ErrNotActivatable, item.ID)
	}
	return nil
}

func (winBoostHandler) Apply(playerID string, item domain.ShopItem, current *domain.Effect, now time.Time) (domain.Effect, error) {
	if current != nil {
		return domain.Effect{}, fmt.Errorf("%w: %s", domain.ErrAlreadyActive, domain.EffectWinBoost)
	}
	return domain.Effect{
		PlayerID:     playerID,
		Kind:         domain.EffectWinBoost,
		SourceItemID: item.ID,
		ExpiresAt:    now.Add(item.Duration),
		Magnitude:    item.Multiplier,
	}, nil
}

// analyticsHandler stacks durations from the later of now or the current expiry
type analyticsHandler struct{}

func (analyticsHandler) Validate(item domain.ShopItem) error {
	if item.Duration <= 0 {
		return fmt.Errorf("%w: %s has no duration", domain.ErrNotActivatable, item.ID)
	}
	return nil
}

func (analyticsHandler) Apply(playerID string, item domain.ShopItem, current *domain.Effect, now time.Time) (domain.Effect, error) {
	start := now
	if current != nil && current.ExpiresAt.After(now) {
		start = current.ExpiresAt
	}
	return domain.Effect{
		PlayerID:     playerID,
		Kind:         domain.EffectAnalyticsAccess,
		SourceItemID: item.ID,
		ExpiresAt:    start.Add(item.Duration),
		Magnitude:    1,
	}, nil
}
