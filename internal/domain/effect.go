package domain

import "time"

// EffectKind identifies one of the player modifiers an item can activate
type EffectKind string

// Effect kinds
const (
	EffectCreditLine      EffectKind = "CREDIT_LINE"
	EffectWinBoost        EffectKind = "WIN_BOOST"
	EffectAnalyticsAccess EffectKind = "ANALYTICS_ACCESS"
)

// Effect is a live modifier held by a player. At most one exists per (player, kind).
type Effect struct {
	PlayerID     string     `json:"player_id"`
	Kind         EffectKind `json:"kind"`
	SourceItemID string     `json:"source_item_id"`
	ExpiresAt    time.Time  `json:"expires_at,omitempty"` // zero means no time limit
	Magnitude    float64    `json:"magnitude"`            // credit limit or multiplier
}

// HasExpiry reports whether the effect is time-boxed
func (e Effect) HasExpiry() bool {
	return !e.ExpiresAt.IsZero()
}

// ExpiredAt reports whether the effect is no longer live at t
func (e Effect) ExpiredAt(t time.Time) bool {
	return e.HasExpiry() && !t.Before(e.ExpiresAt)
}

// OverdraftPolicy bounds how far below zero a debit may take a balance.
// The zero value allows no overdraft.
type OverdraftPolicy struct {
	Allow bool
	Limit int64
}

// NoOverdraft is the policy for every debit that must stay non-negative
var NoOverdraft = OverdraftPolicy{}

// Floor returns the lowest balance a debit may reach under the policy
func (p OverdraftPolicy) Floor() int64 {
	if !p.Allow || p.Limit <= 0 {
		return 0
	}
	return -p.Limit
}

// OverdraftFromEffect builds the policy granted by an active credit line
func OverdraftFromEffect(e *Effect) OverdraftPolicy {
	if e == nil || e.Kind != EffectCreditLine || e.Magnitude <= 0 {
		return NoOverdraft
	}
	return OverdraftPolicy{Allow: true, Limit: int64(e.Magnitude)}
}
