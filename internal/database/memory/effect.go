package memory

import (
	"context"
	"sort"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

type effectRow struct {
	domain.Effect
}

// GetActiveEffect reads an effect and reaps it if expired
func (s *Store) GetActiveEffect(ctx context.Context, playerID string, kind domain.EffectKind, now time.Time) (*domain.Effect, error) {
	defer s.lock(ctx)()

	key := effectKey{playerID: playerID, kind: string(kind)}
	row, ok := s.state.effects[key]
	if !ok {
		return nil, nil
	}
	if row.ExpiredAt(now) {
		delete(s.state.effects, key)
		return nil, nil
	}
	e := row.Effect
	return &e, nil
}

// ListActiveEffects reads and reaps every effect of a player
func (s *Store) ListActiveEffects(ctx context.Context, playerID string, now time.Time) ([]domain.Effect, error) {
	defer s.lock(ctx)()

	var effects []domain.Effect
	for key, row := range s.state.effects {
		if key.playerID != playerID {
			continue
		}
		if row.ExpiredAt(now) {
			delete(s.state.effects, key)
			continue
		}
		effects = append(effects, row.Effect)
	}
	sort.Slice(effects, func(i, j int) bool { return effects[i].Kind < effects[j].Kind })
	return effects, nil
}

// UpsertEffect stores the live effect for (player, kind)
func (s *Store) UpsertEffect(ctx context.Context, effect domain.Effect) error {
	defer s.lock(ctx)()

	s.state.effects[effectKey{playerID: effect.PlayerID, kind: string(effect.Kind)}] = effectRow{Effect: effect}
	return nil
}

// DeleteEffect removes an effect
func (s *Store) DeleteEffect(ctx context.Context, playerID string, kind domain.EffectKind) error {
	defer s.lock(ctx)()

	delete(s.state.effects, effectKey{playerID: playerID, kind: string(kind)})
	return nil
}

// DeleteExpiredEffects reaps all expired effects
func (s *Store) DeleteExpiredEffects(ctx context.Context, now time.Time) (int64, error) {
	defer s.lock(ctx)()

	var n int64
	for key, row := range s.state.effects {
		if row.ExpiredAt(now) {
			delete(s.state.effects, key)
			n++
		}
	}
	return n, nil
}
