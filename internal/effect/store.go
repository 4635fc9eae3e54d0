package effect

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/concurrency"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Store manages live player effects
type Store struct {
	repo     repository.Effect
	inv      repository.Inventory
	tx       repository.Transactor
	locks    *concurrency.LockManager
	handlers *HandlerRegistry
	now      func() time.Time
}

// NewStore creates an effect store
func NewStore(repo repository.Effect, inv repository.Inventory, tx repository.Transactor, locks *concurrency.LockManager) *Store {
	return &Store{
		repo:     repo,
		inv:      inv,
		tx:       tx,
		locks:    locks,
		handlers: NewHandlerRegistry(),
		now:      time.Now,
	}
}

// Active returns the live effect of kind, or nil. Expired rows are cleared by the same read.
func (s *Store) Active(ctx context.Context, playerID string, kind domain.EffectKind) (*domain.Effect, error) {
	e, err := s.repo.GetActiveEffect(ctx, playerID, kind, s.now())
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadEffectFailed, err)
	}
	return e, nil
}

// List returns every live effect of a player
func (s *Store) List(ctx context.Context, playerID string) ([]domain.Effect, error) {
	effects, err := s.repo.ListActiveEffects(ctx, playerID, s.now())
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadEffectFailed, err)
	}
	return effects, nil
}

// Clear removes an effect
func (s *Store) Clear(ctx context.Context, playerID string, kind domain.EffectKind) error {
	if err := s.repo.DeleteEffect(ctx, playerID, kind); err != nil {
		return fmt.Errorf(ErrMsgClearEffectFailed, err)
	}
	return nil
}

// Activate consumes one unit of item and applies its effect in one atomic unit
func (s *Store) Activate(ctx context.Context, playerID string, item domain.ShopItem) (*domain.Effect, error) {
	kind, handler, err := s.handlers.HandlerFor(item)
	if err != nil {
		return nil, err
	}

	defer s.locks.Lock(LockKeyActivate + playerID)()

	var activated domain.Effect
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.inv.ConsumeItem(ctx, playerID, item.ID); err != nil {
			return err
		}

		now := s.now()
		current, err := s.repo.GetActiveEffect(ctx, playerID, kind, now)
		if err != nil {
			return fmt.Errorf(ErrMsgReadEffectFailed, err)
		}

		activated, err = handler.Apply(playerID, item, current, now)
		if err != nil {
			return err
		}

		if err := s.repo.UpsertEffect(ctx, activated); err != nil {
			return fmt.Errorf(ErrMsgSaveEffectFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgEffectActivated,
		"player_id", playerID, "kind", kind, "item", item.ID, "expires_at", activated.ExpiresAt)
	return &activated, nil
}

// ReapExpired deletes every expired effect and returns how many were removed
func (s *Store) ReapExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpiredEffects(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf(ErrMsgReapFailed, err)
	}
	return n, nil
}
