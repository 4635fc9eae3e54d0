package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// the first contribution creates the pool at the larger of seed and amount
const addToPoolSQL = `
	INSERT INTO jackpot_pools (machine_key, amount)
	VALUES ($1, GREATEST($2::bigint, $3::bigint))
	ON CONFLICT (machine_key)
	DO UPDATE SET amount = jackpot_pools.amount + $2::bigint, updated_at = NOW()
	RETURNING amount`

// AddToPool increments a jackpot pool
func (s *Store) AddToPool(ctx context.Context, machineKey string, amount, seed int64) (int64, error) {
	var total int64
	if err := s.db(ctx).QueryRow(ctx, addToPoolSQL, machineKey, amount, seed).Scan(&total); err != nil {
		return 0, fmt.Errorf(ErrMsgUpdateFailed, tableJackpot, err)
	}
	return total, nil
}

// ResetPool pays out a pool and reseeds it, returning the amount paid
func (s *Store) ResetPool(ctx context.Context, machineKey string, seed int64) (int64, error) {
	var paid int64
	err := s.Do(ctx, func(ctx context.Context) error {
		err := s.db(ctx).QueryRow(ctx,
			`SELECT amount FROM jackpot_pools WHERE machine_key = $1 FOR UPDATE`, machineKey).Scan(&paid)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			paid = seed
		case err != nil:
			return fmt.Errorf(ErrMsgQueryFailed, tableJackpot, err)
		}

		_, err = s.db(ctx).Exec(ctx, `
			INSERT INTO jackpot_pools (machine_key, amount) VALUES ($1, $2)
			ON CONFLICT (machine_key) DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()`,
			machineKey, seed)
		if err != nil {
			return fmt.Errorf(ErrMsgUpdateFailed, tableJackpot, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return paid, nil
}

// GetPool reads a pool, creating it at seed
func (s *Store) GetPool(ctx context.Context, machineKey string, seed int64) (int64, error) {
	return s.AddToPool(ctx, machineKey, 0, seed)
}
