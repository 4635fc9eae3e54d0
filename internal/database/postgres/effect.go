package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// reapEffectSQL deletes the row when it expired at or before $3
const reapEffectSQL = `
	DELETE FROM player_effects
	WHERE player_id = $1 AND kind = $2 AND expires_at IS NOT NULL AND expires_at <= $3`

func scanEffect(row pgx.Row) (domain.Effect, error) {
	var (
		e       domain.Effect
		kind    string
		expires *time.Time
	)
	if err := row.Scan(&e.PlayerID, &kind, &e.SourceItemID, &expires, &e.Magnitude); err != nil {
		return domain.Effect{}, err
	}
	e.Kind = domain.EffectKind(kind)
	if expires != nil {
		e.ExpiresAt = *expires
	}
	return e, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// GetActiveEffect reads an effect, reaping it first if it has expired
func (s *Store) GetActiveEffect(ctx context.Context, playerID string, kind domain.EffectKind, now time.Time) (*domain.Effect, error) {
	if _, ok := parsePlayerID(playerID); !ok {
		return nil, nil
	}
	if _, err := s.db(ctx).Exec(ctx, reapEffectSQL, playerID, string(kind), now); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteFailed, tableEffects, err)
	}

	e, err := scanEffect(s.db(ctx).QueryRow(ctx, `
		SELECT player_id, kind, source_item_id, expires_at, magnitude
		FROM player_effects WHERE player_id = $1 AND kind = $2`, playerID, string(kind)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, tableEffects, err)
	}
	return &e, nil
}

// ListActiveEffects reaps and lists every effect of a player
func (s *Store) ListActiveEffects(ctx context.Context, playerID string, now time.Time) ([]domain.Effect, error) {
	if _, ok := parsePlayerID(playerID); !ok {
		return nil, nil
	}
	if _, err := s.db(ctx).Exec(ctx, `
		DELETE FROM player_effects
		WHERE player_id = $1 AND expires_at IS NOT NULL AND expires_at <= $2`, playerID, now); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteFailed, tableEffects, err)
	}

	rows, err := s.db(ctx).Query(ctx, `
		SELECT player_id, kind, source_item_id, expires_at, magnitude
		FROM player_effects WHERE player_id = $1 ORDER BY kind`, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, tableEffects, err)
	}
	defer rows.Close()

	var effects []domain.Effect
	for rows.Next() {
		e, err := scanEffect(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, tableEffects, err)
		}
		effects = append(effects, e)
	}
	return effects, rows.Err()
}

// UpsertEffect stores the live effect for (player, kind)
func (s *Store) UpsertEffect(ctx context.Context, effect domain.Effect) error {
	sqlStr, args, err := psql.Insert(tableEffects).
		Columns(colPlayerID, colKind, colSourceItemID, colExpiresAt, colMagnitude).
		Values(effect.PlayerID, string(effect.Kind), effect.SourceItemID, nullableTime(effect.ExpiresAt), effect.Magnitude).
		Suffix("ON CONFLICT (" + colPlayerID + ", " + colKind + ") DO UPDATE SET " +
			colSourceItemID + " = EXCLUDED." + colSourceItemID + ", " +
			colExpiresAt + " = EXCLUDED." + colExpiresAt + ", " +
			colMagnitude + " = EXCLUDED." + colMagnitude).
		ToSql()
	if err != nil {
		return fmt.Errorf(ErrMsgBuildQueryFailed, err)
	}
	if _, err := s.db(ctx).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf(ErrMsgInsertFailed, tableEffects, err)
	}
	return nil
}

// DeleteEffect removes an effect
func (s *Store) DeleteEffect(ctx context.Context, playerID string, kind domain.EffectKind) error {
	if _, ok := parsePlayerID(playerID); !ok {
		return nil
	}
	if _, err := s.db(ctx).Exec(ctx,
		`DELETE FROM player_effects WHERE player_id = $1 AND kind = $2`, playerID, string(kind)); err != nil {
		return fmt.Errorf(ErrMsgDeleteFailed, tableEffects, err)
	}
	return nil
}

// DeleteExpiredEffects reaps all expired effects
func (s *Store) DeleteExpiredEffects(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.db(ctx).Exec(ctx,
		`DELETE FROM player_effects WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgDeleteFailed, tableEffects, err)
	}
	return tag.RowsAffected(), nil
}
