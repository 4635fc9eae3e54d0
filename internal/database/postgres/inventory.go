package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// GetInventory lists a player's holdings
func (s *Store) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error) {
	if _, ok := parsePlayerID(playerID); !ok {
		return nil, nil
	}
	sqlStr, args, err := psql.Select(colPlayerID, colItemID, colQuantity).
		From(tableItems).
		Where(sq.Eq{colPlayerID: playerID}).
		OrderBy(colItemID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildQueryFailed, err)
	}

	rows, err := s.db(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, tableItems, err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		var e domain.InventoryEntry
		if err := rows.Scan(&e.PlayerID, &e.ItemID, &e.Quantity); err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, tableItems, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetQuantity returns how many units of an item a player holds
func (s *Store) GetQuantity(ctx context.Context, playerID, itemID string) (int, error) {
	if _, ok := parsePlayerID(playerID); !ok {
		return 0, nil
	}
	sqlStr, args, err := psql.Select(colQuantity).
		From(tableItems).
		Where(sq.Eq{colPlayerID: playerID, colItemID: itemID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBuildQueryFailed, err)
	}

	var qty int
	err = s.db(ctx).QueryRow(ctx, sqlStr, args...).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf(ErrMsgQueryFailed, tableItems, err)
	}
	return qty, nil
}

// addItemSQL refuses the increment when it would exceed a positive cap
const addItemSQL = `
	INSERT INTO player_items (player_id, item_id, quantity)
	SELECT $1::uuid, $2::text, $3::int
	WHERE $4::int <= 0 OR $3::int <= $4::int
	ON CONFLICT (player_id, item_id)
	DO UPDATE SET quantity = player_items.quantity + EXCLUDED.quantity
	WHERE $4::int <= 0 OR player_items.quantity + EXCLUDED.quantity <= $4::int
	RETURNING quantity`

// AddItem increments a holding up to maxQuantity
func (s *Store) AddItem(ctx context.Context, playerID, itemID string, quantity, maxQuantity int) (int, error) {
	var qty int
	err := s.db(ctx).QueryRow(ctx, addItemSQL, playerID, itemID, quantity, maxQuantity).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", domain.ErrItemAlreadyOwned, itemID)
	}
	if err != nil {
		return 0, fmt.Errorf(ErrMsgUpdateFailed, tableItems, err)
	}
	return qty, nil
}

// ConsumeItem removes one unit of an item, deleting the row at zero
func (s *Store) ConsumeItem(ctx context.Context, playerID, itemID string) (int, error) {
	if _, ok := parsePlayerID(playerID); !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrItemNotOwned, itemID)
	}

	var remaining int
	err := s.Do(ctx, func(ctx context.Context) error {
		err := s.db(ctx).QueryRow(ctx, `
			UPDATE player_items SET quantity = quantity - 1
			WHERE player_id = $1 AND item_id = $2 AND quantity > 1
			RETURNING quantity`, playerID, itemID).Scan(&remaining)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf(ErrMsgUpdateFailed, tableItems, err)
		}

		tag, err := s.db(ctx).Exec(ctx,
			`DELETE FROM player_items WHERE player_id = $1 AND item_id = $2 AND quantity = 1`, playerID, itemID)
		if err != nil {
			return fmt.Errorf(ErrMsgDeleteFailed, tableItems, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", domain.ErrItemNotOwned, itemID)
		}
		remaining = 0
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}
