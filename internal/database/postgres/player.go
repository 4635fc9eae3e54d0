package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

var playerColumns = []string{colID, colPlatform, colPlatformID, colUsername, colBalance, colLastDailyClaim, colCreatedAt}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var (
		p         domain.Player
		lastDaily *time.Time
	)
	if err := row.Scan(&p.ID, &p.Platform, &p.PlatformID, &p.Username, &p.Balance, &lastDaily, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.LastDailyClaim = lastDaily
	return &p, nil
}

func (s *Store) queryPlayer(ctx context.Context, where sq.Sqlizer, detail string) (*domain.Player, error) {
	sqlStr, args, err := psql.Select(playerColumns...).
		From(tablePlayers).
		Where(where).
		OrderBy(colCreatedAt).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildQueryFailed, err)
	}

	p, err := scanPlayer(s.db(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, detail)
		}
		return nil, fmt.Errorf(ErrMsgQueryFailed, tablePlayers, err)
	}
	return p, nil
}

// CreatePlayer inserts a player
func (s *Store) CreatePlayer(ctx context.Context, player *domain.Player) error {
	sqlStr, args, err := psql.Insert(tablePlayers).
		Columns(colID, colPlatform, colPlatformID, colUsername, colBalance, colCreatedAt).
		Values(player.ID, player.Platform, player.PlatformID, player.Username, player.Balance, player.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf(ErrMsgBuildQueryFailed, err)
	}

	if _, err := s.db(ctx).Exec(ctx, sqlStr, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s:%s", domain.ErrAlreadyRegistered, player.Platform, player.PlatformID)
		}
		return fmt.Errorf(ErrMsgInsertFailed, tablePlayers, err)
	}
	return nil
}

// GetPlayer loads a player by ID
func (s *Store) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	if _, ok := parsePlayerID(id); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return s.queryPlayer(ctx, sq.Eq{colID: id}, id)
}

// GetPlayerByPlatformID loads a player by chat identity
func (s *Store) GetPlayerByPlatformID(ctx context.Context, platform, platformID string) (*domain.Player, error) {
	return s.queryPlayer(ctx, sq.Eq{colPlatform: platform, colPlatformID: platformID}, platform+":"+platformID)
}

// GetPlayerByUsername matches case-insensitively; the oldest player wins a collision
func (s *Store) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return s.queryPlayer(ctx, sq.Expr("LOWER("+colUsername+") = LOWER(?)", username), username)
}

// UpdateUsername renames a player
func (s *Store) UpdateUsername(ctx context.Context, id, username string) error {
	sqlStr, args, err := psql.Update(tablePlayers).
		Set(colUsername, username).
		Set(colUpdatedAt, sq.Expr("NOW()")).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf(ErrMsgBuildQueryFailed, err)
	}

	tag, err := s.db(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateFailed, tablePlayers, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return nil
}

// adjustBalanceSQL applies a delta in one statement. Debits only match while the
// result stays at or above the floor; credits always match.
const adjustBalanceSQL = `
	UPDATE players
	SET balance = balance + $2::bigint, updated_at = NOW()
	WHERE id = $1 AND ($2::bigint >= 0 OR balance + $2::bigint >= $3::bigint)
	RETURNING balance`

// AdjustBalance applies delta, refusing debits below floor
func (s *Store) AdjustBalance(ctx context.Context, id string, delta, floor int64) (int64, error) {
	if _, ok := parsePlayerID(id); !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}

	var balance int64
	err := s.db(ctx).QueryRow(ctx, adjustBalanceSQL, id, delta, floor).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf(ErrMsgUpdateFailed, tablePlayers, err)
	}

	// no row matched: either the player is missing or the debit crossed the floor
	p, err := s.GetPlayer(ctx, id)
	if err != nil {
		return 0, err
	}
	return p.Balance, fmt.Errorf("%w: balance %d, debit %d", domain.ErrInsufficientFunds, p.Balance, -delta)
}

// TransferBalance moves chips between players, locking both rows in ID order
func (s *Store) TransferBalance(ctx context.Context, senderID, recipientID string, amount int64) (int64, int64, error) {
	for _, id := range []string{senderID, recipientID} {
		if _, ok := parsePlayerID(id); !ok {
			return 0, 0, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
		}
	}

	var senderBal, recipientBal int64
	err := s.Do(ctx, func(ctx context.Context) error {
		sqlStr, args, err := psql.Select(colID, colBalance).
			From(tablePlayers).
			Where(sq.Eq{colID: []string{senderID, recipientID}}).
			OrderBy(colID).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf(ErrMsgBuildQueryFailed, err)
		}

		rows, err := s.db(ctx).Query(ctx, sqlStr, args...)
		if err != nil {
			return fmt.Errorf(ErrMsgTransferLockFmt, err)
		}
		balances := make(map[string]int64, 2)
		for rows.Next() {
			var id string
			var bal int64
			if err := rows.Scan(&id, &bal); err != nil {
				rows.Close()
				return fmt.Errorf(ErrMsgScanFailed, tablePlayers, err)
			}
			balances[id] = bal
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf(ErrMsgTransferLockFmt, err)
		}

		for _, id := range []string{senderID, recipientID} {
			if _, ok := balances[id]; !ok {
				return fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
			}
		}
		if balances[senderID] < amount {
			return fmt.Errorf("%w: balance %d, transfer %d", domain.ErrInsufficientFunds, balances[senderID], amount)
		}

		if senderBal, err = s.AdjustBalance(ctx, senderID, -amount, 0); err != nil {
			return err
		}
		recipientBal, err = s.AdjustBalance(ctx, recipientID, amount, 0)
		return err
	})
	if err != nil {
		return 0, 0, err
	}
	return senderBal, recipientBal, nil
}

// SetLastDailyClaim stores the daily bonus timestamp
func (s *Store) SetLastDailyClaim(ctx context.Context, id string, claimedAt time.Time) error {
	sqlStr, args, err := psql.Update(tablePlayers).
		Set(colLastDailyClaim, claimedAt).
		Set(colUpdatedAt, sq.Expr("NOW()")).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf(ErrMsgBuildQueryFailed, err)
	}

	tag, err := s.db(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateFailed, tablePlayers, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return nil
}

// TopByBalance orders players by balance descending, then ID
func (s *Store) TopByBalance(ctx context.Context, limit int) ([]domain.Player, error) {
	q := psql.Select(playerColumns...).
		From(tablePlayers).
		OrderBy(colBalance+" DESC", colID)
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildQueryFailed, err)
	}

	rows, err := s.db(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, tablePlayers, err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, tablePlayers, err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}
