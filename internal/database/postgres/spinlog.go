package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// RecordSpin appends a spin record and sets its ID
func (s *Store) RecordSpin(ctx context.Context, record *domain.SpinRecord) error {
	sqlStr, args, err := psql.Insert(tableSpinLog).
		Columns(colPlayerID, colMachineKey, colBet, colTotalWin, colWasFreeSpin, colCreatedAt).
		Values(record.PlayerID, record.MachineKey, record.Bet, record.TotalWin, record.WasFreeSpin, record.CreatedAt).
		Suffix("RETURNING " + colID).
		ToSql()
	if err != nil {
		return fmt.Errorf(ErrMsgBuildQueryFailed, err)
	}
	if err := s.db(ctx).QueryRow(ctx, sqlStr, args...).Scan(&record.ID); err != nil {
		return fmt.Errorf(ErrMsgInsertFailed, tableSpinLog, err)
	}
	return nil
}

// GetSpinStats aggregates a player's records per machine
func (s *Store) GetSpinStats(ctx context.Context, playerID string) (map[string]domain.SpinStats, error) {
	stats := make(map[string]domain.SpinStats)
	if _, ok := parsePlayerID(playerID); !ok {
		return stats, nil
	}

	sqlStr, args, err := psql.Select(
		colMachineKey,
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE "+colWasFreeSpin+")",
		"COALESCE(SUM("+colBet+"), 0)",
		"COALESCE(SUM("+colTotalWin+"), 0)",
		"COALESCE(MAX("+colTotalWin+"), 0)",
	).
		From(tableSpinLog).
		Where(sq.Eq{colPlayerID: playerID}).
		GroupBy(colMachineKey).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildQueryFailed, err)
	}

	rows, err := s.db(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, tableSpinLog, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key string
			st  domain.SpinStats
		)
		if err := rows.Scan(&key, &st.Spins, &st.FreeSpins, &st.Wagered, &st.Won, &st.BiggestWin); err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, tableSpinLog, err)
		}
		stats[key] = st
	}
	return stats, rows.Err()
}

// TopWinners ranks players by total winnings
func (s *Store) TopWinners(ctx context.Context, limit int) ([]domain.WinnerEntry, error) {
	q := psql.Select("l."+colPlayerID, "p."+colUsername, "SUM(l."+colTotalWin+") AS won").
		From(tableSpinLog+" l").
		Join(tablePlayers+" p ON p."+colID+" = l."+colPlayerID).
		GroupBy("l."+colPlayerID, "p."+colUsername).
		Having("SUM(l."+colTotalWin+") > 0").
		OrderBy("won DESC", "l."+colPlayerID)
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildQueryFailed, err)
	}

	rows, err := s.db(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, tableSpinLog, err)
	}
	defer rows.Close()

	var entries []domain.WinnerEntry
	for rows.Next() {
		var e domain.WinnerEntry
		if err := rows.Scan(&e.PlayerID, &e.Username, &e.TotalWon); err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, tableSpinLog, err)
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
