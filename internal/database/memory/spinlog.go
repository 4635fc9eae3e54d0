package memory

import (
	"context"
	"sort"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

type spinRow struct {
	domain.SpinRecord
}

// RecordSpin appends a spin record
func (s *Store) RecordSpin(ctx context.Context, record *domain.SpinRecord) error {
	defer s.lock(ctx)()

	s.state.nextSpin++
	record.ID = s.state.nextSpin
	s.state.spins = append(s.state.spins, spinRow{SpinRecord: *record})
	return nil
}

// GetSpinStats aggregates a player's records per machine
func (s *Store) GetSpinStats(ctx context.Context, playerID string) (map[string]domain.SpinStats, error) {
	defer s.lock(ctx)()

	stats := make(map[string]domain.SpinStats)
	for _, row := range s.state.spins {
		if row.PlayerID != playerID {
			continue
		}
		st := stats[row.MachineKey]
		st.Add(row.SpinRecord)
		stats[row.MachineKey] = st
	}
	return stats, nil
}

// TopWinners ranks players by total winnings
func (s *Store) TopWinners(ctx context.Context, limit int) ([]domain.WinnerEntry, error) {
	defer s.lock(ctx)()

	totals := make(map[string]int64)
	for _, row := range s.state.spins {
		totals[row.PlayerID] += row.TotalWin
	}

	entries := make([]domain.WinnerEntry, 0, len(totals))
	for pid, won := range totals {
		if won <= 0 {
			continue
		}
		entries = append(entries, domain.WinnerEntry{
			PlayerID: pid,
			Username: s.state.players[pid].Username,
			TotalWon: won,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalWon != entries[j].TotalWon {
			return entries[i].TotalWon > entries[j].TotalWon
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
