package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

type playerRow struct {
	domain.Player
}

func (r playerRow) toDomain() *domain.Player {
	p := r.Player
	if r.LastDailyClaim != nil {
		t := *r.LastDailyClaim
		p.LastDailyClaim = &t
	}
	return &p
}

// CreatePlayer inserts a player
func (s *Store) CreatePlayer(ctx context.Context, player *domain.Player) error {
	defer s.lock(ctx)()

	for _, row := range s.state.players {
		if row.Platform == player.Platform && row.PlatformID == player.PlatformID {
			return fmt.Errorf("%w: %s:%s", domain.ErrAlreadyRegistered, player.Platform, player.PlatformID)
		}
	}
	if _, ok := s.state.players[player.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyRegistered, player.ID)
	}
	s.state.players[player.ID] = playerRow{Player: *player}
	return nil
}

// GetPlayer loads a player by ID
func (s *Store) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	defer s.lock(ctx)()

	row, ok := s.state.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return row.toDomain(), nil
}

// GetPlayerByPlatformID loads a player by chat identity
func (s *Store) GetPlayerByPlatformID(ctx context.Context, platform, platformID string) (*domain.Player, error) {
	defer s.lock(ctx)()

	for _, row := range s.state.players {
		if row.Platform == platform && row.PlatformID == platformID {
			return row.toDomain(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s:%s", domain.ErrUserNotFound, platform, platformID)
}

// GetPlayerByUsername loads a player by username, ignoring case
func (s *Store) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	defer s.lock(ctx)()

	var found *playerRow
	for _, row := range s.state.players {
		if equalFold(row.Username, username) {
			if found == nil || row.CreatedAt.Before(found.CreatedAt) {
				r := row
				found = &r
			}
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	return found.toDomain(), nil
}

// UpdateUsername renames a player
func (s *Store) UpdateUsername(ctx context.Context, id, username string) error {
	defer s.lock(ctx)()

	row, ok := s.state.players[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	row.Username = username
	s.state.players[id] = row
	return nil
}

// AdjustBalance applies delta, refusing debits below floor
func (s *Store) AdjustBalance(ctx context.Context, id string, delta, floor int64) (int64, error) {
	defer s.lock(ctx)()

	row, ok := s.state.players[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	next := row.Balance + delta
	if delta < 0 && next < floor {
		return row.Balance, fmt.Errorf("%w: balance %d, debit %d", domain.ErrInsufficientFunds, row.Balance, -delta)
	}
	row.Balance = next
	s.state.players[id] = row
	return next, nil
}

// TransferBalance moves chips between players
func (s *Store) TransferBalance(ctx context.Context, senderID, recipientID string, amount int64) (int64, int64, error) {
	defer s.lock(ctx)()

	sender, ok := s.state.players[senderID]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", domain.ErrUserNotFound, senderID)
	}
	recipient, ok := s.state.players[recipientID]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", domain.ErrUserNotFound, recipientID)
	}
	if sender.Balance < amount {
		return 0, 0, fmt.Errorf("%w: balance %d, transfer %d", domain.ErrInsufficientFunds, sender.Balance, amount)
	}
	sender.Balance -= amount
	recipient.Balance += amount
	s.state.players[senderID] = sender
	s.state.players[recipientID] = recipient
	return sender.Balance, recipient.Balance, nil
}

// SetLastDailyClaim stores the daily bonus timestamp
func (s *Store) SetLastDailyClaim(ctx context.Context, id string, claimedAt time.Time) error {
	defer s.lock(ctx)()

	row, ok := s.state.players[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	t := claimedAt
	row.LastDailyClaim = &t
	s.state.players[id] = row
	return nil
}

// TopByBalance orders players by balance descending, then ID
func (s *Store) TopByBalance(ctx context.Context, limit int) ([]domain.Player, error) {
	defer s.lock(ctx)()

	players := make([]domain.Player, 0, len(s.state.players))
	for _, row := range s.state.players {
		players = append(players, *row.toDomain())
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].Balance != players[j].Balance {
			return players[i].Balance > players[j].Balance
		}
		return players[i].ID < players[j].ID
	})
	if limit > 0 && len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}
