package repository

import (
	"context"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Player defines the interface for player persistence and the balance ledger
type Player interface {
	// CreatePlayer inserts a new player; fails with domain.ErrAlreadyRegistered on a duplicate identity
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, id string) (*domain.Player, error)
	GetPlayerByPlatformID(ctx context.Context, platform, platformID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	UpdateUsername(ctx context.Context, id, username string) error

	// AdjustBalance applies delta in one atomic read-modify-write.
	// A debit that would leave the balance below floor fails with domain.ErrInsufficientFunds.
	AdjustBalance(ctx context.Context, id string, delta, floor int64) (int64, error)
	// TransferBalance moves amount between two players with no overdraft on the sender
	TransferBalance(ctx context.Context, senderID, recipientID string, amount int64) (senderBalance, recipientBalance int64, err error)

	SetLastDailyClaim(ctx context.Context, id string, claimedAt time.Time) error
	TopByBalance(ctx context.Context, limit int) ([]domain.Player, error)
}
