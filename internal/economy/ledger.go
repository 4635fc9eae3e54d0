package economy

import (
	"context"
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Ledger is the only path by which balances change
type Ledger struct {
	repo repository.Player
}

// NewLedger creates a ledger over the player repository
func NewLedger(repo repository.Player) *Ledger {
	return &Ledger{repo: repo}
}

// Adjust applies delta atomically. Debits may not cross the policy floor; credits always apply.
func (l *Ledger) Adjust(ctx context.Context, playerID string, delta int64, policy domain.OverdraftPolicy) (int64, error) {
	bal, err := l.repo.AdjustBalance(ctx, playerID, delta, policy.Floor())
	if err != nil {
		return 0, fmt.Errorf(ErrMsgAdjustBalanceFailed, err)
	}
	return bal, nil
}

// Transfer moves amount from sender to recipient as one unit, never overdrawing the sender
func (l *Ledger) Transfer(ctx context.Context, senderID, recipientID string, amount int64) (int64, int64, error) {
	if amount <= 0 {
		return 0, 0, fmt.Errorf(ErrMsgInvalidAmountFmt, domain.ErrInvalidAmount, amount)
	}
	if senderID == recipientID {
		return 0, 0, fmt.Errorf(ErrMsgSelfTransferFmt, domain.ErrSelfTransfer, senderID)
	}

	senderBal, recipientBal, err := l.repo.TransferBalance(ctx, senderID, recipientID, amount)
	if err != nil {
		return 0, 0, fmt.Errorf(ErrMsgTransferFailed, err)
	}
	return senderBal, recipientBal, nil
}
