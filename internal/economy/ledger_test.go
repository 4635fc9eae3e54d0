package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CasinoBot_Go/internal/database/memory"
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

func newLedgerWithPlayer(t *testing.T, balance int64) (*Ledger, *memory.Store) {
	t.Helper()
	db := memory.NewStore()
	require.NoError(t, db.CreatePlayer(context.Background(), &domain.Player{
		ID: "p1", Platform: domain.PlatformAPI, PlatformID: "1", Username: "p1", Balance: balance,
	}))
	return NewLedger(db), db
}

func TestLedger_Adjust(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		balance int64
		delta   int64
		policy  domain.OverdraftPolicy
		want    int64
		wantErr error
	}{
		{"CASE 1: debit within balance", 100, -60, domain.NoOverdraft, 40, nil},
		{"CASE 2: debit to exactly zero", 100, -100, domain.NoOverdraft, 0, nil},
		{"CASE 3: debit below zero refused", 100, -101, domain.NoOverdraft, 100, domain.ErrInsufficientFunds},
		{"CASE 4: overdraft down to the limit", 50, -550, domain.OverdraftPolicy{Allow: true, Limit: 500}, -500, nil},
		{"CASE 5: overdraft past the limit refused", 50, -551, domain.OverdraftPolicy{Allow: true, Limit: 500}, 50, domain.ErrInsufficientFunds},
		{"CASE 6: credit while negative always applies", -300, 10, domain.NoOverdraft, -290, nil},
		{"CASE 7: disallowed policy ignores its limit", 10, -20, domain.OverdraftPolicy{Limit: 500}, 10, domain.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			ledger, db := newLedgerWithPlayer(t, tt.balance)

			// ACT
			got, err := ledger.Adjust(ctx, "p1", tt.delta, tt.policy)

			// ASSERT
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			p, err := db.GetPlayer(ctx, "p1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Balance)
		})
	}
}

func TestLedger_AdjustRoundTrip(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newLedgerWithPlayer(t, 1000)

	for _, d := range []int64{1, 37, 250, 999} {
		_, err := ledger.Adjust(ctx, "p1", -d, domain.NoOverdraft)
		require.NoError(t, err)
		got, err := ledger.Adjust(ctx, "p1", d, domain.NoOverdraft)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), got)
	}
}

func TestLedger_UnknownPlayer(t *testing.T) {
	ledger, _ := newLedgerWithPlayer(t, 0)

	_, err := ledger.Adjust(context.Background(), "nobody", 10, domain.NoOverdraft)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
