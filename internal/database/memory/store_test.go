package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

func seedPlayer(t *testing.T, s *Store, id string, balance int64) {
	t.Helper()
	require.NoError(t, s.CreatePlayer(context.Background(), &domain.Player{
		ID:         id,
		Platform:   domain.PlatformDiscord,
		PlatformID: "pid-" + id,
		Username:   "user-" + id,
		Balance:    balance,
		CreatedAt:  time.Now(),
	}))
}

func TestStore_AdjustBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("CASE 1: debit below floor is rejected and balance untouched", func(t *testing.T) {
		// ARRANGE
		s := NewStore()
		seedPlayer(t, s, "p1", 50)

		// ACT
		_, err := s.AdjustBalance(ctx, "p1", -100, 0)

		// ASSERT
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		p, _ := s.GetPlayer(ctx, "p1")
		assert.Equal(t, int64(50), p.Balance)
	})

	t.Run("CASE 2: overdraft floor allows a negative balance", func(t *testing.T) {
		s := NewStore()
		seedPlayer(t, s, "p1", 50)

		bal, err := s.AdjustBalance(ctx, "p1", -400, -500)

		require.NoError(t, err)
		assert.Equal(t, int64(-350), bal)
	})

	t.Run("CASE 3: credits ignore the floor", func(t *testing.T) {
		s := NewStore()
		seedPlayer(t, s, "p1", -10)

		bal, err := s.AdjustBalance(ctx, "p1", 5, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(-5), bal)
	})

	t.Run("CASE 4: unknown player", func(t *testing.T) {
		s := NewStore()

		_, err := s.AdjustBalance(ctx, "ghost", 5, 0)

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestStore_DoRollsBackOnError(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	s := NewStore()
	seedPlayer(t, s, "p1", 100)
	boom := errors.New("boom")

	// ACT
	err := s.Do(ctx, func(ctx context.Context) error {
		if _, err := s.AdjustBalance(ctx, "p1", -60, 0); err != nil {
			return err
		}
		if _, err := s.AddItem(ctx, "p1", "trophy", 1, 1); err != nil {
			return err
		}
		return boom
	})

	// ASSERT
	assert.ErrorIs(t, err, boom)
	p, _ := s.GetPlayer(ctx, "p1")
	assert.Equal(t, int64(100), p.Balance)
	qty, _ := s.GetQuantity(ctx, "p1", "trophy")
	assert.Zero(t, qty)
}

func TestStore_NestedDoJoinsOuterUnit(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedPlayer(t, s, "p1", 100)

	err := s.Do(ctx, func(ctx context.Context) error {
		return s.Do(ctx, func(ctx context.Context) error {
			_, err := s.AdjustBalance(ctx, "p1", 10, 0)
			return err
		})
	})

	require.NoError(t, err)
	p, _ := s.GetPlayer(ctx, "p1")
	assert.Equal(t, int64(110), p.Balance)
}

func TestStore_GetActiveEffectReapsExpired(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	s := NewStore()
	now := time.Now()
	require.NoError(t, s.UpsertEffect(ctx, domain.Effect{
		PlayerID:  "p1",
		Kind:      domain.EffectWinBoost,
		ExpiresAt: now.Add(-time.Second),
		Magnitude: 2,
	}))
	require.NoError(t, s.UpsertEffect(ctx, domain.Effect{
		PlayerID:  "p1",
		Kind:      domain.EffectCreditLine,
		Magnitude: 500,
	}))

	// ACT
	boost, err := s.GetActiveEffect(ctx, "p1", domain.EffectWinBoost, now)
	require.NoError(t, err)
	credit, err := s.GetActiveEffect(ctx, "p1", domain.EffectCreditLine, now.Add(1000*time.Hour))
	require.NoError(t, err)

	// ASSERT
	assert.Nil(t, boost)
	require.NotNil(t, credit, "effects without expiry never lapse")
	_, stillStored := s.state.effects[effectKey{playerID: "p1", kind: string(domain.EffectWinBoost)}]
	assert.False(t, stillStored, "expired row is removed by the read")
}

func TestStore_JackpotPool(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	total, err := s.AddToPool(ctx, "pharaoh", 5, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), total, "pool is created at max(amount, seed)")

	total, _ = s.AddToPool(ctx, "pharaoh", 7, 1000)
	assert.Equal(t, int64(1007), total)

	paid, err := s.ResetPool(ctx, "pharaoh", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1007), paid)

	current, _ := s.GetPool(ctx, "pharaoh", 1000)
	assert.Equal(t, int64(1000), current)
}

func TestStore_InventoryCaps(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.AddItem(ctx, "p1", "credit_line", 1, 1)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "p1", "credit_line", 1, 1)
	assert.ErrorIs(t, err, domain.ErrItemAlreadyOwned)

	left, err := s.ConsumeItem(ctx, "p1", "credit_line")
	require.NoError(t, err)
	assert.Zero(t, left)

	_, err = s.ConsumeItem(ctx, "p1", "credit_line")
	assert.ErrorIs(t, err, domain.ErrItemNotOwned)
}

func TestStore_TopWinners(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedPlayer(t, s, "a", 0)
	seedPlayer(t, s, "b", 0)

	require.NoError(t, s.RecordSpin(ctx, &domain.SpinRecord{PlayerID: "a", MachineKey: "fruit", Bet: 10, TotalWin: 20}))
	require.NoError(t, s.RecordSpin(ctx, &domain.SpinRecord{PlayerID: "b", MachineKey: "fruit", Bet: 10, TotalWin: 500}))
	require.NoError(t, s.RecordSpin(ctx, &domain.SpinRecord{PlayerID: "a", MachineKey: "pirate", Bet: 0, TotalWin: 0, WasFreeSpin: true}))

	winners, err := s.TopWinners(ctx, 5)
	require.NoError(t, err)
	require.Len(t, winners, 2)
	assert.Equal(t, "b", winners[0].PlayerID)
	assert.Equal(t, 1, winners[0].Rank)

	stats, err := s.GetSpinStats(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, stats["pirate"].FreeSpins)
	assert.Equal(t, int64(20), stats["fruit"].Won)
}
