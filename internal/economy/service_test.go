package economy

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CasinoBot_Go/internal/concurrency"
	"github.com/osse101/CasinoBot_Go/internal/database/memory"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/effect"
	"github.com/osse101/CasinoBot_Go/internal/event"
)

var testItems = []domain.ShopItem{
	{ID: "credit_line", Name: "Credit Line", Type: domain.ItemTypeCreditLine, Price: 300, CreditLimit: 500},
	{ID: "lucky_charm", Name: "Lucky Charm", Type: domain.ItemTypeWinBoost, Price: 250, Multiplier: 2, Duration: time.Hour},
	{ID: "analytics_pass", Name: "Analytics Pass", Type: domain.ItemTypeAnalyticsAccess, Price: 150, Duration: 24 * time.Hour},
	{ID: "trophy", Name: "Golden Trophy", Type: domain.ItemTypeCollectible, Price: 5000, Unique: true},
}

type econFixture struct {
	svc *service
	db  *memory.Store
	now time.Time
}

func newEconFixture(t *testing.T) *econFixture {
	t.Helper()
	db := memory.NewStore()
	locks := concurrency.NewLockManager()
	effects := effect.NewStore(db, db, db, locks)

	f := &econFixture{db: db, now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	repos := Repos{Players: db, Inventory: db, SpinLog: db, Tx: db}
	f.svc = NewService(DefaultConfig(), repos, NewLedger(db), effects, locks, event.NewMemoryBus(), testItems).(*service)
	f.svc.now = func() time.Time { return f.now }
	t.Cleanup(func() { _ = f.svc.Shutdown(context.Background()) })
	return f
}

func (f *econFixture) register(t *testing.T, platformID, username string) *domain.Player {
	t.Helper()
	p, _, err := f.svc.Register(context.Background(), domain.PlatformDiscord, platformID, username)
	require.NoError(t, err)
	return p
}

func (f *econFixture) setBalance(t *testing.T, id string, balance int64) {
	t.Helper()
	p, err := f.db.GetPlayer(context.Background(), id)
	require.NoError(t, err)
	_, err = f.db.AdjustBalance(context.Background(), id, balance-p.Balance, -1<<62)
	require.NoError(t, err)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("CASE 1: new player starts with the starting balance", func(t *testing.T) {
		// ARRANGE
		f := newEconFixture(t)

		// ACT
		p, created, err := f.svc.Register(ctx, domain.PlatformDiscord, "123", "alice")

		// ASSERT
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(DefaultStartingBalance), p.Balance)
		assert.NotEmpty(t, p.ID)
	})

	t.Run("CASE 2: repeat registration returns the same player and syncs the name", func(t *testing.T) {
		f := newEconFixture(t)
		first := f.register(t, "123", "alice")

		again, created, err := f.svc.Register(ctx, domain.PlatformDiscord, "123", "alice_v2")

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, "alice_v2", again.Username)

		byName, err := f.db.GetPlayerByUsername(ctx, "alice_v2")
		require.NoError(t, err)
		assert.Equal(t, first.ID, byName.ID)
	})

	t.Run("CASE 3: unknown platform", func(t *testing.T) {
		f := newEconFixture(t)

		_, _, err := f.svc.Register(ctx, "myspace", "1", "bob")

		assert.ErrorIs(t, err, domain.ErrInvalidPlatform)
	})

	t.Run("CASE 4: resolve by chat identity", func(t *testing.T) {
		f := newEconFixture(t)
		p := f.register(t, "123", "alice")

		got, err := f.svc.ResolvePlayer(ctx, domain.PlatformDiscord, "123")
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)

		_, err = f.svc.ResolvePlayer(ctx, domain.PlatformTelegram, "123")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestClaimDaily(t *testing.T) {
	ctx := context.Background()

	t.Run("CASE 1: claim then cooldown then claim again", func(t *testing.T) {
		// ARRANGE
		f := newEconFixture(t)
		p := f.register(t, "1", "alice")

		// ACT
		claim, err := f.svc.ClaimDaily(ctx, p.ID)

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, int64(DefaultDailyBonus), claim.Bonus)
		assert.Equal(t, int64(1200), claim.Balance)

		f.now = f.now.Add(23 * time.Hour)
		_, err = f.svc.ClaimDaily(ctx, p.ID)
		assert.ErrorIs(t, err, domain.ErrOnCooldown)
		assert.Contains(t, err.Error(), "1h0m0s")

		f.now = f.now.Add(time.Hour)
		claim, err = f.svc.ClaimDaily(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1400), claim.Balance)
	})

	t.Run("CASE 2: concurrent claims pay once", func(t *testing.T) {
		f := newEconFixture(t)
		p := f.register(t, "1", "alice")

		var wg sync.WaitGroup
		var mu sync.Mutex
		successes := 0
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := f.svc.ClaimDaily(ctx, p.ID); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		got, err := f.db.GetPlayer(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1200), got.Balance)
	})
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("CASE 1: moves chips by username", func(t *testing.T) {
		f := newEconFixture(t)
		alice := f.register(t, "1", "alice")
		bob := f.register(t, "2", "bob")

		res, err := f.svc.Transfer(ctx, alice.ID, "@Bob", 300)

		require.NoError(t, err)
		assert.Equal(t, bob.ID, res.RecipientID)
		assert.Equal(t, int64(700), res.SenderBalance)
		assert.Equal(t, int64(1300), res.RecipientBalance)
	})

	t.Run("CASE 2: rejects bad transfers without moving chips", func(t *testing.T) {
		f := newEconFixture(t)
		alice := f.register(t, "1", "alice")
		f.register(t, "2", "bob")

		_, err := f.svc.Transfer(ctx, alice.ID, "alice", 10)
		assert.ErrorIs(t, err, domain.ErrSelfTransfer)

		_, err = f.svc.Transfer(ctx, alice.ID, "bob", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = f.svc.Transfer(ctx, alice.ID, "bob", 5000)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		_, err = f.svc.Transfer(ctx, alice.ID, "carol", 10)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		got, _ := f.db.GetPlayer(ctx, alice.ID)
		assert.Equal(t, int64(1000), got.Balance)
	})
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	f := newEconFixture(t)
	a := f.register(t, "1", "alice")
	b := f.register(t, "2", "bob")
	c := f.register(t, "3", "carol")
	f.setBalance(t, a.ID, 500)
	f.setBalance(t, b.ID, 2500)
	f.setBalance(t, c.ID, 900)

	entries, err := f.svc.Leaderboard(ctx, 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "carol", entries[1].Username)
}

func TestBalanceIncludesEffects(t *testing.T) {
	ctx := context.Background()
	f := newEconFixture(t)
	p := f.register(t, "1", "alice")
	_, err := f.svc.BuyItem(ctx, p.ID, "credit_line")
	require.NoError(t, err)
	_, err = f.svc.UseItem(ctx, p.ID, "credit_line")
	require.NoError(t, err)

	view, err := f.svc.Balance(ctx, p.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(700), view.Balance)
	require.Len(t, view.Effects, 1)
	assert.Equal(t, domain.EffectCreditLine, view.Effects[0].Kind)
}
