package leaderboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CasinoBot_Go/internal/database/memory"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/worker"
)

type incrCall struct {
	key    string
	amount float64
	member string
}

// fakeRedis answers with canned redis results
type fakeRedis struct {
	mu    sync.Mutex
	incrs []incrCall
	top   []redis.Z
	err   error
}

func (f *fakeRedis) ZIncrBy(_ context.Context, key string, increment float64, member string) *redis.FloatCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incrs = append(f.incrs, incrCall{key, increment, member})
	return redis.NewFloatResult(increment, f.err)
}

func (f *fakeRedis) ZRevRangeWithScores(_ context.Context, _ string, start, stop int64) *redis.ZSliceCmd {
	top := f.top
	if int(stop+1) < len(top) {
		top = top[:stop+1]
	}
	return redis.NewZSliceCmdResult(top, f.err)
}

func (f *fakeRedis) calls() []incrCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]incrCall(nil), f.incrs...)
}

func TestRedisBoard_RecordWin(t *testing.T) {
	// CASE 1: positive win increments the sorted set
	fake := &fakeRedis{}
	board := NewRedisBoard(fake)

	require.NoError(t, board.RecordWin(context.Background(), "p1", 250))
	require.Len(t, fake.calls(), 1)
	assert.Equal(t, incrCall{KeyWinners, 250, "p1"}, fake.calls()[0])

	// CASE 2: zero win is a no-op
	require.NoError(t, board.RecordWin(context.Background(), "p1", 0))
	assert.Len(t, fake.calls(), 1)

	// CASE 3: redis errors are wrapped
	fake.err = errors.New("connection refused")
	err := board.RecordWin(context.Background(), "p1", 10)
	assert.ErrorContains(t, err, "recording win")
}

func TestRedisBoard_TopWinnersOrdersTiesByID(t *testing.T) {
	fake := &fakeRedis{top: []redis.Z{
		{Score: 900, Member: "b"},
		{Score: 500, Member: "z"},
		{Score: 500, Member: "c"},
	}}

	entries, err := NewRedisBoard(fake).TopWinners(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "b", entries[0].PlayerID)
	assert.Equal(t, "c", entries[1].PlayerID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "z", entries[2].PlayerID)
	assert.Equal(t, int64(500), entries[2].TotalWon)
}

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	for _, id := range []string{"a", "b"} {
		require.NoError(t, s.CreatePlayer(ctx, &domain.Player{
			ID: id, Platform: domain.PlatformDiscord, PlatformID: "pid-" + id,
			Username: "user-" + id, CreatedAt: time.Now(),
		}))
	}
	require.NoError(t, s.RecordSpin(ctx, &domain.SpinRecord{PlayerID: "a", MachineKey: "fruit", Bet: 10, TotalWin: 40}))
	return s
}

func TestService_TopWinners(t *testing.T) {
	ctx := context.Background()

	t.Run("CASE 1: redis board with usernames", func(t *testing.T) {
		store := seedStore(t)
		fake := &fakeRedis{top: []redis.Z{{Score: 700, Member: "b"}}}
		svc := NewService(NewRedisBoard(fake), store, store)

		entries, err := svc.TopWinners(ctx, 0)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "user-b", entries[0].Username)
		assert.Equal(t, int64(700), entries[0].TotalWon)
	})

	t.Run("CASE 2: redis failure falls back to spin log", func(t *testing.T) {
		store := seedStore(t)
		fake := &fakeRedis{err: errors.New("timeout")}
		svc := NewService(NewRedisBoard(fake), store, store)

		entries, err := svc.TopWinners(ctx, 5)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "a", entries[0].PlayerID)
		assert.Equal(t, int64(40), entries[0].TotalWon)
	})

	t.Run("CASE 3: no board configured", func(t *testing.T) {
		store := seedStore(t)
		svc := NewService(nil, store, store)

		entries, err := svc.TopWinners(ctx, 5)

		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestRecorder_RecordsWinningSpins(t *testing.T) {
	// ARRANGE
	fake := &fakeRedis{}
	pool := worker.NewPool(1, 8)
	pool.Start()
	bus := event.NewMemoryBus()
	NewRecorder(NewRedisBoard(fake), pool).Register(bus)

	// ACT
	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewSpinCompletedEvent(&domain.SpinResult{
		PlayerID: "p1", MachineKey: "fruit", Bet: 100, TotalWinnings: 500, SettledAt: time.Now(),
	})))
	require.NoError(t, bus.Publish(ctx, event.NewSpinCompletedEvent(&domain.SpinResult{
		PlayerID: "p2", MachineKey: "fruit", Bet: 100, TotalWinnings: 0, SettledAt: time.Now(),
	})))
	pool.Stop()

	// ASSERT
	calls := fake.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "p1", calls[0].member)
	assert.Equal(t, float64(500), calls[0].amount)
}
