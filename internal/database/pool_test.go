package database

import (
	"context"
	"flag"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CasinoBot_Go/internal/testing/leaktest"
	"github.com/osse101/CasinoBot_Go/internal/testing/pgtest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	terminate := func() {}
	if !testing.Short() {
		testDBConnString, terminate = pgtest.Start(context.Background())
	}

	code := m.Run()
	terminate()
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://%zz", PoolConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestNewPool_AppliesConfig(t *testing.T) {
	requireDB(t)

	t.Run("CASE 1: explicit size", func(t *testing.T) {
		pool, err := NewPool(context.Background(), testDBConnString, PoolConfig{MaxConns: 3, MaxLifetime: 5 * time.Minute})
		require.NoError(t, err)
		defer pool.Close()

		assert.Equal(t, int32(3), pool.Config().MaxConns)
		assert.Equal(t, 5*time.Minute, pool.Config().MaxConnLifetime)
	})

	t.Run("CASE 2: default size", func(t *testing.T) {
		pool, err := NewPool(context.Background(), testDBConnString, PoolConfig{})
		require.NoError(t, err)
		defer pool.Close()

		assert.Equal(t, int32(DefaultMaxConnections), pool.Config().MaxConns)
	})
}

func TestMigrate_CreatesSchemaIdempotently(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	pool, err := NewPool(ctx, testDBConnString, PoolConfig{MaxConns: 4})
	require.NoError(t, err)
	defer pool.Close()

	// ACT
	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool), "second run has nothing to apply")

	// ASSERT
	for _, table := range []string{"players", "jackpot_pools", "player_items", "player_effects", "spin_log"} {
		var exists bool
		err := pool.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s", table)
	}
}

func TestPool_ConcurrentAccessReleasesConnections(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), testDBConnString, PoolConfig{MaxConns: 5})
	require.NoError(t, err)
	defer pool.Close()

	checkLeaks := leaktest.Snapshot(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			var got int
			if err := pool.QueryRow(context.Background(), "SELECT $1::int", id).Scan(&got); err != nil {
				t.Errorf("worker %d: %v", id, err)
				return
			}
			if got != id {
				t.Errorf("worker %d got %d", id, got)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")
	checkLeaks(2)
}
