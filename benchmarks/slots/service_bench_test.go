package slots_bench

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/concurrency"
	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/database/memory"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/economy"
	"github.com/osse101/CasinoBot_Go/internal/effect"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/jackpot"
	"github.com/osse101/CasinoBot_Go/internal/slots"
)

const benchBalance = int64(1) << 40

func setupService(b *testing.B, players int) slots.Service {
	b.Helper()

	catalog := config.DefaultCatalog()
	registry, err := slots.NewRegistry(catalog.Machines)
	if err != nil {
		b.Fatalf("registry: %v", err)
	}

	db := memory.NewStore()
	for i := 0; i < players; i++ {
		id := "bench-" + strconv.Itoa(i)
		if err := db.CreatePlayer(context.Background(), &domain.Player{
			ID:         id,
			Platform:   domain.PlatformAPI,
			PlatformID: id,
			Username:   id,
			Balance:    benchBalance,
			CreatedAt:  time.Now(),
		}); err != nil {
			b.Fatalf("create player: %v", err)
		}
	}

	effects := effect.NewStore(db, db, db, concurrency.NewLockManager())
	pool := jackpot.NewPool(db, catalog.Machines)
	svc := slots.NewService(registry, db, db, db, economy.NewLedger(db), pool, effects, event.NewMemoryBus())
	b.Cleanup(func() { _ = svc.Shutdown(context.Background()) })
	return svc
}

func benchmarkSpin(b *testing.B, machine string) {
	svc := setupService(b, 1)
	ctx := context.Background()
	bet := int64(10)
	req := slots.SpinRequest{PlayerID: "bench-0", MachineKey: machine, Bet: &bet}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Spin(ctx, req); err != nil {
			b.Fatalf("spin: %v", err)
		}
	}
}

func BenchmarkSpin_Default(b *testing.B) {
	benchmarkSpin(b, "")
}

func BenchmarkSpin_EachMachine(b *testing.B) {
	for _, m := range config.DefaultCatalog().Machines {
		b.Run(m.Key, func(b *testing.B) {
			benchmarkSpin(b, m.Key)
		})
	}
}

// Spins settle one at a time; this measures that queue under contention
func BenchmarkSpin_ParallelPlayers(b *testing.B) {
	const players = 64
	svc := setupService(b, players)
	ctx := context.Background()
	var next atomic.Int64

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		id := "bench-" + strconv.Itoa(int(next.Add(1)-1)%players)
		bet := int64(10)
		req := slots.SpinRequest{PlayerID: id, Bet: &bet}
		for pb.Next() {
			if _, err := svc.Spin(ctx, req); err != nil {
				b.Errorf("spin: %v", err)
				return
			}
		}
	})
}
