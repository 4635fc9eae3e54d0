package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// Reaper deletes expired effects and reports how many it removed
type Reaper interface {
	ReapExpired(ctx context.Context) (int64, error)
}

// Publisher publishes with retry in the background
type Publisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// EffectSweeper periodically reaps expired effects. Reads already ignore
// expired rows, so a missed sweep only delays cleanup.
type EffectSweeper struct {
	reaper    Reaper
	publisher Publisher
	interval  time.Duration
	timer     *time.Timer
	shutdown  chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
}

// NewEffectSweeper creates an EffectSweeper. publisher may be nil.
func NewEffectSweeper(reaper Reaper, publisher Publisher, interval time.Duration) *EffectSweeper {
	return &EffectSweeper{
		reaper:    reaper,
		publisher: publisher,
		interval:  interval,
		shutdown:  make(chan struct{}),
	}
}

// Start schedules the first sweep
func (w *EffectSweeper) Start() {
	w.scheduleNext()
}

func (w *EffectSweeper) scheduleNext() {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdown:
		return
	default:
	}

	w.timer = time.AfterFunc(w.interval, func() {
		w.mu.Lock()
		select {
		case <-w.shutdown:
			w.mu.Unlock()
			return
		default:
		}
		w.wg.Add(1)
		w.mu.Unlock()

		w.Sweep(context.Background())
		w.wg.Done()
		w.scheduleNext()
	})
	logger.Debug(LogMsgSweeperScheduled, "interval", w.interval)
}

// Sweep runs one reap pass
func (w *EffectSweeper) Sweep(ctx context.Context) int64 {
	log := logger.FromContext(ctx)

	n, err := w.reaper.ReapExpired(ctx)
	if err != nil {
		log.Error(LogMsgSweeperFailed, "error", err)
		return 0
	}
	if n == 0 {
		return 0
	}

	log.Info(LogMsgSweeperReaped, "count", n)
	if w.publisher != nil {
		w.publisher.PublishWithRetry(ctx, event.NewEffectExpiredEvent(n))
	}
	return n
}

// Shutdown cancels the pending sweep and waits for a running one to finish
func (w *EffectSweeper) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSweeperShuttingDown)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgSweeperShutdown)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgSweeperShutdownTimeout)
		return ctx.Err()
	}
}
