// Package leaktest checks that background workers wind down after a test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Settle is how long Snapshot's check waits for goroutines to exit
const Settle = time.Second

// Snapshot records the running goroutine count. The returned check fails t
// if, after waiting up to Settle, more than tolerance extra goroutines remain.
func Snapshot(t testing.TB) (check func(tolerance int)) {
	t.Helper()
	before := settledCount()

	return func(tolerance int) {
		t.Helper()
		deadline := time.Now().Add(Settle)
		after := runtime.NumGoroutine()
		for after-before > tolerance && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
			after = runtime.NumGoroutine()
		}
		if leaked := after - before; leaked > tolerance {
			t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d", before, after, leaked, tolerance)
		}
	}
}

// settledCount reads the count once the scheduler has caught up
func settledCount() int {
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)
	return runtime.NumGoroutine()
}
