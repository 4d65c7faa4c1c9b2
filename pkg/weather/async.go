package weather

import (
	"context"
	"log/slog"
	"sync"
)

// Async resolves a Fetcher in the background. Until the fetch succeeds it
// reports pending; a failed fetch leaves it pending for good.
type Async struct {
	mu       sync.RWMutex
	snapshot Snapshot
	resolved bool
	done     chan struct{}
}

// Start launches fetcher in a goroutine and returns the provider that will
// expose its result.
func Start(ctx context.Context, fetcher Fetcher, log *slog.Logger) *Async {
	a := &Async{done: make(chan struct{})}
	if log == nil {
		log = slog.Default()
	}
	go func() {
		defer close(a.done)
		s, err := fetcher.Fetch(ctx)
		if err != nil {
			log.Warn("weather lookup failed, temperature stays unknown", "error", err)
			return
		}
		a.mu.Lock()
		a.snapshot = s
		a.resolved = true
		a.mu.Unlock()
		log.Debug("weather resolved", "temp", s.Celsius(), "condition", s.Condition)
	}()
	return a
}

// Snapshot implements Provider.
func (a *Async) Snapshot() (Snapshot, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot, a.resolved
}

// Wait blocks until the fetch finished or ctx is done, whichever is first.
func (a *Async) Wait(ctx context.Context) {
	select {
	case <-a.done:
	case <-ctx.Done():
	}
}
