package gameplay

import (
	"context"
	"sync"
	"time"
)

// Tick is one timer event. Gen identifies the Start call that produced it.
type Tick struct {
	Gen uint64
	Now time.Time
}

// Timer emits a Tick every interval between Start and Stop. Every Start and
// Stop begins a new generation, so a tick already queued from an earlier
// game can be recognised and dropped.
type Timer struct {
	interval time.Duration
	now      func() time.Time
	ticks    chan Tick

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewTimer creates a stopped timer
func NewTimer(interval time.Duration, now func() time.Time) *Timer {
	return &Timer{
		interval: interval,
		now:      now,
		ticks:    make(chan Tick, 1),
	}
}

// Ticks returns the channel ticks are delivered on
func (t *Timer) Ticks() <-chan Tick {
	return t.ticks
}

// Generation returns the current generation
func (t *Timer) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen
}

// Running reports whether a ticker goroutine is active
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// Start stops any running ticker and starts a new one. It returns the new
// generation.
func (t *Timer) Start() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	go t.run(ctx, t.gen)
	return t.gen
}

// Stop stops the ticker. Ticks already queued become stale.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Timer) stopLocked() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.gen++
}

func (t *Timer) run(ctx context.Context, gen uint64) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Drop the tick if the loop hasn't consumed the previous one;
			// elapsed time is recomputed from StartTime anyway.
			select {
			case t.ticks <- Tick{Gen: gen, Now: t.now()}:
			default:
			}
		}
	}
}
