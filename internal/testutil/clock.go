// Package testutil holds fakes shared by package tests.
package testutil

import (
	"sync"
	"time"

	"github.com/akyairhashvil/holdclock/internal/countdown"
)

// ManualClock hands out a single ManualTicker that fires only when the test
// says so. A clock serves one runner: NewTicker may be called only once.
type ManualClock struct {
	mu     sync.Mutex
	ticker *ManualTicker
	ready  chan struct{}
}

// NewManualClock returns a clock with no ticker yet.
func NewManualClock() *ManualClock {
	return &ManualClock{ready: make(chan struct{})}
}

// NewTicker creates the clock's ticker. A second call panics.
func (c *ManualClock) NewTicker(d time.Duration) countdown.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker != nil {
		panic("testutil: ManualClock.NewTicker called twice")
	}
	c.ticker = &ManualTicker{ch: make(chan time.Time), interval: d}
	close(c.ready)
	return c.ticker
}

// Ticker blocks until NewTicker has been called and returns the ticker.
func (c *ManualClock) Ticker() *ManualTicker {
	<-c.ready
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticker
}

// ManualTicker is an unbuffered ticker: Fire returns once the consumer has
// received the firing, or false if the consumer is gone.
type ManualTicker struct {
	ch       chan time.Time
	interval time.Duration

	mu      sync.Mutex
	stopped bool
	stops   int
}

func (t *ManualTicker) C() <-chan time.Time { return t.ch }

func (t *ManualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.stops++
}

// Interval is the period the ticker was created with.
func (t *ManualTicker) Interval() time.Duration { return t.interval }

// Stopped reports whether Stop has been called.
func (t *ManualTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Stops counts Stop calls.
func (t *ManualTicker) Stops() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stops
}

// Fire delivers one firing, giving up after timeout.
func (t *ManualTicker) Fire(timeout time.Duration) bool {
	select {
	case t.ch <- time.Now():
		return true
	case <-time.After(timeout):
		return false
	}
}
