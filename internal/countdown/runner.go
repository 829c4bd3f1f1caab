package countdown

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akyairhashvil/holdclock/internal/config"
	"go.uber.org/zap"
)

// ErrAlreadyStarted is returned by Start on a runner that was started before.
var ErrAlreadyStarted = errors.New("countdown runner already started")

// Observer is called with the new remaining time after every tick that
// changed it. It runs on the runner goroutine and must not block for long:
// the next tick is not read until it returns. An observer may call Stop.
type Observer func(RemainingTime)

// Runner drives a Countdown from a recurring ticker on its own goroutine.
// The ticker is owned by the runner and released on every exit path.
type Runner struct {
	cd       *Countdown
	clock    Clock
	interval time.Duration
	observer Observer
	logger   *zap.Logger

	inObserver atomic.Bool

	mu       sync.Mutex
	started  bool
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClock replaces the wall clock.
func WithClock(c Clock) RunnerOption {
	return func(r *Runner) { r.clock = c }
}

// WithInterval sets the tick period.
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithObserver registers a change callback.
func WithObserver(fn Observer) RunnerOption {
	return func(r *Runner) { r.observer = fn }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner wraps cd. The runner takes ownership of cd; callers read it
// through Snapshot from then on.
func NewRunner(cd *Countdown, opts ...RunnerOption) *Runner {
	r := &Runner{
		cd:       cd,
		clock:    SystemClock,
		interval: config.TickInterval,
		logger:   zap.NewNop(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start acquires the ticker and begins counting down. The countdown stops
// when it reaches 00:00, when Stop is called, or when ctx is cancelled.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return ErrAlreadyStarted
	}
	r.started = true
	ctx, r.cancel = context.WithCancel(ctx)
	ticker := r.clock.NewTicker(r.interval)
	r.mu.Unlock()

	r.logger.Debug("countdown started",
		zap.String("remaining", r.Snapshot().String()),
		zap.Duration("interval", r.interval))
	go r.loop(ctx, ticker)
	return nil
}

func (r *Runner) loop(ctx context.Context, ticker Ticker) {
	defer close(r.done)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("countdown cancelled", zap.String("remaining", r.Snapshot().String()))
			return
		case <-ticker.C():
		}
		// A firing can race with cancellation; cancellation wins.
		if ctx.Err() != nil {
			r.logger.Debug("countdown cancelled", zap.String("remaining", r.Snapshot().String()))
			return
		}

		r.mu.Lock()
		changed := r.cd.Tick()
		now := r.cd.Remaining()
		finished := r.cd.Done()
		r.mu.Unlock()

		if changed && r.observer != nil {
			r.inObserver.Store(true)
			r.observer(now)
			r.inObserver.Store(false)
		}
		if finished {
			r.logger.Info("reservation expired")
			return
		}
	}
}

// Stop cancels the schedule and waits for the runner goroutine to exit.
// It is safe to call more than once and before Start. Called from inside
// the observer it only cancels: the goroutine exits once the observer
// returns, without applying another tick.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		r.mu.Lock()
		started := r.started
		cancel := r.cancel
		r.started = true
		r.mu.Unlock()
		if !started {
			close(r.done)
			return
		}
		cancel()
	})
	if r.inObserver.Load() {
		return
	}
	<-r.done
}

// Done is closed once the runner goroutine has exited.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Snapshot returns the current remaining time.
func (r *Runner) Snapshot() RemainingTime {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cd.Remaining()
}

// Finished reports whether the countdown reached 00:00.
func (r *Runner) Finished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cd.Done()
}
