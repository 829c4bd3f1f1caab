// Package countdown implements the cart reservation countdown: a MM:SS
// clock that decrements once per tick, borrows a minute when the seconds
// run out, and stops for good at 00:00.
package countdown

import (
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/holdclock/internal/config"
)

// ErrInvalidConfig is returned when the initial minutes or seconds are out
// of range.
var ErrInvalidConfig = errors.New("invalid countdown configuration")

// RemainingTime is the time left on a reservation.
type RemainingTime struct {
	Minutes int
	Seconds int
}

// Format renders minutes and seconds as zero-padded MM:SS.
func Format(minutes, seconds int) string {
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func (r RemainingTime) String() string {
	return Format(r.Minutes, r.Seconds)
}

// Duration converts the remaining time to a time.Duration.
func (r RemainingTime) Duration() time.Duration {
	return time.Duration(r.Minutes)*time.Minute + time.Duration(r.Seconds)*time.Second
}

// IsZero reports whether the reservation has run out.
func (r RemainingTime) IsZero() bool {
	return r.Minutes == 0 && r.Seconds == 0
}

// Less reports whether r is strictly shorter than other.
func (r RemainingTime) Less(other RemainingTime) bool {
	return r.Duration() < other.Duration()
}

// Validate checks the bounds of a configured start value.
func Validate(minutes, seconds int) error {
	if minutes < 0 {
		return fmt.Errorf("%w: minutes must be >= 0, got %d", ErrInvalidConfig, minutes)
	}
	if seconds < 0 || seconds > 59 {
		return fmt.Errorf("%w: seconds must be within 0-59, got %d", ErrInvalidConfig, seconds)
	}
	return nil
}

// Countdown holds the remaining time of a single reservation. It is not
// safe for concurrent use; Runner serializes access for the goroutine case.
type Countdown struct {
	initial   RemainingTime
	remaining RemainingTime
	done      bool
}

// New returns a countdown starting at minutes:seconds. Out of range values
// are rejected rather than clamped.
func New(minutes, seconds int) (*Countdown, error) {
	if err := Validate(minutes, seconds); err != nil {
		return nil, err
	}
	start := RemainingTime{Minutes: minutes, Seconds: seconds}
	return &Countdown{initial: start, remaining: start}, nil
}

// Default returns a countdown at the default 05:30.
func Default() *Countdown {
	start := RemainingTime{Minutes: config.DefaultMinutes, Seconds: config.DefaultSeconds}
	return &Countdown{initial: start, remaining: start}
}

// Tick applies one decrement and reports whether the remaining time
// changed. The tick that lands on 00:00 marks the countdown done; every
// later call is a no-op.
func (c *Countdown) Tick() bool {
	if c.done {
		return false
	}
	switch {
	case c.remaining.Seconds > 0:
		c.remaining.Seconds--
	case c.remaining.Minutes == 0:
		c.done = true
		return false
	default:
		c.remaining.Minutes--
		c.remaining.Seconds = 59
	}
	if c.remaining.IsZero() {
		c.done = true
	}
	return true
}

// Remaining returns the current remaining time.
func (c *Countdown) Remaining() RemainingTime {
	return c.remaining
}

// Done reports whether the countdown reached its terminal state and
// stopped accepting ticks.
func (c *Countdown) Done() bool {
	return c.done
}

// Fraction is the share of the initial time still remaining, in [0,1].
func (c *Countdown) Fraction() float64 {
	total := c.initial.Duration()
	if total <= 0 {
		return 0
	}
	return float64(c.remaining.Duration()) / float64(total)
}
