package countdown

import "time"

// Ticker is the recurring schedule driving a Runner.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. It can be replaced with a manual implementation in
// tests.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(d)}
}

// SystemClock is the wall-clock implementation.
var SystemClock Clock = systemClock{}
