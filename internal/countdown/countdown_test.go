package countdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, m, s int) *Countdown {
	t.Helper()
	cd, err := New(m, s)
	require.NoError(t, err)
	return cd
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "00:05", Format(0, 5))
	assert.Equal(t, "12:00", Format(12, 0))
	assert.Equal(t, "00:00", Format(0, 0))
	assert.Equal(t, "05:30", RemainingTime{Minutes: 5, Seconds: 30}.String())
}

func TestDefault(t *testing.T) {
	cd := Default()
	assert.Equal(t, RemainingTime{Minutes: 5, Seconds: 30}, cd.Remaining())
	assert.False(t, cd.Done())
}

func TestNewRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name string
		m, s int
	}{
		{"negative minutes", -1, 0},
		{"negative seconds", 0, -1},
		{"seconds overflow", 1, 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cd, err := New(tc.m, tc.s)
			assert.Nil(t, cd)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestTickDecrementsSeconds(t *testing.T) {
	cd := mustNew(t, 3, 10)
	assert.True(t, cd.Tick())
	assert.Equal(t, RemainingTime{Minutes: 3, Seconds: 9}, cd.Remaining())
}

func TestTickBorrowsMinute(t *testing.T) {
	cd := mustNew(t, 4, 0)
	assert.True(t, cd.Tick())
	assert.Equal(t, RemainingTime{Minutes: 3, Seconds: 59}, cd.Remaining())
	assert.False(t, cd.Done())
}

func TestTickIsMonotonic(t *testing.T) {
	cd := mustNew(t, 2, 3)
	prev := cd.Remaining()
	for i := 0; i < 200; i++ {
		cd.Tick()
		now := cd.Remaining()
		assert.False(t, prev.Less(now), "tick %d went from %s to %s", i, prev, now)
		if now != prev {
			assert.True(t, now.Less(prev))
		}
		prev = now
	}
	assert.True(t, cd.Done())
}

func TestTerminalStateIsAbsorbing(t *testing.T) {
	cd := mustNew(t, 0, 2)
	assert.True(t, cd.Tick())
	assert.Equal(t, RemainingTime{Seconds: 1}, cd.Remaining())
	assert.False(t, cd.Done())

	assert.True(t, cd.Tick())
	assert.Equal(t, RemainingTime{}, cd.Remaining())
	assert.True(t, cd.Done())

	for i := 0; i < 5; i++ {
		assert.False(t, cd.Tick())
		assert.Equal(t, RemainingTime{}, cd.Remaining())
	}
}

func TestZeroStartFinishesOnFirstTick(t *testing.T) {
	cd := mustNew(t, 0, 0)
	assert.False(t, cd.Done())
	assert.False(t, cd.Tick())
	assert.True(t, cd.Done())
	assert.Equal(t, RemainingTime{}, cd.Remaining())
}

func TestOneMinuteRunsSixtyTicks(t *testing.T) {
	cd := mustNew(t, 1, 0)
	cd.Tick()
	assert.Equal(t, RemainingTime{Seconds: 59}, cd.Remaining())
	for i := 1; i < 60; i++ {
		cd.Tick()
	}
	assert.Equal(t, RemainingTime{}, cd.Remaining())
	assert.True(t, cd.Done())
}

func TestFraction(t *testing.T) {
	cd := mustNew(t, 0, 4)
	assert.InDelta(t, 1.0, cd.Fraction(), 1e-9)
	cd.Tick()
	assert.InDelta(t, 0.75, cd.Fraction(), 1e-9)
	assert.Equal(t, 0.0, mustNew(t, 0, 0).Fraction())
}
