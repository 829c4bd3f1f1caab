package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/holdclock/internal/config"
	"github.com/akyairhashvil/holdclock/internal/countdown"
	"github.com/akyairhashvil/holdclock/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func newTestApp(clock countdown.Clock) (*app, *bytes.Buffer) {
	var out bytes.Buffer
	return &app{
		out:        &out,
		clock:      clock,
		isTerminal: func() bool { return false },
	}, &out
}

func baseArgs(t *testing.T) []string {
	return []string{
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--log-file=",
	}
}

func TestRunPlainUntilExpiry(t *testing.T) {
	clock := testutil.NewManualClock()
	a, out := newTestApp(clock)
	cmd := a.rootCmd()
	cmd.SetArgs(append(baseArgs(t), "--minutes", "0", "--seconds", "2"))

	errCh := make(chan error, 1)
	go func() { errCh <- cmd.Execute() }()

	ticker := clock.Ticker()
	for i := 0; i < 2; i++ {
		if !ticker.Fire(2 * time.Second) {
			t.Fatalf("tick %d not consumed", i)
		}
	}
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("command did not finish")
	}

	got := out.String()
	for _, want := range []string{config.DefaultBanner, "reserved for 00:02", "reserved for 00:01", "reserved for 00:00", config.ExpiredMessage} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRunRejectsInvalidSeconds(t *testing.T) {
	a, _ := newTestApp(testutil.NewManualClock())
	cmd := a.rootCmd()
	cmd.SetArgs(append(baseArgs(t), "--seconds", "75"))
	err := cmd.Execute()
	if !errors.Is(err, countdown.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRunRejectsNegativeMinutes(t *testing.T) {
	a, _ := newTestApp(testutil.NewManualClock())
	cmd := a.rootCmd()
	cmd.SetArgs(append(baseArgs(t), "--minutes=-1"))
	if err := cmd.Execute(); !errors.Is(err, countdown.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRunPlainCancelled(t *testing.T) {
	cd := countdown.Default()
	clock := testutil.NewManualClock()
	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runPlain(ctx, &out, cd, "banner", zap.NewNop(), clock); err != nil {
		t.Fatalf("runPlain failed: %v", err)
	}
	if strings.Contains(out.String(), config.ExpiredMessage) {
		t.Fatalf("cancelled reservation should not report expiry")
	}
	if !clock.Ticker().Stopped() {
		t.Fatalf("expected ticker to be released")
	}
}

func TestRunTUICancelledExitsCleanly(t *testing.T) {
	a, _ := newTestApp(testutil.NewManualClock())
	a.isTerminal = func() bool { return true }
	a.programOpts = []tea.ProgramOption{tea.WithInput(nil), tea.WithOutput(io.Discard)}
	cmd := a.rootCmd()
	cmd.SetArgs(baseArgs(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("expected clean exit on teardown, got %v", err)
	}
}
