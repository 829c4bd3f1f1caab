// Package util provides logging setup, XDG path lookup and small helpers.
package util

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON logger appending to path. The terminal belongs to
// the TUI, so nothing is written to stdout or stderr. An empty path returns
// a no-op logger.
func NewLogger(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// LogError logs an error with context if it is non-nil.
func LogError(logger *zap.Logger, context string, err error) {
	if err != nil && logger != nil {
		logger.Error(context, zap.Error(err))
	}
}
