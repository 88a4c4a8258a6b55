// Package logger builds the zap logger shared by the command-line tools.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr at the given level
// ("debug", "info", "warn" or "error").
func New(level string) (*zap.Logger, error) {
	cfg, err := newConfig(level, "stderr")
	if err != nil {
		return nil, err
	}

	return cfg.Build()
}

// newConfig returns the console configuration writing to the given paths.
// Sampling is off: every per-trial record reaches the sink.
func newConfig(level string, paths ...string) (zap.Config, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("logger: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = paths
	cfg.DisableStacktrace = true
	cfg.Sampling = nil

	return cfg, nil
}
