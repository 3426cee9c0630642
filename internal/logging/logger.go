// SPDX-License-Identifier: MIT

// Package logging builds the application logger: a logr.Logger backed by
// zap, writing to stderr so stdout stays reserved for results.
package logging

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a console logger at the given level ("debug", "info",
// "warn", "error"). logr has no warning level: solver warnings are
// emitted at info level tagged "severity"="warning", so "warn" and above
// silence them.
func New(level string) (logr.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Discard(), fmt.Errorf("logging: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("logging: %w", err)
	}
	return zapr.NewLogger(zl), nil
}

// NewNop returns a logger that drops everything.
func NewNop() logr.Logger {
	return logr.Discard()
}
