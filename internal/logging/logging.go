// Package logging builds the zap logger shared by the CLI layers.
//
// Logs go to stderr with a console encoder so they never interleave with the
// prompt redraw on stdout. The default level is warn; set
// CREATEKAPP_LOG_LEVEL=debug to trace URLs and byte counts.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultConfig returns the zap config used for interactive runs.
func DefaultConfig(level zapcore.Level) zap.Config {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     enc,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// New builds a logger for the named level ("debug", "info", "warn", ...).
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger, err := DefaultConfig(lvl).Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// NewWriter builds a logger that writes console-encoded entries to w.
func NewWriter(w io.Writer, level zapcore.Level) *zap.Logger {
	cfg := DefaultConfig(level)
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg.EncoderConfig),
		zapcore.AddSync(w),
		cfg.Level,
	)
	return zap.New(core)
}
