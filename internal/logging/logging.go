// Package logging builds the application logger. The TUI owns the
// terminal, so logs only ever go to a file, and only in debug mode.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where and whether logs are written
type Options struct {
	Debug bool
	File  string
}

// New returns a file logger when debug is on and a no-op logger otherwise
func New(opts Options) (*zap.Logger, error) {
	if !opts.Debug {
		return zap.NewNop(), nil
	}
	if opts.File == "" {
		return nil, fmt.Errorf("debug logging needs a log file")
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.Sampling = nil
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{opts.File}
	config.ErrorOutputPaths = []string{opts.File}
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("weezy"), nil
}
