// Package logging builds the application's zap logger from configuration.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mrlokans/strength-log/internal/config"
)

// New returns a JSON (production) or console (development) logger at the configured level.
func New(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zcfg zap.Config
	switch cfg.Format {
	case "", "json":
		zcfg = zap.NewProductionConfig()
	case "console":
		zcfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
