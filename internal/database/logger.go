package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

func newGormLogger(opts Options) logger.Interface {
	level := logger.Warn
	switch opts.LogLevel {
	case "silent":
		level = logger.Silent
	case "error":
		level = logger.Error
	case "info":
		level = logger.Info
	}

	return logger.New(zap.NewStdLog(opts.logger().Named("gorm")), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
