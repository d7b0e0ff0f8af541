// Package logger owns the process-wide zap logger. The model and copyrights
// core never log; only the pipeline and CLI do.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	logger *zap.Logger
)

// Init builds the logger once. Level accepts zap level names ("debug",
// "info", "warn", "error"); anything unparseable falls back to info.
func Init(level string) {
	once.Do(func() {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			lvl = zapcore.InfoLevel
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "timestamp"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.AddSync(os.Stderr),
			lvl,
		)
		logger = zap.New(core)
	})
}

// L returns the logger, initializing with defaults if Init was never called.
func L() *zap.Logger {
	if logger == nil {
		Init("info")
	}
	return logger
}

// S returns the sugared logger.
func S() *zap.SugaredLogger {
	return L().Sugar()
}

// Sync flushes buffered entries; safe to call at process exit.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
