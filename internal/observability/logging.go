// Package observability builds the console's structured logger.
package observability

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gymconsole/internal/config"
)

// NewLogger creates a JSON zap.Logger at the configured level. An
// unparseable level falls back to info.
func NewLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	return buildConfig(cfg).Build()
}

func buildConfig(cfg config.LoggerConfig) zap.Config {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "message",
			LevelKey:    "level",
			TimeKey:     "ts",
			NameKey:     "logger",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			EncodeTime:  zapcore.ISO8601TimeEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
}
