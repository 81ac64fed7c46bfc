package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level is shared by every logger, so it can be changed once config is read
var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

func NewLogger() *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	config.Level = level
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := config.Build()
	if err != nil {
		log.Panic(err)
	}

	// flushes buffer, if any
	defer logger.Sync()

	return logger.Sugar()
}

// SetLevel changes the level of all loggers e.g. "debug", "info", "warn"
func SetLevel(text string) error {
	return level.UnmarshalText([]byte(text))
}
