package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger() *zap.SugaredLogger {
	return newLogger(zapcore.InfoLevel)
}

func NewDebugLogger() *zap.SugaredLogger {
	return newLogger(zapcore.DebugLevel)
}

func newLogger(level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(level)

	t, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return t.Sugar()
}
