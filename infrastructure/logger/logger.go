package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps the shared zap instance so callers don't depend on zap's
// constructor zoo directly.
type Logger struct {
	Log *zap.Logger
}

func NewDevelopmentLogger() (*Logger, error) {
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &Logger{Log: log}, nil
}

func NewProductionLogger(level string) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Log: log}, nil
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.Log.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.Log.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.Log.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.Log.Error(msg, fields...) }
func (l *Logger) Panic(msg string, fields ...zap.Field) { l.Log.Panic(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...zap.Field) { l.Log.Fatal(msg, fields...) }
