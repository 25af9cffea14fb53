package logger

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey struct{}

var (
	global atomic.Pointer[Logger]

	// fallback пишет только предупреждения и ошибки, пока процесс не
	// настроил свой logger.
	fallback = newFallback()
)

func newFallback() *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	z, err := cfg.Build()
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{l: z.With(zap.String("logger", "fallback"))}
}

// NewContext кладет logger в контекст.
func NewContext(ctx context.Context, log *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// SetGlobalLogger задает logger процесса. nil возвращает резервный.
func SetGlobalLogger(log *Logger) {
	global.Store(log)
}

// Log возвращает logger из контекста, иначе глобальный, иначе резервный.
func Log(ctx context.Context) *Logger {
	if ctx != nil {
		if log, ok := ctx.Value(contextKey{}).(*Logger); ok && log != nil {
			return log
		}
	}
	if log := global.Load(); log != nil {
		return log
	}
	return fallback
}
