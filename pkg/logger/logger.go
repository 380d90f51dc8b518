package logger

import (
	"context"
	"fmt"

	"github.com/vzahanych/city-weather/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006-01-02 15:04:05"

type Logger struct {
	*zap.Logger
}

// New builds a logger writing to cfg.OutputPath. File sinks are opened in
// append mode, so repeated runs keep extending the same log.
func New(cfg config.LoggingConfig) (*Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	encoding := cfg.Format
	if encoding == "" {
		encoding = "console"
	}

	output := cfg.OutputPath
	if output == "" {
		output = "stderr"
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	zcfg := zap.Config{
		Level:            level,
		Encoding:         encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{logger}, nil
}

func (l *Logger) Sync() error {
	return l.Logger.Sync()
}

type requestIDKey struct{}

// ContextWithRequestID attaches a request id for correlated logging further
// down the call chain.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the id set by ContextWithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
