package dataset

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type source[T any] interface {
	Load(ctx context.Context) ([]T, error)
}

// LoggingSource writes one access-log entry per dataset load.
type LoggingSource[T any] struct {
	name   string
	next   source[T]
	logger *zap.Logger
}

func NewLoggingSource[T any](name string, next source[T], logger *zap.Logger) *LoggingSource[T] {
	return &LoggingSource[T]{name: name, next: next, logger: logger}
}

func (l *LoggingSource[T]) Load(ctx context.Context) ([]T, error) {
	start := time.Now()
	records, err := l.next.Load(ctx)
	duration := time.Since(start)

	if err != nil {
		l.logger.Error("dataset load failed",
			zap.String("dataset", l.name),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	l.logger.Info("dataset load completed",
		zap.String("dataset", l.name),
		zap.Int("records", len(records)),
		zap.Duration("duration", duration),
	)

	return records, nil
}
