package dataset

import (
	"context"
	"time"
)

type metricsCollector interface {
	ObserveLatency(operation string, duration time.Duration)
	IncrementCounter(metric string, labels ...string)
}

type MetricsSource[T any] struct {
	name      string
	next      source[T]
	collector metricsCollector
}

func NewMetricsSource[T any](name string, next source[T], collector metricsCollector) *MetricsSource[T] {
	return &MetricsSource[T]{name: name, next: next, collector: collector}
}

func (m *MetricsSource[T]) Load(ctx context.Context) ([]T, error) {
	start := time.Now()
	records, err := m.next.Load(ctx)
	m.collector.ObserveLatency(m.name, time.Since(start))
	if err != nil {
		m.collector.IncrementCounter(m.name, "error")
	} else {
		m.collector.IncrementCounter(m.name, "success")
	}
	return records, err
}
