package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Nazarious-ucu/city-forecast-api/internal/dataset"

// FileSource reads a JSON array of T from disk. Nothing is kept between
// calls: every Load opens, decodes and closes the file again.
type FileSource[T any] struct {
	path   string
	tracer trace.Tracer
}

func NewFileSource[T any](path string) *FileSource[T] {
	return &FileSource[T]{path: path, tracer: otel.Tracer(tracerName)}
}

func (s *FileSource[T]) Path() string {
	return s.path
}

func (s *FileSource[T]) Load(ctx context.Context) ([]T, error) {
	_, span := s.tracer.Start(ctx, "dataset.load",
		trace.WithAttributes(attribute.String("dataset.path", s.path)))
	defer span.End()

	file, err := os.Open(filepath.Clean(s.path))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to open dataset")
		return nil, fmt.Errorf("open dataset %s: %w", s.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var records []T
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode dataset")
		return nil, fmt.Errorf("decode dataset %s: %w", s.path, err)
	}
	if records == nil {
		records = []T{}
	}

	span.SetAttributes(attribute.Int("dataset.records", len(records)))
	span.SetStatus(codes.Ok, "")
	return records, nil
}
