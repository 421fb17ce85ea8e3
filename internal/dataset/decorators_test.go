package dataset_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Nazarious-ucu/city-forecast-api/internal/dataset"
	"github.com/Nazarious-ucu/city-forecast-api/internal/models"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Load(ctx context.Context) ([]models.City, error) {
	args := m.Called(ctx)

	data, ok := args.Get(0).([]models.City)
	if !ok {
		return nil, args.Error(1)
	}

	return data, args.Error(1)
}

type mockCollector struct {
	mock.Mock
}

func (m *mockCollector) ObserveLatency(operation string, duration time.Duration) {
	m.Called(operation, duration)
}

func (m *mockCollector) IncrementCounter(metric string, labels ...string) {
	m.Called(metric, labels)
}

var testCities = []models.City{{ID: 1, Name: "Odesa", State: "OD"}}

func TestLoggingSource_Success(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	next := &mockSource{}
	next.On("Load", mock.Anything).Return(testCities, nil).Once()
	t.Cleanup(func() { next.AssertExpectations(t) })

	src := dataset.NewLoggingSource[models.City]("locales", next, zap.New(core))

	cities, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCities, cities)

	entries := logs.FilterMessage("dataset load completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "locales", entries[0].ContextMap()["dataset"])
	assert.EqualValues(t, 1, entries[0].ContextMap()["records"])
}

func TestLoggingSource_Error(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	next := &mockSource{}
	next.On("Load", mock.Anything).Return(nil, errors.New("disk gone")).Once()
	t.Cleanup(func() { next.AssertExpectations(t) })

	src := dataset.NewLoggingSource[models.City]("locales", next, zap.New(core))

	cities, err := src.Load(context.Background())
	require.EqualError(t, err, "disk gone")
	assert.Nil(t, cities)

	entries := logs.FilterMessage("dataset load failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "disk gone", entries[0].ContextMap()["error"])
}

func TestMetricsSource(t *testing.T) {
	testCases := []struct {
		name       string
		data       []models.City
		err        error
		wantResult string
	}{
		{name: "success", data: testCities, wantResult: "success"},
		{name: "error", err: errors.New("boom"), wantResult: "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next := &mockSource{}
			next.On("Load", mock.Anything).Return(tc.data, tc.err).Once()

			collector := &mockCollector{}
			collector.On("ObserveLatency", "locales", mock.AnythingOfType("time.Duration")).Once()
			collector.On("IncrementCounter", "locales", []string{tc.wantResult}).Once()

			t.Cleanup(func() {
				next.AssertExpectations(t)
				collector.AssertExpectations(t)
			})

			src := dataset.NewMetricsSource[models.City]("locales", next, collector)

			cities, err := src.Load(context.Background())
			assert.Equal(t, tc.err, err)
			assert.Equal(t, tc.data, cities)
		})
	}
}
