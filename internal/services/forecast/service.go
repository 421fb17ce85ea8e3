package forecast

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/city-forecast-api/internal/models"
)

type forecastSource interface {
	Load(ctx context.Context) ([]models.Forecast, error)
}

type Service struct {
	source forecastSource
	logger zerolog.Logger
}

func NewService(source forecastSource, logger zerolog.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// ByCity returns the forecasts whose locale.id equals cityID, in dataset order.
func (s *Service) ByCity(ctx context.Context, cityID int) ([]models.Forecast, error) {
	forecasts, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Forecast, 0)
	for _, f := range forecasts {
		if f.Locale.ID == cityID {
			matched = append(matched, f)
		}
	}

	s.logger.Debug().
		Int("city_id", cityID).
		Int("matched", len(matched)).
		Msg("forecast lookup finished")

	return matched, nil
}
