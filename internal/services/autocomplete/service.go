package autocomplete

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/city-forecast-api/internal/models"
)

type citySource interface {
	Load(ctx context.Context) ([]models.City, error)
}

type Service struct {
	source citySource
	logger zerolog.Logger
}

func NewService(source citySource, logger zerolog.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Suggest returns, in dataset order, every city whose name contains input.
// Matching is case-sensitive and unanchored, so an empty input matches all cities.
func (s *Service) Suggest(ctx context.Context, input string) ([]models.City, error) {
	cities, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.City, 0)
	for _, city := range cities {
		if strings.Contains(city.Name, input) {
			results = append(results, city)
		}
	}

	s.logger.Debug().
		Str("user_input", input).
		Int("candidates", len(cities)).
		Int("results", len(results)).
		Msg("city autocomplete finished")

	return results, nil
}
