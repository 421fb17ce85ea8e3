package autocomplete

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/city-forecast-api/internal/handlers/validation"
	"github.com/Nazarious-ucu/city-forecast-api/internal/models"
)

const timeoutDuration = 10 * time.Second

type citySuggester interface {
	Suggest(ctx context.Context, input string) ([]models.City, error)
}

type query struct {
	UserInput *string `form:"user_input" binding:"required"`
}

// Response wraps the matching cities.
type Response struct {
	Results []models.City `json:"results"`
}

type Handler struct {
	service citySuggester
	logger  zerolog.Logger
}

func NewHandler(svc citySuggester, logger zerolog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AutocompleteCity
// @Summary Autocomplete city names
// @Description Returns every city whose name contains user_input (case-sensitive)
// @Tags cities
// @Produce json
// @Param user_input query string true "Part of a city name"
// @Success 200 {object} Response
// @Failure 400 {object} validation.ErrorResponse
// @Failure 500
// @Router /autocomplete_city [get]
func (h *Handler) AutocompleteCity(c *gin.Context) {
	var q query
	if err := c.ShouldBindQuery(&q); err != nil {
		validation.BadRequest(c, err, q)
		return
	}

	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	results, err := h.service.Suggest(ctxWithTimeout, *q.UserInput)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("user_input", *q.UserInput).
			Msg("failed to autocomplete city")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cities"})
		return
	}

	c.JSON(http.StatusOK, Response{Results: results})
}
