package forecast

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/city-forecast-api/internal/handlers/validation"
	"github.com/Nazarious-ucu/city-forecast-api/internal/models"
)

const (
	timeoutDuration = 10 * time.Second

	cityIDParam     = "city_id"
	notFoundMessage = "No weather forecast was found for your city. " +
		"Please contact our support team and inform the requested city_id: %d."
)

type forecastGetter interface {
	ByCity(ctx context.Context, cityID int) ([]models.Forecast, error)
}

type query struct {
	CityID string `form:"city_id" binding:"required,numeric"`
}

// NotFoundResponse is returned with status 200 when a city has no forecast.
type NotFoundResponse struct {
	Error  string `json:"error"`
	CityID int    `json:"city_id"`
}

type Handler struct {
	service forecastGetter
	logger  zerolog.Logger
}

func NewHandler(svc forecastGetter, logger zerolog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetForecast
// @Summary Get weather forecast
// @Description Returns the forecast records of a city. A city without forecast yields an error payload with status 200.
// @Tags weather
// @Produce json
// @Param city_id query int true "City identifier"
// @Success 200 {array} object
// @Success 200 {object} NotFoundResponse
// @Failure 400 {object} validation.ErrorResponse
// @Failure 500
// @Router /weatherforecast [get]
func (h *Handler) GetForecast(c *gin.Context) {
	var q query
	if err := c.ShouldBindQuery(&q); err != nil {
		validation.BadRequest(c, err, q)
		return
	}

	cityID, err := strconv.Atoi(q.CityID)
	if err != nil {
		validation.Field(c, cityIDParam, validation.InvalidInteger)
		return
	}

	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	forecasts, err := h.service.ByCity(ctxWithTimeout, cityID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int("city_id", cityID).
			Msg("failed to look up forecast")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load forecasts"})
		return
	}

	if len(forecasts) == 0 {
		h.logger.Warn().
			Int("city_id", cityID).
			Msg("no forecast found for city")
		c.JSON(http.StatusOK, NotFoundResponse{
			Error:  fmt.Sprintf(notFoundMessage, cityID),
			CityID: cityID,
		})
		return
	}

	c.JSON(http.StatusOK, forecasts)
}
