package forecast_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/city-forecast-api/internal/handlers/forecast"
	"github.com/Nazarious-ucu/city-forecast-api/internal/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ByCity(ctx context.Context, cityID int) ([]models.Forecast, error) {
	args := m.Called(ctx, cityID)

	data, ok := args.Get(0).([]models.Forecast)
	if !ok {
		return nil, args.Error(1)
	}

	return data, args.Error(1)
}

func serve(t *testing.T, m *mockService, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req

	forecast.NewHandler(m, zerolog.Nop()).GetForecast(c)
	return rec
}

func TestGetForecast_InvalidCityID(t *testing.T) {
	testCases := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{name: "missing", target: "/weatherforecast", wantMsg: "Missing data for required field."},
		{name: "empty", target: "/weatherforecast?city_id=", wantMsg: "Missing data for required field."},
		{name: "not a number", target: "/weatherforecast?city_id=abc", wantMsg: "Not a valid integer."},
		{name: "decimal", target: "/weatherforecast?city_id=3477.5", wantMsg: "Not a valid integer."},
		{name: "overflow", target: "/weatherforecast?city_id=99999999999999999999999", wantMsg: "Not a valid integer."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &mockService{}
			t.Cleanup(func() {
				m.AssertNumberOfCalls(t, "ByCity", 0)
			})

			rec := serve(t, m, tc.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body struct {
				Error   string              `json:"error"`
				Details map[string][]string `json:"details"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "invalid query parameters", body.Error)
			assert.Equal(t, []string{tc.wantMsg}, body.Details["city_id"])
		})
	}
}

func TestGetForecast_Success(t *testing.T) {
	var forecasts []models.Forecast
	require.NoError(t, json.Unmarshal([]byte(
		`[{"locale":{"id":3477,"name":"São Paulo"},"weather":[{"date":"2017-02-01"}]},{"locale":{"id":3477},"weather":[]}]`),
		&forecasts))

	m := &mockService{}
	m.On("ByCity", mock.Anything, 3477).Return(forecasts, nil).Once()
	t.Cleanup(func() { m.AssertExpectations(t) })

	rec := serve(t, m, "/weatherforecast?city_id=3477")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"locale":{"id":3477,"name":"São Paulo"},"weather":[{"date":"2017-02-01"}]},{"locale":{"id":3477},"weather":[]}]`,
		rec.Body.String())
}

func TestGetForecast_NegativeCityID(t *testing.T) {
	m := &mockService{}
	m.On("ByCity", mock.Anything, -1).Return([]models.Forecast{}, nil).Once()
	t.Cleanup(func() { m.AssertExpectations(t) })

	rec := serve(t, m, "/weatherforecast?city_id=-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"city_id":-1`)
}

func TestGetForecast_NotFound(t *testing.T) {
	m := &mockService{}
	m.On("ByCity", mock.Anything, 42).Return([]models.Forecast{}, nil).Once()
	t.Cleanup(func() { m.AssertExpectations(t) })

	rec := serve(t, m, "/weatherforecast?city_id=42")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"error":"No weather forecast was found for your city. Please contact our support team and inform the requested city_id: 42.","city_id":42}`,
		rec.Body.String())
}

func TestGetForecast_ServiceError(t *testing.T) {
	m := &mockService{}
	m.On("ByCity", mock.Anything, 3477).Return(nil, errors.New("decode dataset: unexpected EOF")).Once()
	t.Cleanup(func() { m.AssertExpectations(t) })

	rec := serve(t, m, "/weatherforecast?city_id=3477")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to load forecasts"}`, rec.Body.String())
}
