package app

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	_ "github.com/Nazarious-ucu/city-forecast-api/docs"
	"github.com/Nazarious-ucu/city-forecast-api/internal/config"
	"github.com/Nazarious-ucu/city-forecast-api/internal/dataset"
	autocompleteHTTP "github.com/Nazarious-ucu/city-forecast-api/internal/handlers/autocomplete"
	forecastHTTP "github.com/Nazarious-ucu/city-forecast-api/internal/handlers/forecast"
	"github.com/Nazarious-ucu/city-forecast-api/internal/handlers/health"
	"github.com/Nazarious-ucu/city-forecast-api/internal/metrics"
	"github.com/Nazarious-ucu/city-forecast-api/internal/models"
	"github.com/Nazarious-ucu/city-forecast-api/internal/services/autocomplete"
	"github.com/Nazarious-ucu/city-forecast-api/internal/services/forecast"
	"github.com/Nazarious-ucu/city-forecast-api/internal/tracing"
	fLogger "github.com/Nazarious-ucu/city-forecast-api/pkg/logger"
)

const (
	localesDataset = "locales"
	weatherDataset = "weather"
)

// ServiceContainer holds initialized dependencies for the HTTP server.
type ServiceContainer struct {
	AutocompleteService *autocomplete.Service
	ForecastService     *forecast.Service

	Router *gin.Engine
	Srv    *http.Server

	fileLogger     *zap.Logger
	tracerProvider *sdktrace.TracerProvider
}

// App ties together config and logger for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *App {
	return &App{
		cfg: cfg,
		l:   logger,
	}
}

// Start serves HTTP until ctx is cancelled or the listener fails.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.Init(ctx)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		a.l.Info().
			Str("address", a.cfg.ServerAddress()).
			Msg("starting HTTP server")
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.l.Info().Msg("shutdown signal received, stopping city forecast API")
	case err = <-serveErr:
		a.l.Error().Err(err).Msg("HTTP server failed")
	}

	if shutdownErr := a.Shutdown(srvContainer); shutdownErr != nil {
		a.l.Error().Err(shutdownErr).Msg("failed to shutdown application")
		return errors.Join(err, shutdownErr)
	}

	a.l.Info().Msg("application shutdown successfully")
	return err
}

// Shutdown stops the HTTP server, flushes traces and syncs the access log.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	a.l.Info().Msg("stopping city forecast API…")

	defer func(logger *zap.Logger) {
		if err := logger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync file logger")
		}
	}(srvContainer.fileLogger)

	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(a.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	var errs []error
	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	} else {
		a.l.Info().Msg("HTTP server stopped")
	}

	if err := srvContainer.tracerProvider.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Init builds datasets, services, handlers and the router without serving.
func (a *App) Init(ctx context.Context) (ServiceContainer, error) {
	a.l.Info().Msgf("initializing city forecast API with config: %+v", a.cfg)

	tp, err := tracing.NewProvider(ctx, a.cfg.Tracing.ServiceName, a.cfg.Tracing.Endpoint)
	if err != nil {
		return ServiceContainer{}, err
	}

	fileLogger, err := fLogger.NewFileLogger(a.cfg.AccessLogsPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create dataset access logger, access log disabled")
		fileLogger = zap.NewNop()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(
				collectors.GoRuntimeMetricsRule{Matcher: regexp.MustCompile("/sched/latencies:seconds")},
			),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(a.cfg.MetricsNamespace, reg)
	collector := metrics.NewPromCollector(a.cfg.MetricsNamespace, reg)

	cities := dataset.NewMetricsSource[models.City](localesDataset,
		dataset.NewLoggingSource[models.City](localesDataset,
			dataset.NewFileSource[models.City](a.cfg.Data.LocalesPath), fileLogger),
		collector,
	)
	forecasts := dataset.NewMetricsSource[models.Forecast](weatherDataset,
		dataset.NewLoggingSource[models.Forecast](weatherDataset,
			dataset.NewFileSource[models.Forecast](a.cfg.Data.WeatherPath), fileLogger),
		collector,
	)

	autocompleteService := autocomplete.NewService(cities, a.l)
	forecastService := forecast.NewService(forecasts, a.l)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(a.l), m.HTTPMiddleware())

	autocompleteHandler := autocompleteHTTP.NewHandler(autocompleteService, a.l)
	forecastHandler := forecastHTTP.NewHandler(forecastService, a.l)
	healthHandler := health.NewHandler(a.cfg.Data.LocalesPath, a.cfg.Data.WeatherPath)

	router.GET("/autocomplete_city", autocompleteHandler.AutocompleteCity)
	router.GET("/weatherforecast", forecastHandler.GetForecast)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))

	httpServer := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     otelhttp.NewHandler(router, a.cfg.Tracing.ServiceName),
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		AutocompleteService: autocompleteService,
		ForecastService:     forecastService,
		Router:              router,
		Srv:                 httpServer,
		fileLogger:          fileLogger,
		tracerProvider:      tp,
	}, nil
}
