package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/city-forecast-api/internal/app"
	"github.com/Nazarious-ucu/city-forecast-api/internal/config"
	"github.com/Nazarious-ucu/city-forecast-api/pkg/logger"
)

// @title City Forecast API
// @version 1.0
// @description City name autocomplete and weather forecast lookup over static datasets
// @host localhost:8080
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l := logger.NewLogger(cfg.LogsPath, "city-forecast-api", zerolog.InfoLevel)

	application := app.New(*cfg, l)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		l.Error().Err(err).Msg("application stopped with error")
		stop()
		log.Panic(err)
	}
}
