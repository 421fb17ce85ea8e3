package config

import "github.com/kelseyhightower/envconfig"

type Server struct {
	Host            string `envconfig:"SERVER_HOST" default:"localhost"`
	Port            string `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     int    `envconfig:"SERVER_TIMEOUT" default:"10"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"5"`
}

type Data struct {
	LocalesPath string `envconfig:"LOCALES_PATH" default:"base/locales.json"`
	WeatherPath string `envconfig:"WEATHER_PATH" default:"base/weather.json"`
}

type Tracing struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"city-forecast-api"`
}

type Config struct {
	Server  Server
	Data    Data
	Tracing Tracing

	MetricsNamespace string `envconfig:"METRICS_NAMESPACE" default:"city_forecast"`

	LogsPath       string `envconfig:"LOGS_PATH" default:"./log/city-forecast-api.log"`
	AccessLogsPath string `envconfig:"ACCESS_LOGS_PATH" default:"./log/dataset-access.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}
