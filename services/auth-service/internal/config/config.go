package config

import (
	"github.com/rs/zerolog"

	sharedconfig "github.com/vasapolrittideah/task-tracker-api/shared/config"
	"github.com/vasapolrittideah/task-tracker-api/shared/logger"
)

const (
	ServiceName     = "auth-service"
	defaultHTTPPort = 3000
)

// AuthServiceConfig holds the auth-service settings, read from AUTH_SERVICE_* variables.
type AuthServiceConfig struct {
	HTTP           sharedconfig.HTTPConfig   `envPrefix:"HTTP_"`
	Mongo          sharedconfig.MongoConfig  `envPrefix:"MONGO_"`
	Consul         sharedconfig.ConsulConfig `envPrefix:"CONSUL_"`
	Log            logger.Config             `envPrefix:"LOG_"`
	GRPCHealthPort int                       `env:"GRPC_HEALTH_PORT"`
}

// Load parses and validates the configuration.
func Load() (*AuthServiceConfig, error) {
	cfg, err := sharedconfig.Parse[envAuthServiceConfig]()
	if err != nil {
		return nil, err
	}

	if cfg.AuthService.HTTP.Port == 0 {
		cfg.AuthService.HTTP.Port = defaultHTTPPort
	}

	if err := sharedconfig.Validate(cfg.AuthService.HTTP, cfg.AuthService.Mongo); err != nil {
		return nil, err
	}

	return &cfg.AuthService, nil
}

// NewAuthServiceConfig loads the configuration, exiting on failure.
func NewAuthServiceConfig(logger *zerolog.Logger) *AuthServiceConfig {
	cfg, err := Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load auth-service configuration")
	}

	return cfg
}

type envAuthServiceConfig struct {
	AuthService AuthServiceConfig `envPrefix:"AUTH_SERVICE_"`
}
