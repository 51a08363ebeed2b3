package config

import (
	"github.com/rs/zerolog"

	sharedconfig "github.com/vasapolrittideah/task-tracker-api/shared/config"
	"github.com/vasapolrittideah/task-tracker-api/shared/logger"
)

const (
	ServiceName     = "task-service"
	defaultHTTPPort = 3001
)

// TaskServiceConfig holds the task-service settings, read from TASK_SERVICE_* variables.
type TaskServiceConfig struct {
	HTTP           sharedconfig.HTTPConfig   `envPrefix:"HTTP_"`
	Mongo          sharedconfig.MongoConfig  `envPrefix:"MONGO_"`
	Consul         sharedconfig.ConsulConfig `envPrefix:"CONSUL_"`
	Log            logger.Config             `envPrefix:"LOG_"`
	GRPCHealthPort int                       `env:"GRPC_HEALTH_PORT"`
}

// Load parses and validates the configuration.
func Load() (*TaskServiceConfig, error) {
	cfg, err := sharedconfig.Parse[envTaskServiceConfig]()
	if err != nil {
		return nil, err
	}

	if cfg.TaskService.HTTP.Port == 0 {
		cfg.TaskService.HTTP.Port = defaultHTTPPort
	}

	if err := sharedconfig.Validate(cfg.TaskService.HTTP, cfg.TaskService.Mongo); err != nil {
		return nil, err
	}

	return &cfg.TaskService, nil
}

// NewTaskServiceConfig loads the configuration, exiting on failure.
func NewTaskServiceConfig(logger *zerolog.Logger) *TaskServiceConfig {
	cfg, err := Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load task-service configuration")
	}

	return cfg
}

type envTaskServiceConfig struct {
	TaskService TaskServiceConfig `envPrefix:"TASK_SERVICE_"`
}
