// Package config holds configuration blocks shared by every service.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// HTTPConfig configures the public HTTP listener.
type HTTPConfig struct {
	Host            string        `env:"HOST"             envDefault:"0.0.0.0"`
	Port            int           `env:"PORT"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"    envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS"  envDefault:"*"            envSeparator:","`
}

// Address returns the host:port the HTTP server listens on.
func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MongoConfig holds the MongoDB connection settings.
type MongoConfig struct {
	URI              string        `env:"URI"               envDefault:"mongodb://localhost:27017"`
	Database         string        `env:"DATABASE"`
	ConnectTimeout   time.Duration `env:"CONNECT_TIMEOUT"   envDefault:"10s"`
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT" envDefault:"5s"`
}

// ConsulConfig enables service registration when Address is set.
type ConsulConfig struct {
	Address       string        `env:"ADDRESS"`
	ServiceHost   string        `env:"SERVICE_HOST"   envDefault:"localhost"`
	CheckInterval time.Duration `env:"CHECK_INTERVAL" envDefault:"10s"`
	CheckTimeout  time.Duration `env:"CHECK_TIMEOUT"  envDefault:"2s"`
}

// Enabled reports whether a Consul agent address was configured.
func (c ConsulConfig) Enabled() bool {
	return c.Address != ""
}

// Parse loads T from environment variables.
func Parse[T any]() (*T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// Validate checks the fields every service needs.
func Validate(httpCfg HTTPConfig, mongoCfg MongoConfig) error {
	var errs []error
	if httpCfg.Port <= 0 || httpCfg.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP port %d", httpCfg.Port))
	}
	if mongoCfg.URI == "" {
		errs = append(errs, errors.New("missing MongoDB URI"))
	}
	if mongoCfg.Database == "" {
		errs = append(errs, errors.New("missing MongoDB database name"))
	}
	if mongoCfg.OperationTimeout <= 0 {
		errs = append(errs, errors.New("MongoDB operation timeout must be positive"))
	}

	return errors.Join(errs...)
}
