// Package server runs an HTTP service together with its optional gRPC health
// listener and Consul registration, and shuts all of them down in order.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/task-tracker-api/shared/config"
	"github.com/vasapolrittideah/task-tracker-api/shared/utilities"
)

// Registrar announces the service to a discovery backend.
type Registrar interface {
	Register() error
	Deregister() error
}

// Server bundles the listeners of one service.
type Server struct {
	logger    *zerolog.Logger
	cfg       config.HTTPConfig
	http      *http.Server
	health    *utilities.HealthServer
	healthLis net.Listener
	registrar Registrar
}

// Option customises a Server.
type Option func(*Server)

// WithGRPCHealth serves the gRPC health service on lis.
func WithGRPCHealth(health *utilities.HealthServer, lis net.Listener) Option {
	return func(s *Server) {
		s.health = health
		s.healthLis = lis
	}
}

// WithRegistrar registers the service after the listeners are up.
func WithRegistrar(r Registrar) Option {
	return func(s *Server) {
		s.registrar = r
	}
}

// New creates a Server for handler.
func New(logger *zerolog.Logger, cfg config.HTTPConfig, handler http.Handler, opts ...Option) *Server {
	s := &Server{
		logger: logger,
		cfg:    cfg,
		http: &http.Server{
			Addr:         cfg.Address(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves on lis until ctx is cancelled or a listener fails, then shuts down.
func (s *Server) Run(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 2)

	go func() {
		s.logger.Info().Str("address", lis.Addr().String()).Msg("HTTP server listening")
		if err := s.http.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serve HTTP: %w", err)
		}
	}()

	if s.health != nil {
		go func() {
			if err := s.health.Serve(s.healthLis); err != nil {
				errCh <- err
			}
		}()
		s.health.SetServing(true)
	}

	if s.registrar != nil {
		if err := s.registrar.Register(); err != nil {
			s.logger.Error().Err(err).Msg("failed to register service")
		} else {
			s.logger.Info().Msg("registered service with consul")
		}
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down")
	case runErr = <-errCh:
		s.logger.Error().Err(runErr).Msg("listener failed, shutting down")
	}

	s.shutdown()
	return runErr
}

func (s *Server) shutdown() {
	if s.registrar != nil {
		if err := s.registrar.Deregister(); err != nil {
			s.logger.Error().Err(err).Msg("failed to deregister service")
		}
	}

	if s.health != nil {
		s.health.SetServing(false)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to shut down HTTP server")
	}

	if s.health != nil {
		s.health.Stop()
	}
}
