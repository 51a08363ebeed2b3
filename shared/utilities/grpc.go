package utilities

import (
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer is a standalone gRPC server exposing grpc.health.v1.Health
// for orchestrators that probe over gRPC.
type HealthServer struct {
	grpcServer *grpc.Server
	health     *health.Server
	service    string
	logger     *zerolog.Logger
}

// RegisterHealthServer registers the gRPC health check service and reports
// NOT_SERVING until SetServing is called.
func RegisterHealthServer(grpcServer *grpc.Server, service string) *health.Server {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	return healthServer
}

// NewHealthServer creates a gRPC server with only the health service registered.
func NewHealthServer(logger *zerolog.Logger, service string) *HealthServer {
	grpcServer := grpc.NewServer()
	return &HealthServer{
		grpcServer: grpcServer,
		health:     RegisterHealthServer(grpcServer, service),
		service:    service,
		logger:     logger,
	}
}

// Serve accepts connections on lis until Stop is called.
func (s *HealthServer) Serve(lis net.Listener) error {
	s.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC health server listening")
	if err := s.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("serve gRPC health: %w", err)
	}
	return nil
}

// SetServing flips both the overall and the per-service status.
func (s *HealthServer) SetServing(serving bool) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(s.service, status)
}

// Stop marks the service as not serving and drains in-flight probes.
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
