package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/vasapolrittideah/task-tracker-api/services/auth-service/internal/config"
	"github.com/vasapolrittideah/task-tracker-api/services/auth-service/internal/handler"
	"github.com/vasapolrittideah/task-tracker-api/services/auth-service/internal/repository"
	"github.com/vasapolrittideah/task-tracker-api/services/auth-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/database"
	"github.com/vasapolrittideah/task-tracker-api/shared/discovery"
	"github.com/vasapolrittideah/task-tracker-api/shared/logger"
	"github.com/vasapolrittideah/task-tracker-api/shared/server"
	"github.com/vasapolrittideah/task-tracker-api/shared/utilities"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootLogger := logger.New(config.ServiceName, logger.Config{})
	cfg := config.NewAuthServiceConfig(bootLogger)
	log := logger.New(config.ServiceName, cfg.Log)

	mongoClient, err := database.NewMongoClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer database.Disconnect(context.Background(), log, mongoClient)

	db := mongoClient.Database(cfg.Mongo.Database)
	userRepo := repository.NewUserMongoRepository(ctx, log, db, cfg.Mongo.OperationTimeout)

	router := handler.NewRouter(
		log,
		cfg.HTTP.AllowedOrigins,
		database.NewPinger(mongoClient),
		usecase.NewAuthUsecase(userRepo),
	)

	var opts []server.Option

	if cfg.GRPCHealthPort != 0 {
		lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.GRPCHealthPort))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to listen for gRPC health checks")
		}
		opts = append(opts, server.WithGRPCHealth(utilities.NewHealthServer(log, config.ServiceName), lis))
	}

	if cfg.Consul.Enabled() {
		agent, err := discovery.NewConsulAgent(cfg.Consul)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create consul agent")
		}
		opts = append(opts, server.WithRegistrar(
			discovery.NewRegistrar(agent, cfg.Consul, config.ServiceName, cfg.HTTP.Port),
		))
	}

	lis, err := net.Listen("tcp", cfg.HTTP.Address())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen for HTTP")
	}

	if err := server.New(log, cfg.HTTP, router, opts...).Run(ctx, lis); err != nil {
		log.Error().Err(err).Msg("auth-service stopped with error")
	}
}
