package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/vasapolrittideah/task-tracker-api/shared/config"
)

// NewMongoClient connects to MongoDB and verifies the connection with a ping.
func NewMongoClient(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(
		options.Client().
			ApplyURI(cfg.URI).
			SetConnectTimeout(cfg.ConnectTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}

// Disconnect closes the client, logging instead of returning the error.
func Disconnect(ctx context.Context, logger *zerolog.Logger, client *mongo.Client) {
	if err := client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		return
	}

	logger.Info().Msg("disconnected from mongodb")
}

// Pinger reports database liveness for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

type mongoPinger struct {
	client *mongo.Client
}

// NewPinger adapts a mongo client to the Pinger interface.
func NewPinger(client *mongo.Client) Pinger {
	return &mongoPinger{client: client}
}

func (p *mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
