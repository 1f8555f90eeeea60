package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/deniz/alumlink/internal/config"
)

// MongoDB wraps the client and the selected application database
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB establishes a MongoDB connection from configuration and verifies
// it with a ping.
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	connectTimeout := config.GetEnvAsDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second)
	if d, err := time.ParseDuration(cfg.Database.ConnectTimeout); err == nil {
		connectTimeout = d
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URI)
	if cfg.Database.MinPoolSize > 0 {
		clientOptions.SetMinPoolSize(uint64(cfg.Database.MinPoolSize))
	}
	if cfg.Database.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(uint64(cfg.Database.MaxPoolSize))
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database.Name),
	}, nil
}

// EnsureIndexes creates the indexes the application relies on. Email
// uniqueness is the invariant the claim flow depends on.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.Database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique email index: %w", err)
	}

	_, err = m.Database.Collection("mentorship_requests").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "alumni", Value: 1}, {Key: "status", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create mentorship index: %w", err)
	}

	_, err = m.Database.Collection("notifications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create notification index: %w", err)
	}

	return nil
}

// Close disconnects the underlying client
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
