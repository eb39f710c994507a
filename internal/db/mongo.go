package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/yigit/collegeadmin/internal/config"
	"github.com/yigit/collegeadmin/internal/pkg/helpers"
)

// MongoDB holds the shared document-store client and the lecturer collection
type MongoDB struct {
	Client    *mongo.Client
	Lecturers *mongo.Collection
}

// NewMongoDB connects to MongoDB and pings the primary so a bad URI fails
// startup instead of the first request.
func NewMongoDB(ctx context.Context, cfg *config.Config) (*MongoDB, error) {
	connectTimeout := helpers.ParseDuration(cfg.Mongo.ConnectTimeout, 10*time.Second)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetMaxPoolSize(uint64(cfg.Mongo.MaxPoolSize)).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoDB{
		Client:    client,
		Lecturers: client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection),
	}, nil
}

// Ping checks the primary is reachable
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client, waiting at most 10 seconds for in-flight operations
func (m *MongoDB) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
