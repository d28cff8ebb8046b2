package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/mealsota/nutribot/pkg/config"
)

// MongoDB represents a MongoDB connection
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
	cfg    *config.Config
}

// NewMongoDB creates a new MongoDB connection
func NewMongoDB(cfg *config.Config, log *zap.Logger) (*MongoDB, error) {
	logger := log.Named("mongodb")

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect to MongoDB
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDBURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping the database
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.String("uri", cfg.MongoDBURI))

	dbName := "nutribot"
	if cfg.IsDevelopment {
		dbName = "nutribot_dev"
	}

	return &MongoDB{
		client: client,
		db:     client.Database(dbName),
		log:    logger,
		cfg:    cfg,
	}, nil
}

// Disconnect closes the MongoDB connection
func (m *MongoDB) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	m.log.Info("Closing MongoDB connection")
	return m.client.Disconnect(ctx)
}

// Collection returns a MongoDB collection
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Client returns the MongoDB client
func (m *MongoDB) Client() *mongo.Client {
	return m.client
}

// Database returns the current database
func (m *MongoDB) Database() *mongo.Database {
	return m.db
}
