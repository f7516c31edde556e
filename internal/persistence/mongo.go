package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/plantnet/marketplace/internal/config"
)

// Collection names in the plantNet database.
const (
	UsersCollection  = "users"
	PlantsCollection = "plants"
	OrdersCollection = "orders"
)

// Mongo owns the single client shared by every repository.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewMongo builds the client and pings the deployment. A failed ping is logged and tolerated:
// the driver reconnects lazily and errors surface per request instead.
func NewMongo(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(cfg.ConnectTimeout()).
		SetServerSelectionTimeout(cfg.ConnectTimeout())
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	m := &Mongo{Client: client, DB: client.Database(cfg.Database)}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()
	if err := m.Ping(pingCtx); err != nil {
		logger.Warn("unable to reach mongo", zap.Error(err))
		return m, nil
	}
	logger.Info("pinged deployment, connected to mongo", zap.String("database", cfg.Database))

	if err := EnsureIndexes(ctx, m.DB); err != nil {
		logger.Warn("failed to create indexes", zap.Error(err))
	}
	return m, nil
}

// EnsureIndexes creates the lookup indexes used by the repositories.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("users index: %w", err)
	}
	if _, err := db.Collection(PlantsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "seller.email", Value: 1}},
	}); err != nil {
		return fmt.Errorf("plants index: %w", err)
	}
	if _, err := db.Collection(OrdersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer.email", Value: 1}}},
		{Keys: bson.D{{Key: "seller", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("orders index: %w", err)
	}
	return nil
}

// Database returns the handle injected into repositories.
func (m *Mongo) Database() *mongo.Database {
	if m == nil {
		return nil
	}
	return m.DB
}

// Ping verifies the primary is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return errors.New("mongo client not configured")
	}
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) {
	if m != nil && m.Client != nil {
		_ = m.Client.Disconnect(ctx)
	}
}
