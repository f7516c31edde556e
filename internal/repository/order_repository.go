package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plantnet/marketplace/internal/domain"
	"github.com/plantnet/marketplace/internal/persistence"
)

// OrderRepository handles persistence for orders and their enrichment join.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (*mongo.InsertOneResult, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	DeleteCancellable(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	ListEnrichedByCustomer(ctx context.Context, email string) ([]domain.EnrichedOrder, error)
	ListEnrichedBySeller(ctx context.Context, email string) ([]domain.EnrichedOrder, error)
}

type orderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository instantiates the repository.
func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &orderRepository{coll: db.Collection(persistence.OrdersCollection)}
}

func (r *orderRepository) Insert(ctx context.Context, order *domain.Order) (*mongo.InsertOneResult, error) {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}
	return res, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	var order domain.Order
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteCancellable deletes the order unless it reached the delivered state in the meantime.
func (r *orderRepository) DeleteCancellable(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "status", Value: bson.D{{Key: "$not", Value: deliveredPattern}}},
	}
	return r.coll.DeleteOne(ctx, filter)
}

func (r *orderRepository) ListEnrichedByCustomer(ctx context.Context, email string) ([]domain.EnrichedOrder, error) {
	return r.aggregate(ctx, EnrichmentPipeline(bson.D{{Key: "customer.email", Value: email}}))
}

func (r *orderRepository) ListEnrichedBySeller(ctx context.Context, email string) ([]domain.EnrichedOrder, error) {
	return r.aggregate(ctx, EnrichmentPipeline(bson.D{{Key: "seller", Value: email}}))
}

func (r *orderRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]domain.EnrichedOrder, error) {
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	orders := make([]domain.EnrichedOrder, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

var deliveredPattern = primitive.Regex{
	Pattern: "^\\s*" + regexp.QuoteMeta(string(domain.OrderStatusDelivered)) + "\\s*$",
	Options: "i",
}
