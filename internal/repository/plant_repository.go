package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plantnet/marketplace/internal/domain"
	"github.com/plantnet/marketplace/internal/persistence"
)

// PlantRepository handles persistence for plant listings.
type PlantRepository interface {
	Insert(ctx context.Context, plant *domain.Plant) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]domain.Plant, error)
	ListBySeller(ctx context.Context, email string) ([]domain.Plant, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Plant, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*mongo.UpdateResult, error)
}

type plantRepository struct {
	coll *mongo.Collection
}

// NewPlantRepository instantiates the repository.
func NewPlantRepository(db *mongo.Database) PlantRepository {
	return &plantRepository{coll: db.Collection(persistence.PlantsCollection)}
}

func (r *plantRepository) Insert(ctx context.Context, plant *domain.Plant) (*mongo.InsertOneResult, error) {
	res, err := r.coll.InsertOne(ctx, plant)
	if err != nil {
		return nil, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		plant.ID = id
	}
	return res, nil
}

func (r *plantRepository) List(ctx context.Context) ([]domain.Plant, error) {
	return r.find(ctx, bson.D{})
}

func (r *plantRepository) ListBySeller(ctx context.Context, email string) ([]domain.Plant, error) {
	return r.find(ctx, bson.D{{Key: "seller.email", Value: email}})
}

func (r *plantRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Plant, error) {
	var plant domain.Plant
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&plant); err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *plantRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
}

// AdjustQuantity applies a single atomic $inc. A negative delta only matches when the stored
// quantity covers it, so concurrent decrements never drive stock below zero.
func (r *plantRepository) AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*mongo.UpdateResult, error) {
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "quantity", Value: delta}}}}
	return r.coll.UpdateOne(ctx, quantityFilter(id, delta), update)
}

func quantityFilter(id primitive.ObjectID, delta int) bson.D {
	filter := bson.D{{Key: "_id", Value: id}}
	if delta < 0 {
		filter = append(filter, bson.E{Key: "quantity", Value: bson.D{{Key: "$gte", Value: -delta}}})
	}
	return filter
}

func (r *plantRepository) find(ctx context.Context, filter bson.D) ([]domain.Plant, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	plants := make([]domain.Plant, 0)
	if err := cur.All(ctx, &plants); err != nil {
		return nil, err
	}
	return plants, nil
}
