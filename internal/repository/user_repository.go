package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plantnet/marketplace/internal/domain"
	"github.com/plantnet/marketplace/internal/persistence"
)

// UserRepository defines persistence access for marketplace users.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListExcept(ctx context.Context, email string) ([]domain.User, error)
	SetStatus(ctx context.Context, email string, status domain.UserStatus) (*mongo.UpdateResult, error)
	SetRole(ctx context.Context, email string, role domain.Role, status domain.UserStatus) (*mongo.UpdateResult, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository returns a Mongo-backed implementation.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection(persistence.UsersCollection)}
}

func (r *userRepository) Insert(ctx context.Context, user *domain.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	return err
}

// GetByEmail returns mongo.ErrNoDocuments when no user matches.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListExcept(ctx context.Context, email string) ([]domain.User, error) {
	filter := bson.D{{Key: "email", Value: bson.D{{Key: "$ne", Value: email}}}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SetStatus(ctx context.Context, email string, status domain.UserStatus) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}},
	)
}

func (r *userRepository) SetRole(ctx context.Context, email string, role domain.Role, status domain.UserStatus) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "role", Value: role},
			{Key: "status", Value: status},
		}}},
	)
}
