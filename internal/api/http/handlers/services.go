package handlers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plantnet/marketplace/internal/domain"
)

// UserService is the user directory as seen by the HTTP layer.
type UserService interface {
	UpsertIfAbsent(ctx context.Context, email string, payload domain.User) (*domain.User, bool, error)
	RequestUpgrade(ctx context.Context, email string) (*mongo.UpdateResult, error)
	GetRole(ctx context.Context, email string) (domain.Role, error)
	ListAllExcept(ctx context.Context, email string) ([]domain.User, error)
	SetRole(ctx context.Context, actor, email string, role domain.Role) (*mongo.UpdateResult, error)
}

// PlantService is the plant inventory as seen by the HTTP layer.
type PlantService interface {
	Create(ctx context.Context, seller string, plant *domain.Plant) (*mongo.InsertOneResult, error)
	ListAll(ctx context.Context) ([]domain.Plant, error)
	ListBySeller(ctx context.Context, email string) ([]domain.Plant, error)
	GetByID(ctx context.Context, id string) (*domain.Plant, error)
	Delete(ctx context.Context, seller, id string) (*mongo.DeleteResult, error)
	AdjustQuantity(ctx context.Context, actor, id string, delta int, direction domain.QuantityDirection) (*mongo.UpdateResult, error)
}

// OrderService is the order book as seen by the HTTP layer.
type OrderService interface {
	Create(ctx context.Context, customer string, order *domain.Order) (*mongo.InsertOneResult, error)
	Cancel(ctx context.Context, actor, id string) (*mongo.DeleteResult, error)
	ListByCustomer(ctx context.Context, email string) ([]domain.EnrichedOrder, error)
	ListBySeller(ctx context.Context, email string) ([]domain.EnrichedOrder, error)
}

// TokenIssuer signs credentials.
type TokenIssuer interface {
	IssueToken(email string) (string, time.Time, error)
}
