package http

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plantnet/marketplace/internal/domain"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) UpsertIfAbsent(ctx context.Context, email string, payload domain.User) (*domain.User, bool, error) {
	args := m.Called(ctx, email, payload)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Bool(1), args.Error(2)
}

func (m *mockUserService) RequestUpgrade(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *mockUserService) GetRole(ctx context.Context, email string) (domain.Role, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Role), args.Error(1)
}

func (m *mockUserService) ListAllExcept(ctx context.Context, email string) ([]domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserService) SetRole(ctx context.Context, actor, email string, role domain.Role) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, actor, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

type mockPlantService struct {
	mock.Mock
}

func (m *mockPlantService) Create(ctx context.Context, seller string, plant *domain.Plant) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, seller, plant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *mockPlantService) ListAll(ctx context.Context) ([]domain.Plant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Plant), args.Error(1)
}

func (m *mockPlantService) ListBySeller(ctx context.Context, email string) ([]domain.Plant, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Plant), args.Error(1)
}

func (m *mockPlantService) GetByID(ctx context.Context, id string) (*domain.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plant), args.Error(1)
}

func (m *mockPlantService) Delete(ctx context.Context, seller, id string) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, seller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func (m *mockPlantService) AdjustQuantity(ctx context.Context, actor, id string, delta int, direction domain.QuantityDirection) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, actor, id, delta, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) Create(ctx context.Context, customer string, order *domain.Order) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, customer, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *mockOrderService) Cancel(ctx context.Context, actor, id string) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func (m *mockOrderService) ListByCustomer(ctx context.Context, email string) ([]domain.EnrichedOrder, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.EnrichedOrder), args.Error(1)
}

func (m *mockOrderService) ListBySeller(ctx context.Context, email string) ([]domain.EnrichedOrder, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.EnrichedOrder), args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}
