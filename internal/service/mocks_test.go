package service

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plantnet/marketplace/internal/domain"
	"github.com/plantnet/marketplace/internal/events"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListExcept(ctx context.Context, email string) ([]domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SetStatus(ctx context.Context, email string, status domain.UserStatus) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, email, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, email string, role domain.Role, status domain.UserStatus) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, email, role, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

// MockPlantRepository is a mock implementation of repository.PlantRepository
type MockPlantRepository struct {
	mock.Mock
}

func (m *MockPlantRepository) Insert(ctx context.Context, plant *domain.Plant) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, plant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockPlantRepository) List(ctx context.Context) ([]domain.Plant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Plant), args.Error(1)
}

func (m *MockPlantRepository) ListBySeller(ctx context.Context, email string) ([]domain.Plant, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Plant), args.Error(1)
}

func (m *MockPlantRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plant), args.Error(1)
}

func (m *MockPlantRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func (m *MockPlantRepository) AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Insert(ctx context.Context, order *domain.Order) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) DeleteCancellable(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func (m *MockOrderRepository) ListEnrichedByCustomer(ctx context.Context, email string) ([]domain.EnrichedOrder, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.EnrichedOrder), args.Error(1)
}

func (m *MockOrderRepository) ListEnrichedBySeller(ctx context.Context, email string) ([]domain.EnrichedOrder, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.EnrichedOrder), args.Error(1)
}

// MockRoleCache is a mock implementation of cache.RoleCache
type MockRoleCache struct {
	mock.Mock
}

func (m *MockRoleCache) Get(ctx context.Context, email string) (domain.Role, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Role), args.Bool(1), args.Error(2)
}

func (m *MockRoleCache) Version(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoleCache) SetIfVersion(ctx context.Context, email string, role domain.Role, version int64) (bool, error) {
	args := m.Called(ctx, email, role, version)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleCache) Invalidate(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

// recordingDispatcher keeps published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, e events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, e)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) SubscribeAll(events.EventHandler) {}

func (d *recordingDispatcher) types() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.EventType, 0, len(d.events))
	for _, e := range d.events {
		out = append(out, e.Type)
	}
	return out
}

// memRoleCache is an in-process cache with the same versioned-fill contract as the Redis one.
type memRoleCache struct {
	mu       sync.Mutex
	roles    map[string]domain.Role
	versions map[string]int64
}

func newMemRoleCache() *memRoleCache {
	return &memRoleCache{roles: map[string]domain.Role{}, versions: map[string]int64{}}
}

func (c *memRoleCache) Get(_ context.Context, email string) (domain.Role, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	role, ok := c.roles[email]
	return role, ok, nil
}

func (c *memRoleCache) Version(_ context.Context, email string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[email], nil
}

func (c *memRoleCache) SetIfVersion(_ context.Context, email string, role domain.Role, version int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.versions[email] != version {
		return false, nil
	}
	c.roles[email] = role
	return true, nil
}

func (c *memRoleCache) Invalidate(_ context.Context, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[email]++
	delete(c.roles, email)
	return nil
}
