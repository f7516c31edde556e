package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plantnet/marketplace/internal/domain"
	"github.com/plantnet/marketplace/internal/events"
	"github.com/plantnet/marketplace/internal/repository"
	apperrors "github.com/plantnet/marketplace/pkg/util"
)

const cancelDeliveredMessage = "Cannot cancel once the order is delivered"

// OrderService places, lists and cancels orders.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewOrderService builds the service. dispatcher may be nil.
func NewOrderService(orders repository.OrderRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, dispatcher: dispatcher, now: time.Now}
}

// Create stores an order placed by customer.
func (s *OrderService) Create(ctx context.Context, customer string, order *domain.Order) (*mongo.InsertOneResult, error) {
	if order.Customer.Email == "" {
		order.Customer.Email = customer
	}
	if order.Customer.Email != customer {
		return nil, apperrors.NewForbidden("cannot order on behalf of another customer")
	}
	if _, err := parseObjectID(order.PlantID); err != nil {
		return nil, err
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	order.ID = primitive.NilObjectID
	order.OrderedAt = s.now().UTC()

	res, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.New(events.EventOrderCreated, order.ID.Hex(), customer, events.OrderCreatedPayload{
		PlantID:  order.PlantID,
		Seller:   order.Seller,
		Quantity: order.Quantity,
	}))
	return res, nil
}

// Cancel deletes an order unless it has been delivered.
func (s *OrderService) Cancel(ctx context.Context, actor, id string) (*mongo.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	order, err := s.get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if order.Status.IsTerminal() {
		return nil, apperrors.NewConflict(cancelDeliveredMessage, nil)
	}

	res, err := s.orders.DeleteCancellable(ctx, oid)
	if err != nil {
		return nil, err
	}
	if res.DeletedCount == 0 {
		// either a concurrent cancel won, which is fine, or the order was delivered meanwhile
		if current, err := s.orders.GetByID(ctx, oid); err == nil && current.Status.IsTerminal() {
			return nil, apperrors.NewConflict(cancelDeliveredMessage, nil)
		}
		return res, nil
	}

	s.publish(ctx, events.New(events.EventOrderCancelled, id, actor, nil))
	return res, nil
}

// ListByCustomer returns the customer's orders enriched with plant name, category and image.
func (s *OrderService) ListByCustomer(ctx context.Context, email string) ([]domain.EnrichedOrder, error) {
	return s.orders.ListEnrichedByCustomer(ctx, email)
}

// ListBySeller returns orders for the seller's plants, enriched the same way.
func (s *OrderService) ListBySeller(ctx context.Context, email string) ([]domain.EnrichedOrder, error) {
	return s.orders.ListEnrichedBySeller(ctx, email)
}

func (s *OrderService) get(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFound("order", map[string]any{"id": id.Hex()})
	}
	return order, err
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
