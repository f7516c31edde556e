package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plantnet/marketplace/internal/domain"
	"github.com/plantnet/marketplace/internal/events"
	"github.com/plantnet/marketplace/internal/repository"
	apperrors "github.com/plantnet/marketplace/pkg/util"
)

// PlantService manages the plant inventory.
type PlantService struct {
	plants     repository.PlantRepository
	dispatcher events.Dispatcher
}

// NewPlantService builds the service. dispatcher may be nil.
func NewPlantService(plants repository.PlantRepository, dispatcher events.Dispatcher) *PlantService {
	return &PlantService{plants: plants, dispatcher: dispatcher}
}

// Create stores a listing for seller. An empty embedded seller email is filled in; a different
// one is rejected.
func (s *PlantService) Create(ctx context.Context, seller string, plant *domain.Plant) (*mongo.InsertOneResult, error) {
	if plant.Seller.Email == "" {
		plant.Seller.Email = seller
	}
	if plant.Seller.Email != seller {
		return nil, apperrors.NewForbidden("cannot list plants for another seller")
	}
	plant.ID = primitive.NilObjectID

	res, err := s.plants.Insert(ctx, plant)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.New(events.EventPlantCreated, plant.ID.Hex(), seller, nil))
	return res, nil
}

// ListAll returns every listing.
func (s *PlantService) ListAll(ctx context.Context) ([]domain.Plant, error) {
	return s.plants.List(ctx)
}

// ListBySeller returns the listings whose embedded seller is email.
func (s *PlantService) ListBySeller(ctx context.Context, email string) ([]domain.Plant, error) {
	return s.plants.ListBySeller(ctx, email)
}

// GetByID returns a single listing.
func (s *PlantService) GetByID(ctx context.Context, id string) (*domain.Plant, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	plant, err := s.plants.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFound("plant", map[string]any{"id": id})
	}
	return plant, err
}

// Delete removes a listing owned by seller.
func (s *PlantService) Delete(ctx context.Context, seller, id string) (*mongo.DeleteResult, error) {
	plant, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plant.Seller.Email != seller {
		return nil, apperrors.NewForbidden("plant belongs to another seller")
	}

	res, err := s.plants.DeleteByID(ctx, plant.ID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.New(events.EventPlantDeleted, id, seller, nil))
	return res, nil
}

// AdjustQuantity adds delta for "increase" and subtracts it for any other direction. A decrease
// larger than the stock on hand is rejected.
func (s *PlantService) AdjustQuantity(ctx context.Context, actor, id string, delta int, direction domain.QuantityDirection) (*mongo.UpdateResult, error) {
	if delta <= 0 {
		return nil, apperrors.NewValidationError("quantityToUpdate must be positive", map[string]any{"quantityToUpdate": delta})
	}
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	signed := direction.SignedDelta(delta)
	res, err := s.plants.AdjustQuantity(ctx, oid, signed)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, apperrors.NewConflict("insufficient quantity", map[string]any{"quantityToUpdate": delta})
	}

	s.publish(ctx, events.New(events.EventPlantQuantityAdjusted, id, actor, events.QuantityAdjustedPayload{Delta: signed}))
	return res, nil
}

func (s *PlantService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewValidationError("malformed id", map[string]any{"id": id})
	}
	return oid, nil
}
