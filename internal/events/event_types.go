package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserCreated            EventType = "user_created"
	EventSellerUpgradeRequested EventType = "seller_upgrade_requested"
	EventUserRoleChanged        EventType = "user_role_changed"
	EventPlantCreated           EventType = "plant_created"
	EventPlantDeleted           EventType = "plant_deleted"
	EventPlantQuantityAdjusted  EventType = "plant_quantity_adjusted"
	EventOrderCreated           EventType = "order_created"
	EventOrderCancelled         EventType = "order_cancelled"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Actor     string      `json:"actor,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, subject, actor string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// RoleChangedPayload payload.
type RoleChangedPayload struct {
	OldRole string `json:"old_role,omitempty"`
	NewRole string `json:"new_role"`
}

// QuantityAdjustedPayload payload.
type QuantityAdjustedPayload struct {
	Delta int `json:"delta"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	PlantID  string `json:"plant_id"`
	Seller   string `json:"seller"`
	Quantity int    `json:"quantity"`
}
