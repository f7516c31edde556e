package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is free-form in practice; the known values are listed here.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusInProcess OrderStatus = "In Progress"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// IsTerminal reports whether the order can no longer be cancelled.
func (s OrderStatus) IsTerminal() bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(OrderStatusDelivered))
}

// CustomerInfo is the customer snapshot embedded in an order.
type CustomerInfo struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email" json:"email"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// Order records a purchase of a single plant.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Customer  CustomerInfo       `bson:"customer" json:"customer"`
	PlantID   string             `bson:"plantId" json:"plantId"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Seller    string             `bson:"seller" json:"seller"`
	Status    OrderStatus        `bson:"status" json:"status"`
	OrderedAt time.Time          `bson:"orderedAt,omitempty" json:"orderedAt,omitempty"`
}

// EnrichedOrder is an order carrying display fields copied from its plant.
type EnrichedOrder struct {
	Order    `bson:",inline"`
	Name     string `bson:"name" json:"name"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`
	Image    string `bson:"image,omitempty" json:"image,omitempty"`
}
