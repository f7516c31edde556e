package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// SellerInfo is the seller snapshot embedded in a plant listing.
type SellerInfo struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Email string `bson:"email" json:"email"`
}

// Plant is a listing in the inventory.
type Plant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Seller      SellerInfo         `bson:"seller" json:"seller"`
}

// QuantityDirection selects the sign applied to a quantity delta.
type QuantityDirection string

const (
	QuantityIncrease QuantityDirection = "increase"
	QuantityDecrease QuantityDirection = "decrease"
)

// SignedDelta returns +delta for increase and -delta for any other direction.
func (d QuantityDirection) SignedDelta(delta int) int {
	if d == QuantityIncrease {
		return delta
	}
	return -delta
}
