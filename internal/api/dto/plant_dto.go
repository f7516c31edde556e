package dto

import "github.com/plantnet/marketplace/internal/domain"

// SellerRequest is the seller snapshot embedded in a new listing.
type SellerRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Email string `json:"email" validate:"omitempty,email"`
}

// PlantRequest is the body of POST /plants.
type PlantRequest struct {
	Name        string        `json:"name" validate:"required"`
	Category    string        `json:"category" validate:"required"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Price       float64       `json:"price" validate:"gte=0"`
	Quantity    int           `json:"quantity" validate:"gte=0"`
	Seller      SellerRequest `json:"seller"`
}

// ToDomain converts the request into a listing.
func (r PlantRequest) ToDomain() *domain.Plant {
	return &domain.Plant{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Image:       r.Image,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Seller: domain.SellerInfo{
			Name:  r.Seller.Name,
			Image: r.Seller.Image,
			Email: r.Seller.Email,
		},
	}
}

// QuantityUpdateRequest is the body of PATCH /plants/quantity/:id. Status "increase" adds
// quantityToUpdate; anything else subtracts it.
type QuantityUpdateRequest struct {
	QuantityToUpdate int                      `json:"quantityToUpdate" validate:"gt=0"`
	Status           domain.QuantityDirection `json:"status"`
}
