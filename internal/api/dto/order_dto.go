package dto

import "github.com/plantnet/marketplace/internal/domain"

// CustomerRequest is the customer snapshot embedded in an order.
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Image string `json:"image"`
}

// OrderRequest is the body of POST /order.
type OrderRequest struct {
	Customer CustomerRequest    `json:"customer"`
	PlantID  string             `json:"plantId" validate:"required,mongodb"`
	Price    float64            `json:"price" validate:"gte=0"`
	Quantity int                `json:"quantity" validate:"gt=0"`
	Address  string             `json:"address"`
	Seller   string             `json:"seller" validate:"required,email"`
	Status   domain.OrderStatus `json:"status"`
}

// ToDomain converts the request into an order.
func (r OrderRequest) ToDomain() *domain.Order {
	return &domain.Order{
		Customer: domain.CustomerInfo{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Image: r.Customer.Image,
		},
		PlantID:  r.PlantID,
		Price:    r.Price,
		Quantity: r.Quantity,
		Address:  r.Address,
		Seller:   r.Seller,
		Status:   r.Status,
	}
}
