package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/plantnet/marketplace/internal/api/dto"
)

// OrdersHandler exposes order placement, listing and cancellation.
type OrdersHandler struct {
	orders OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Create handles POST /order.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	customer, err := callerEmail(c)
	if err != nil {
		return err
	}
	var req dto.OrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.orders.Create(c.UserContext(), customer, req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewInsertAck(res))
}

// Cancel handles DELETE /order/:id.
func (h *OrdersHandler) Cancel(c *fiber.Ctx) error {
	actor, err := callerEmail(c)
	if err != nil {
		return err
	}
	res, err := h.orders.Cancel(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDeleteAck(res))
}

// ListForCustomer handles GET /customer-orders/:email.
func (h *OrdersHandler) ListForCustomer(c *fiber.Ctx) error {
	orders, err := h.orders.ListByCustomer(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// ListForSeller handles GET /seller-orders/:email.
func (h *OrdersHandler) ListForSeller(c *fiber.Ctx) error {
	orders, err := h.orders.ListBySeller(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(orders)
}
