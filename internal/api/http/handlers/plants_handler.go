package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/plantnet/marketplace/internal/api/dto"
)

// PlantsHandler exposes the plant inventory.
type PlantsHandler struct {
	plants PlantService
}

// NewPlantsHandler constructs handler.
func NewPlantsHandler(plants PlantService) *PlantsHandler {
	return &PlantsHandler{plants: plants}
}

// Create handles POST /plants.
func (h *PlantsHandler) Create(c *fiber.Ctx) error {
	seller, err := callerEmail(c)
	if err != nil {
		return err
	}
	var req dto.PlantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.plants.Create(c.UserContext(), seller, req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewInsertAck(res))
}

// List handles GET /plants.
func (h *PlantsHandler) List(c *fiber.Ctx) error {
	plants, err := h.plants.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(plants)
}

// ListMine handles GET /plants/seller.
func (h *PlantsHandler) ListMine(c *fiber.Ctx) error {
	seller, err := callerEmail(c)
	if err != nil {
		return err
	}
	plants, err := h.plants.ListBySeller(c.UserContext(), seller)
	if err != nil {
		return err
	}
	return c.JSON(plants)
}

// Get handles GET /plant/:id.
func (h *PlantsHandler) Get(c *fiber.Ctx) error {
	plant, err := h.plants.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(plant)
}

// Delete handles DELETE /plants/:id.
func (h *PlantsHandler) Delete(c *fiber.Ctx) error {
	seller, err := callerEmail(c)
	if err != nil {
		return err
	}
	res, err := h.plants.Delete(c.UserContext(), seller, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDeleteAck(res))
}

// AdjustQuantity handles PATCH /plants/quantity/:id.
func (h *PlantsHandler) AdjustQuantity(c *fiber.Ctx) error {
	actor, err := callerEmail(c)
	if err != nil {
		return err
	}
	var req dto.QuantityUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.plants.AdjustQuantity(c.UserContext(), actor, c.Params("id"), req.QuantityToUpdate, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUpdateAck(res))
}
