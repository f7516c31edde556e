package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/plantnet/marketplace/internal/api/dto"
)

// UsersHandler exposes the user directory.
type UsersHandler struct {
	users UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Upsert handles POST /users/:email. The existing record wins over the submitted profile.
func (h *UsersHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UserRequest
	if len(c.Body()) > 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	user, _, err := h.users.UpsertIfAbsent(c.UserContext(), c.Params("email"), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// RequestUpgrade handles PATCH /users/:email.
func (h *UsersHandler) RequestUpgrade(c *fiber.Ctx) error {
	res, err := h.users.RequestUpgrade(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUpdateAck(res))
}

// GetRole handles GET /user/role/:email.
func (h *UsersHandler) GetRole(c *fiber.Ctx) error {
	role, err := h.users.GetRole(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRoleResponse(role))
}

// ListAll handles GET /all-users/:email.
func (h *UsersHandler) ListAll(c *fiber.Ctx) error {
	users, err := h.users.ListAllExcept(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// UpdateRole handles PATCH /user/role/:email.
func (h *UsersHandler) UpdateRole(c *fiber.Ctx) error {
	actor, err := callerEmail(c)
	if err != nil {
		return err
	}
	var req dto.RoleUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.users.SetRole(c.UserContext(), actor, c.Params("email"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUpdateAck(res))
}
