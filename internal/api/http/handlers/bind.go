package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/plantnet/marketplace/internal/api/dto"
	"github.com/plantnet/marketplace/internal/auth"
	apperrors "github.com/plantnet/marketplace/pkg/util"
)

func bindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return dto.Validate(out)
}

func callerEmail(c *fiber.Ctx) (string, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return "", apperrors.NewUnauthorized("unauthorized access")
	}
	return identity.Email, nil
}
