package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/plantnet/marketplace/internal/domain"
	apperrors "github.com/plantnet/marketplace/pkg/util"
)

// RoleLookup resolves the stored role of an email. An unknown email yields an empty role.
type RoleLookup interface {
	GetRole(ctx context.Context, email string) (domain.Role, error)
}

// RequireRole permits the request only when the caller's stored role equals role.
// It must run after AuthMiddleware.Handle.
func RequireRole(lookup RoleLookup, role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("unauthorized access")
		}
		stored, err := lookup.GetRole(c.UserContext(), identity.Email)
		if err != nil {
			return err
		}
		if stored != role {
			return apperrors.NewForbidden("forbidden access")
		}
		return c.Next()
	}
}

// RequireAdmin is RequireRole for administrators.
func RequireAdmin(lookup RoleLookup) fiber.Handler {
	return RequireRole(lookup, domain.RoleAdmin)
}

// RequireSeller is RequireRole for sellers.
func RequireSeller(lookup RoleLookup) fiber.Handler {
	return RequireRole(lookup, domain.RoleSeller)
}

// RequireSelf permits the request only when the route parameter names the caller.
func RequireSelf(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("unauthorized access")
		}
		if c.Params(param) != identity.Email {
			return apperrors.NewForbidden("forbidden access")
		}
		return c.Next()
	}
}
