package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/plantnet/marketplace/internal/domain"
	apperrors "github.com/plantnet/marketplace/pkg/util"
)

const identityKey = "auth_identity"

// AuthMiddleware validates the credential cookie and attaches the caller identity.
type AuthMiddleware struct {
	tokens     *TokenManager
	cookieName string
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, cookieName: cookieName}
}

// Handle enforces authentication for protected routes. The cookie wins over an
// Authorization: Bearer header when both are present.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	raw := c.Cookies(m.cookieName)
	if raw == "" {
		raw = bearerToken(c.Get(fiber.HeaderAuthorization))
	}
	if raw == "" {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	claims, err := m.tokens.ParseToken(raw)
	if err != nil {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	c.Locals(identityKey, &domain.Identity{Email: claims.Email})
	return c.Next()
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	identity, ok := c.Locals(identityKey).(*domain.Identity)
	return identity, ok && identity != nil
}
