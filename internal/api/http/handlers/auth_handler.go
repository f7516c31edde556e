package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/plantnet/marketplace/internal/api/dto"
	"github.com/plantnet/marketplace/internal/auth"
)

// AuthHandler issues and clears the credential cookie.
type AuthHandler struct {
	tokens TokenIssuer
	cookie auth.CookieSettings
}

// NewAuthHandler constructs handler.
func NewAuthHandler(tokens TokenIssuer, cookie auth.CookieSettings) *AuthHandler {
	return &AuthHandler{tokens: tokens, cookie: cookie}
}

// IssueToken handles POST /jwt.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, expiresAt, err := h.tokens.IssueToken(req.Email)
	if err != nil {
		return err
	}
	auth.SetTokenCookie(c, h.cookie, token, expiresAt)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	auth.ClearTokenCookie(c, h.cookie)
	return c.JSON(dto.SuccessResponse{Success: true})
}
