package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieSettings controls how the credential travels in the browser.
type CookieSettings struct {
	Name string
	// CrossSite switches to SameSite=None; Secure for deployments where the client runs on
	// another origin. Otherwise SameSite=Strict is used.
	CrossSite bool
}

func (s CookieSettings) sameSite() string {
	if s.CrossSite {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteStrictMode
}

// SetTokenCookie installs the credential as an http-only cookie.
func SetTokenCookie(c *fiber.Ctx, s CookieSettings, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   s.CrossSite,
		SameSite: s.sameSite(),
	})
}

// ClearTokenCookie expires the credential cookie using the same attributes it was set with.
func ClearTokenCookie(c *fiber.Ctx, s CookieSettings) {
	c.Cookie(&fiber.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   s.CrossSite,
		SameSite: s.sameSite(),
	})
}
