package http

import (
	"github.com/gofiber/fiber/v2"
)

// NewApp builds the Fiber application shared by the server and the handler tests. Path
// parameters are unescaped so that encoded emails reach handlers verbatim.
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               name,
		UnescapePath:          true,
		DisableStartupMessage: true,
	})
}
