package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plantnet/marketplace/internal/api/http/handlers"
	"github.com/plantnet/marketplace/internal/auth"
	"github.com/plantnet/marketplace/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Auth           *handlers.AuthHandler
	Plants         *handlers.PlantsHandler
	Orders         *handlers.OrdersHandler
	AuthMiddleware *auth.AuthMiddleware
	Roles          auth.RoleLookup
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	authn := cfg.AuthMiddleware.Handle
	admin := auth.RequireAdmin(cfg.Roles)
	seller := auth.RequireSeller(cfg.Roles)

	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	app.Post("/jwt", cfg.Auth.IssueToken)
	app.Get("/logout", cfg.Auth.Logout)

	app.Post("/users/:email", cfg.Users.Upsert)
	app.Patch("/users/:email", authn, auth.RequireSelf("email"), cfg.Users.RequestUpgrade)
	app.Get("/user/role/:email", cfg.Users.GetRole)
	app.Get("/all-users/:email", authn, admin, auth.RequireSelf("email"), cfg.Users.ListAll)
	app.Patch("/user/role/:email", authn, admin, cfg.Users.UpdateRole)

	app.Get("/plants", cfg.Plants.List)
	app.Get("/plant/:id", cfg.Plants.Get)
	app.Post("/plants", authn, seller, cfg.Plants.Create)
	app.Get("/plants/seller", authn, seller, cfg.Plants.ListMine)
	app.Delete("/plants/:id", authn, seller, cfg.Plants.Delete)
	app.Patch("/plants/quantity/:id", authn, cfg.Plants.AdjustQuantity)

	app.Post("/order", authn, cfg.Orders.Create)
	app.Delete("/order/:id", authn, cfg.Orders.Cancel)
	app.Get("/customer-orders/:email", authn, auth.RequireSelf("email"), cfg.Orders.ListForCustomer)
	app.Get("/seller-orders/:email", authn, seller, auth.RequireSelf("email"), cfg.Orders.ListForSeller)
}
