package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/school-portal/internal/api/http/handlers"
	"github.com/spec-kit/school-portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Users         *handlers.UsersHandler
	Profiles      *handlers.ProfileHandler
	Authenticator *auth.Authenticator
	Gate          *auth.Gate
	// Gatherer backs /metrics; nil leaves the endpoint unregistered.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	required := cfg.Authenticator.Required()
	optional := cfg.Authenticator.Optional()

	authGroup := app.Group("/api/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", optional, cfg.Auth.Logout)
	authGroup.Get("/session", optional, cfg.Auth.Session)
	authGroup.Get("/me", required, cfg.Gate.RequireAuthenticated(), cfg.Auth.Me)
	authGroup.Post("/refresh", required, cfg.Gate.RequireAuthenticated(), cfg.Auth.Refresh)

	admin := app.Group("/api/admin", required, cfg.Gate.RequireAdmin())
	admin.Get("/stats", cfg.Users.Stats)
	admin.Post("/users", cfg.Users.Create)
	admin.Get("/users", cfg.Users.List)
	admin.Get("/users/role/:role", cfg.Users.ListByRole)
	admin.Patch("/users/:userId/status", cfg.Users.UpdateStatus)
	admin.Delete("/users/:userId", cfg.Users.Delete)

	app.Get("/api/staff/profile", required, cfg.Gate.RequireStaff(), cfg.Profiles.Get)
	app.Get("/api/learner/profile", required, cfg.Gate.RequireLearner(), cfg.Profiles.Get)
}
