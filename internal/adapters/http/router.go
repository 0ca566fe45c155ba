package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/websocket/v2"

	"github.com/samirrijal/geoframe/internal/pkg/metrics"
)

// SetupRoutes registers all REST and GraphQL routes.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Request ID
	app.Use(requestid.New())

	// Propagate request ID into slog context
	app.Use(RequestIDLogMiddleware())

	// Access logs (structured HTTP request logging)
	app.Use(AccessLogMiddleware())

	// Security headers + API version
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("X-API-Version", "1.0.0")
		return c.Next()
	})

	// Health & readiness
	app.Get("/v1/health", HealthHandler(deps))
	app.Get("/v1/ready", ReadyHandler(deps))

	v1 := app.Group("/v1")
	v1.Post("/convert/to-flat", ToFlatHandler(deps))
	v1.Post("/convert/to-wgs", ToWGSHandler(deps))
	v1.Post("/relative/wgs", RelativeByWgsHandler(deps))
	v1.Post("/relative/flat", RelativeByFlatHandler(deps))
	v1.Post("/absolute", AbsoluteHandler(deps))
	v1.Get("/frame", GetFrameHandler(deps))
	v1.Put("/frame", SetFrameHandler(deps))

	// GraphQL
	app.Post("/graphql", GraphQLHandler(deps))

	// WebSocket frame feed
	if deps.NATS != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		app.Get("/ws", websocket.New(FrameWebSocketHandler(deps)))
	}
}
