package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler returns a basic liveness check.
func HealthHandler(deps *Dependencies) fiber.Handler {
	startedAt := time.Now()

	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"uptime":  time.Since(startedAt).String(),
			"version": "dev",
		})
	}
}

// ReadyHandler checks that the projection and the bounding frame can serve conversions.
func ReadyHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		checks := make(map[string]string)
		allOK := true

		// Projection
		if deps.Projection != nil {
			checks["projection"] = deps.Projection.PlanarSystem()
		} else {
			checks["projection"] = "not configured"
			allOK = false
		}

		// Bounding frame
		if deps.Mapper != nil {
			snap := deps.Mapper.Frame()
			if snap.Degenerate() {
				checks["frame"] = "degenerate"
				allOK = false
			} else {
				checks["frame"] = string(snap.Mode)
			}
		} else {
			checks["frame"] = "not configured"
			allOK = false
		}

		status := "ready"
		code := 200
		if !allOK {
			status = "not ready"
			code = 503
		}

		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"checks": checks,
		})
	}
}
