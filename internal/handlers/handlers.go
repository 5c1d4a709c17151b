package handlers

import (
	"github.com/zinan-c/empty-checker/apis/check"
	"github.com/zinan-c/empty-checker/apis/health"
	"github.com/zinan-c/empty-checker/internal/version"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all HTTP routes for the Empty-Check Service.
// It registers API endpoints using the per-API registration pattern.
// This function should be called during server initialization.
func SetupRoutes(app *fiber.App) {
	// Register all APIs here - just add one line per API
	health.RegisterRoutes(app)
	check.RegisterRoutes(app)

	// Root endpoint
	app.Get("/", RootHandler)
}

// RootHandler handles requests to the root endpoint ("/").
// It returns the service descriptor: name, version, status, and the
// available endpoints with short descriptions.
func RootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "Empty Response Checker",
		"version": version.GetShortVersion(),
		"status":  "running",
		"endpoints": fiber.Map{
			"GET /":                 "service information",
			"GET /api/health":       "health check",
			"POST /api/check-empty": "classify submitted data as empty or not",
			"GET /api/empty":        "fixed empty response",
		},
	})
}
