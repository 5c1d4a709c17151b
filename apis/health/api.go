package health

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all health API routes with the Fiber application.
// It sets up the health check endpoint under the /api path.
func RegisterRoutes(app *fiber.App) {
	// Health API group
	healthGroup := app.Group("/api")

	// Health check endpoint
	healthGroup.Get("/health", HealthHandler)
}
