package check

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the check API routes with the Fiber application.
// It sets up the check-empty and fixed empty-response endpoints under /api.
func RegisterRoutes(app *fiber.App) {
	// Check API group
	checkGroup := app.Group("/api")

	// Emptiness classification endpoint
	checkGroup.Post("/check-empty", CheckEmptyHandler)

	// Fixed no-content endpoint
	checkGroup.Get("/empty", EmptyHandler)
}
