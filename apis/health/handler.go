package health

import (
	"time"

	"github.com/zinan-c/empty-checker/apis/common"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check requests and returns server status
// information. Monitoring systems poll this endpoint to confirm the service
// is up; it carries no state and never fails.
func HealthHandler(c *fiber.Ctx) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(common.TimestampFormat),
		Service:   ServiceID,
	}

	return c.JSON(response)
}
