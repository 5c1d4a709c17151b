// Package middleware holds the cross-cutting Fiber handlers applied to every
// route of the Empty-Check Service.
package middleware

import (
	"fmt"
	"time"

	"github.com/zinan-c/empty-checker/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Response headers added to every outgoing response.
const (
	// HeaderProcessTime reports the wall-clock handling time of the request
	HeaderProcessTime = "X-Process-Time"

	// HeaderService identifies the service in every response
	HeaderService = "X-Service"

	// ServiceName is the fixed value of the X-Service header
	ServiceName = "Empty-Checker-API"
)

// ProcessTime returns a middleware that measures the wall-clock time spent
// handling each request and annotates the response with the timing and
// service identity headers. It wraps the full downstream span, so the headers
// are present on every response regardless of route or outcome, including
// error and no-content responses.
//
// The same span feeds the request log: one structured line per request,
// carrying the request ID assigned by the requestid middleware downstream.
func ProcessTime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		elapsed := float64(time.Since(start).Nanoseconds()) / 1e6
		c.Set(HeaderProcessTime, fmt.Sprintf("%.2f ms", elapsed))
		c.Set(HeaderService, ServiceName)

		fields := []zap.Field{
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Float64("duration_ms", elapsed),
		}
		if err != nil {
			// The status code is finalized by the error handler after this
			// middleware returns, so the error itself is logged instead.
			logger.Error("request failed", append(fields, zap.Error(err))...)
		} else {
			logger.Info("request completed", append(fields, zap.Int("status", c.Response().StatusCode()))...)
		}

		return err
	}
}
