package check

import (
	"fmt"
	"math"
	"time"

	"github.com/zinan-c/empty-checker/apis/common"
	"github.com/zinan-c/empty-checker/pkg/emptiness"
	"github.com/zinan-c/empty-checker/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// CheckEmptyHandler handles POST /api/check-empty requests.
// It optionally delays processing by the requested timeout, classifies the
// submitted data, and returns a CheckResponse with timing information.
//
// Status codes:
//   - 200: check performed
//   - 400: body could not be parsed into a CheckRequest
//   - 500: unexpected failure while computing the response; the error detail
//     is a CheckResponse with Success false
func CheckEmptyHandler(c *fiber.Ctx) error {
	start := time.Now()

	req := NewCheckRequest()
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	resp, err := process(&req, start)
	if err != nil {
		logger.Errorf("check-empty processing failed: %v", err)
		detail := CheckResponse{
			Success:          false,
			Message:          fmt.Sprintf("error while processing request: %v", err),
			IsEmpty:          false,
			Timestamp:        time.Now().Format(common.TimestampFormat),
			ProcessingTimeMs: elapsedMillis(start),
		}
		return common.NewHTTPError(fiber.StatusInternalServerError, detail)
	}

	return c.JSON(resp)
}

// process performs the delay and classification steps. Panics raised while
// computing the response are converted to errors so a single bad request can
// never take the process down.
func process(req *CheckRequest, start time.Time) (resp CheckResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	// Sleeping suspends only this request's goroutine; concurrent requests
	// keep being served during the delay.
	if req.Timeout > 0 {
		time.Sleep(time.Duration(req.Timeout) * time.Millisecond)
	}

	isEmpty := false
	if req.CheckEmpty {
		isEmpty = emptiness.Classify(req.Data)
	}

	message := MessageCheckComplete
	if isEmpty {
		message = MessageDataIsEmpty
	}

	return CheckResponse{
		Success:          true,
		Message:          message,
		IsEmpty:          isEmpty,
		Timestamp:        time.Now().Format(common.TimestampFormat),
		ProcessingTimeMs: elapsedMillis(start),
	}, nil
}

// EmptyHandler handles GET /api/empty requests.
// It always responds 204 No Content with an empty body.
func EmptyHandler(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// elapsedMillis returns the time elapsed since start in milliseconds,
// rounded to 2 decimal places.
func elapsedMillis(start time.Time) float64 {
	return math.Round(float64(time.Since(start).Nanoseconds())/1e6*100) / 100
}
