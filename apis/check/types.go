package check

import (
	"github.com/zinan-c/empty-checker/pkg/emptiness"
)

// Response messages for the check-empty endpoint.
const (
	MessageCheckComplete = "check complete"
	MessageDataIsEmpty   = "data is empty"
)

// CheckRequest is the request body for POST /api/check-empty.
type CheckRequest struct {
	// Data is the value to classify; any JSON value is accepted and an
	// absent or null field counts as empty
	Data emptiness.Value `json:"data"`

	// CheckEmpty controls whether Data is inspected at all; defaults to true
	CheckEmpty bool `json:"check_empty"`

	// Timeout is an artificial processing delay in milliseconds, default 0.
	// Values are passed through unvalidated: negative values behave as 0 and
	// no upper bound is enforced, matching the documented behavior.
	Timeout int64 `json:"timeout"`
}

// NewCheckRequest returns a CheckRequest with field defaults applied.
// Unmarshaling a body into it overrides only the fields the body carries.
func NewCheckRequest() CheckRequest {
	return CheckRequest{CheckEmpty: true}
}

// CheckResponse is the response body for POST /api/check-empty. The same
// shape, with Success false, is embedded as the error detail when request
// processing fails.
type CheckResponse struct {
	// Success reports whether the check was performed
	Success bool `json:"success"`

	// Message is a human-readable summary of the outcome
	Message string `json:"message"`

	// IsEmpty is the classification verdict for the submitted data
	IsEmpty bool `json:"is_empty"`

	// Timestamp is when the response was produced,
	// formatted as YYYY-MM-DD HH:MM:SS
	Timestamp string `json:"timestamp"`

	// ProcessingTimeMs is the handling time in milliseconds,
	// rounded to 2 decimal places
	ProcessingTimeMs float64 `json:"processing_time_ms"`
}
