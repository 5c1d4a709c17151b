package common

// TimestampFormat is the timestamp layout used across all API responses
// (second precision, local time).
const TimestampFormat = "2006-01-02 15:04:05"

// ErrorDetail carries the inner error information of an error envelope.
type ErrorDetail struct {
	// Code is the HTTP status code of the failure
	Code int `json:"code"`

	// Message is the error detail: a plain string for request-level errors,
	// or a structured document for internal processing failures
	Message interface{} `json:"message"`

	// Timestamp is when the error response was produced
	Timestamp string `json:"timestamp"`
}

// ErrorEnvelope is the standardized error response body returned for every
// failed request, regardless of route.
type ErrorEnvelope struct {
	// Success is always false for error responses
	Success bool `json:"success"`

	// Error holds the status code, detail, and timestamp of the failure
	Error ErrorDetail `json:"error"`
}
