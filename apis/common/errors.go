package common

import "fmt"

// HTTPError is an error carrying an HTTP status code and a structured detail
// payload. The server's central error handler renders it as an ErrorEnvelope
// with the original status code preserved.
type HTTPError struct {
	// Code is the HTTP status code to respond with
	Code int

	// Detail is the error payload embedded as the envelope message;
	// it may be a string or any JSON-serializable document
	Detail interface{}
}

// NewHTTPError creates an HTTPError with the given status code and detail.
func NewHTTPError(code int, detail interface{}) *HTTPError {
	return &HTTPError{Code: code, Detail: detail}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %v", e.Code, e.Detail)
}
