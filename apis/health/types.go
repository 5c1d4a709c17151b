package health

// ServiceID is the fixed service identifier reported by the health endpoint.
const ServiceID = "empty-response-checker"

// HealthResponse represents the health check response structure.
// It contains the current status, a formatted timestamp, and the fixed
// service identifier for monitoring systems.
type HealthResponse struct {
	// Status indicates the current server status (always "healthy" while
	// the process is serving requests)
	Status string `json:"status"`

	// Timestamp is when the health check was performed,
	// formatted as YYYY-MM-DD HH:MM:SS
	Timestamp string `json:"timestamp"`

	// Service is the fixed service identifier
	Service string `json:"service"`
}
