// Package models defines request and response types for the MailReply REST API.
// All types are JSON-serializable and carry swagger examples where useful.
package models

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error" example:"No email text provided"`
}

// HealthResponse reports service and database health.
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database" example:"connected"`
	Error    string `json:"error,omitempty"`
}
