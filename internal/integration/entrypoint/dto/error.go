// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error response.
// Errors is only set for validation failures.
type ErrorResponse struct {
	Message string              `json:"message"`
	Code    string              `json:"code,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
