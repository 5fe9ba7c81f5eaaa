package dto

import "time"

// APIResponse is the standard success envelope for API endpoints.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// NewSuccessResponse wraps data in the standard success envelope
func NewSuccessResponse(data interface{}) *APIResponse {
	return &APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}
