package apiresponses

import "time"

// Standard Success Response Envelope
type SuccessResponse struct {
	Status    string      `json:"status"` // Always "success"
	Data      interface{} `json:"data"`   // Payload
	RequestID string      `json:"requestId,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

// Standard Error Response Envelope (used by middleware)
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code,omitempty"` // Application-specific error code
	Message    string `json:"message"`        // User-friendly message
}

// Helper to create a success response
func NewSuccessResponse(data interface{}) SuccessResponse {
	return SuccessResponse{
		Status:    "success",
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// WithRequestID adds a request ID to the success response
func (r SuccessResponse) WithRequestID(requestID string) SuccessResponse {
	r.RequestID = requestID
	return r
}
