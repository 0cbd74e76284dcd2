package models

import "time"

// Error codes carried in the response envelope
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeConflict   = "EMAIL_CONFLICT"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// ApiResponse is the uniform envelope wrapping every response body
type ApiResponse struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data"`
	Error     *ApiError `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// ApiError describes a failed request
type ApiError struct {
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details"`
}

// Ok wraps a successful payload in the envelope
func Ok(data any) ApiResponse {
	return ApiResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// Failure wraps an error code, message and per-field details in the envelope
func Failure(code, message string, details map[string]any) ApiResponse {
	return ApiResponse{
		Success:   false,
		Error:     &ApiError{Message: message, Code: code, Details: details},
		Timestamp: time.Now().UTC(),
	}
}
