package models

// ApiResponse is the failure half of the API envelope; success payloads carry
// their own top-level keys (event, events, filename) next to success/message.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ErrorResponse(message string) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: message,
	}
}
