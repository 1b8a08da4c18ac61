package errors

// ErrorInfo is the error part of an API response.
type ErrorInfo struct {
	Code     string   `json:"code"`               // Business error code, e.g. "INVALID_PRECISION"
	Category Category `json:"category,omitempty"` // Taxonomy category of AppErrors
	Message  string   `json:"message"`
	Details  any      `json:"details,omitempty"` // Only set for 4xx responses
}

// NewErrorInfo describes err for a client.
func NewErrorInfo(err AppError) *ErrorInfo {
	info := &ErrorInfo{
		Code:     err.ErrorCode(),
		Category: err.Category(),
		Message:  err.Message(),
	}
	if details := err.Details(); details != "" && err.HTTPCode() < 500 {
		info.Details = details
	}

	return info
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse is the envelope of successful responses.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of error responses.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
