package models

// ErrorDetail represents detailed error information for a single field
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationErrors represents validation error response
type ValidationErrors struct {
	Errors []ErrorDetail `json:"errors"`
}
