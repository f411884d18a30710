package models

// ErrorBody is the structured error document returned by the API on
// non-2xx responses:
//
//	{"error": {"message": "role not found", "code": "NOT_FOUND"}}
type ErrorBody struct {
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries the server-provided description of a failure.
type ErrorDetail struct {
	// Message is the human-readable text shown to the user.
	Message string `json:"message"`

	// Code is an optional machine-readable classification.
	Code string `json:"code,omitempty"`
}

// NewErrorBody builds an [ErrorBody] with the given message and code.
func NewErrorBody(message, code string) ErrorBody {
	return ErrorBody{Error: &ErrorDetail{Message: message, Code: code}}
}
