package response

import "fmt"

// Error codes returned by the service layer
const (
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"

	// Template application (structural) errors
	ErrCodeDuplicateTypeName        = "DUPLICATE_TYPE_NAME"
	ErrCodeUnresolvedChildReference = "UNRESOLVED_CHILD_REFERENCE"

	// Attachment upload errors. Too-large and wrong-type rejections are
	// distinct so the user-visible message can say which limit was hit.
	ErrCodeFileTooLarge        = "FILE_TOO_LARGE"
	ErrCodeUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
)

// AppError is a structured application error carrying a stable code
type AppError struct {
	Code    string
	Message string
	Details interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message string, details interface{}) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewValidationError creates a validation AppError
func NewValidationError(message string, details interface{}) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Details: details}
}

// NewNotFoundError creates a not-found AppError. Absent records are a
// normal, expected outcome; callers surface them as an empty state.
func NewNotFoundError(message string, details interface{}) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message, Details: details}
}

// NewForbiddenError creates a forbidden AppError
func NewForbiddenError(message string, details interface{}) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message, Details: details}
}
