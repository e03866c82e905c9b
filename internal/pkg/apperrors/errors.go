package apperrors

import "errors"

// Error categories. Every failure in the registration workflow and the
// surrounding CRUD shell wraps one of these sentinels so the transport
// layer can pick a status code with errors.Is.
var (
	// ErrValidation marks missing or malformed input. Client-fixable,
	// never retried, surfaced as 400.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks uniqueness or business-rule violations detected
	// before insert. Surfaced as 409.
	ErrConflict = errors.New("conflict")

	// ErrPersistence marks backing-store failures, including a
	// unique-constraint violation that slips past the pre-insert checks.
	// Not attributable to user input, surfaced as 500.
	ErrPersistence = errors.New("persistence failure")

	// ErrResourceNotFound marks lookups of rows that do not exist.
	ErrResourceNotFound = errors.New("resource not found")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
	ErrPermissionDenied   = errors.New("permission denied")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Catalog errors
var (
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrCourseNotFound      = errors.New("course not found")
	ErrClassNotFound       = errors.New("class not found")
	ErrCourseAlreadyExists = errors.New("course name already exists")
)

// CustomError carries a category sentinel plus a user-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidation, Message: message}
}

// NewConflictError creates a conflict error with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewPersistenceError creates a persistence error wrapping the underlying
// database failure.
func NewPersistenceError(cause error, message string) error {
	return &CustomError{Err: errors.Join(ErrPersistence, cause), Message: message}
}

// NewNotFoundError creates a resource-not-found error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}
