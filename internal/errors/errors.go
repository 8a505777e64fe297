package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultMessage is shown when an error carries no message of its own
const DefaultMessage = "Oh No, Something Went Wrong!"

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a payload that failed schema validation.
// Message holds every violated-field message joined together.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPError is an error with an explicit response status
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCampgroundNotFound = &NotFoundError{Entity: "campground"}
	ErrReviewNotFound     = &NotFoundError{Entity: "review"}
)

// Routing Errors
var (
	ErrPageNotFound = &HTTPError{Status: http.StatusNotFound, Message: "Page not found"}
)

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewHTTPError creates an error rendered with the given status
func NewHTTPError(status int, message string) error {
	return &HTTPError{Status: status, Message: message}
}

// Normalize maps any error onto the status and message shown to the user.
// Unclassified errors become 500 and empty messages fall back to DefaultMessage.
func Normalize(err error) *HTTPError {
	out := &HTTPError{Status: http.StatusInternalServerError}
	if err == nil {
		out.Message = DefaultMessage
		return out
	}

	var (
		httpErr       *HTTPError
		validationErr *ValidationError
		notFoundErr   *NotFoundError
	)
	switch {
	case errors.As(err, &httpErr):
		out.Status = httpErr.Status
		out.Message = httpErr.Message
	case errors.As(err, &validationErr):
		out.Status = http.StatusBadRequest
		out.Message = validationErr.Message
		if validationErr.Field != "" {
			out.Message = fmt.Sprintf("%s: %s", validationErr.Field, validationErr.Message)
		}
	case errors.As(err, &notFoundErr):
		out.Status = http.StatusNotFound
		out.Message = notFoundErr.Error()
	default:
		out.Message = err.Error()
	}

	if out.Status == 0 {
		out.Status = http.StatusInternalServerError
	}
	if out.Message == "" {
		out.Message = DefaultMessage
	}
	return out
}
