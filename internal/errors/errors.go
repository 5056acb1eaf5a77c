package errors

import "fmt"

// ErrorCode represents a SkyMemo error code.
type ErrorCode string

const (
	ErrInvalidRequest          ErrorCode = "INVALID_REQUEST"          // 400
	ErrInvalidWeatherKind      ErrorCode = "INVALID_WEATHER_KIND"     // 400
	ErrEmptyBody               ErrorCode = "EMPTY_BODY"               // 422
	ErrNotFound                ErrorCode = "NOT_FOUND"                // 404
	ErrUnresolvableSlot        ErrorCode = "UNRESOLVABLE_SLOT"        // 500 (configuration defect)
	ErrCollaboratorUnavailable ErrorCode = "COLLABORATOR_UNAVAILABLE" // 503
	ErrInternal                ErrorCode = "INTERNAL"                 // 500
)

// SkyError represents a structured error with code, status, and details.
type SkyError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *SkyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *SkyError {
	return &SkyError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewInvalidWeatherKind creates a 400 error for an unrecognized weather condition.
// There is no silent default: callers must pass one of the enumerated conditions.
func NewInvalidWeatherKind(condition string) *SkyError {
	return &SkyError{
		Code:    ErrInvalidWeatherKind,
		Status:  400,
		Message: fmt.Sprintf("unrecognized weather condition: %q", condition),
		Details: map[string]any{"condition": condition},
	}
}

// NewEmptyBody creates a 422 error for a blank journal entry body.
func NewEmptyBody() *SkyError {
	return &SkyError{
		Code:    ErrEmptyBody,
		Status:  422,
		Message: "entry body must not be empty or whitespace-only",
	}
}

// NewNotFound creates a 404 error for when an entry cannot be found.
func NewNotFound(identifier string) *SkyError {
	return &SkyError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("entry not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewUnresolvableSlot creates an error for a template slot that cannot be
// resolved from a weather observation. This is a configuration defect caught
// by the startup bank check, not an expected runtime condition.
func NewUnresolvableSlot(mood, slot string) *SkyError {
	return &SkyError{
		Code:    ErrUnresolvableSlot,
		Status:  500,
		Message: fmt.Sprintf("template for mood %q references unresolvable slot {%s}", mood, slot),
		Details: map[string]any{"mood": mood, "slot": slot},
	}
}

// NewCollaboratorUnavailable creates a 503 error naming the failed collaborator.
func NewCollaboratorUnavailable(collaborator string, err error) *SkyError {
	msg := fmt.Sprintf("collaborator %q unavailable", collaborator)
	if err != nil {
		msg = fmt.Sprintf("collaborator %q unavailable: %v", collaborator, err)
	}
	return &SkyError{
		Code:    ErrCollaboratorUnavailable,
		Status:  503,
		Message: msg,
		Details: map[string]any{"collaborator": collaborator},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *SkyError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &SkyError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a SkyError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*SkyError); ok {
		return sErr.Code == code
	}
	return false
}
