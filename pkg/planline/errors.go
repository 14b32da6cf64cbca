package planline

import (
	"errors"
	"fmt"
)

// Sentinel errors for connection-related issues.
var (
	// ErrServerNotRunning indicates the server is not reachable.
	ErrServerNotRunning = errors.New("server is not running or unreachable")
	// ErrServerUnhealthy indicates the health check failed.
	ErrServerUnhealthy = errors.New("server health check failed")
)

// ErrorCode represents a domain error code from the API.
type ErrorCode string

const (
	ErrCodeUnknownActivity     ErrorCode = "UNKNOWN_ACTIVITY"
	ErrCodeDuplicateEdge       ErrorCode = "DUPLICATE_EDGE"
	ErrCodeCyclicNetwork       ErrorCode = "CYCLIC_NETWORK"
	ErrCodeUnreachableEndpoint ErrorCode = "UNREACHABLE_ENDPOINT"
	ErrCodeEdgeNotFound        ErrorCode = "EDGE_NOT_FOUND"
	ErrCodeEssentialNotFound   ErrorCode = "ESSENTIAL_NOT_FOUND"
	ErrCodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	ErrCodeProjectNotFound     ErrorCode = "PROJECT_NOT_FOUND"
	ErrCodeInternalError       ErrorCode = "INTERNAL_ERROR"
)

// Error represents an error response from the Planline API.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

func (e *Error) Error() string {
	return e.Message
}

// apiErrorResponse wraps the error in the API response format.
type apiErrorResponse struct {
	Error apiError `json:"error"`
}

// apiError is the JSON structure for an API error.
type apiError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Helper functions to check error types.

// IsUnknownActivity returns true if the error indicates an activity was not found.
func IsUnknownActivity(err error) bool {
	return hasErrorCode(err, ErrCodeUnknownActivity)
}

// IsCyclicNetwork returns true if the error indicates the network has dependency cycles.
func IsCyclicNetwork(err error) bool {
	return hasErrorCode(err, ErrCodeCyclicNetwork)
}

// IsUnreachableEndpoint returns true if the error indicates the end activity
// is not reachable from the start.
func IsUnreachableEndpoint(err error) bool {
	return hasErrorCode(err, ErrCodeUnreachableEndpoint)
}

// IsEdgeNotFound returns true if the error indicates an edge was not found.
func IsEdgeNotFound(err error) bool {
	return hasErrorCode(err, ErrCodeEdgeNotFound)
}

// IsEssentialNotFound returns true if the error indicates an essential
// constraint was not found.
func IsEssentialNotFound(err error) bool {
	return hasErrorCode(err, ErrCodeEssentialNotFound)
}

// IsValidationFailed returns true if the error indicates validation failed.
func IsValidationFailed(err error) bool {
	return hasErrorCode(err, ErrCodeValidationFailed)
}

// IsProjectNotFound returns true if the error indicates a project was not found.
func IsProjectNotFound(err error) bool {
	return hasErrorCode(err, ErrCodeProjectNotFound)
}

// IsServerNotRunning returns true if the error indicates the server is not running.
func IsServerNotRunning(err error) bool {
	return errors.Is(err, ErrServerNotRunning)
}

// IsServerUnhealthy returns true if the error indicates the server is unhealthy.
func IsServerUnhealthy(err error) bool {
	return errors.Is(err, ErrServerUnhealthy)
}

// hasErrorCode checks if the error has the given error code.
func hasErrorCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}

// newUnknownActivityError creates an unknown activity error.
func newUnknownActivityError(name string) *Error {
	return &Error{
		Code:    ErrCodeUnknownActivity,
		Message: fmt.Sprintf("Activity %s not found in network", name),
		Context: map[string]interface{}{"name": name},
	}
}

// newCyclicNetworkError creates a cyclic network error.
func newCyclicNetworkError(cycles []string) *Error {
	return &Error{
		Code:    ErrCodeCyclicNetwork,
		Message: "Network contains dependency cycles",
		Context: map[string]interface{}{"cycles": cycles},
	}
}

// newUnreachableEndpointError creates an unreachable endpoint error.
func newUnreachableEndpointError(start, end string) *Error {
	return &Error{
		Code:    ErrCodeUnreachableEndpoint,
		Message: fmt.Sprintf("Activity %s is not reachable from %s", end, start),
		Context: map[string]interface{}{
			"start": start,
			"end":   end,
		},
	}
}

// newEdgeNotFoundError creates an edge not found error.
func newEdgeNotFoundError(from, to string) *Error {
	return &Error{
		Code:    ErrCodeEdgeNotFound,
		Message: fmt.Sprintf("Edge from %s to %s not found", from, to),
		Context: map[string]interface{}{
			"from": from,
			"to":   to,
		},
	}
}

// newEssentialNotFoundError creates an essential constraint not found error.
func newEssentialNotFoundError(activity, required string) *Error {
	return &Error{
		Code:    ErrCodeEssentialNotFound,
		Message: fmt.Sprintf("Activity %s has no essential constraint on %s", activity, required),
		Context: map[string]interface{}{
			"activity": activity,
			"required": required,
		},
	}
}

// newValidationError creates a validation error.
func newValidationError(details []string) *Error {
	return &Error{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Context: map[string]interface{}{"details": details},
	}
}

// newProjectNotFoundError creates a project not found error.
func newProjectNotFoundError(project string) *Error {
	return &Error{
		Code:    ErrCodeProjectNotFound,
		Message: fmt.Sprintf("Project %s not found", project),
		Context: map[string]interface{}{"project": project},
	}
}
