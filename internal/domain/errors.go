package domain

import (
	"fmt"
	"strings"
)

// ErrorCode represents a domain error code.
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

// DomainError represents an error in the domain layer with context.
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewUnknownActivityError creates an error for an operation that references
// an activity absent from the network. This is always surfaced to the caller,
// never silently ignored.
func NewUnknownActivityError(name string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownActivity,
		Message: fmt.Sprintf("Activity %s not found in network", name),
		Context: map[string]interface{}{"name": name},
	}
}

// NewDuplicateEdgeError creates an error for an edge insertion that would
// duplicate an existing (from, to) pair. The engine's policy is to overwrite
// the duration instead; this error is reserved for reporting the conflict.
func NewDuplicateEdgeError(from, to string, oldDuration, newDuration float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicateEdge,
		Message: fmt.Sprintf("Edge %s -> %s already exists", from, to),
		Context: map[string]interface{}{
			"from":         from,
			"to":           to,
			"old_duration": oldDuration,
			"new_duration": newDuration,
		},
	}
}

// NewCyclicNetworkError creates an error for a network containing directed
// cycles. CPM is undefined on a cyclic graph, so this is fatal to a solve.
func NewCyclicNetworkError(cycles [][]string) *DomainError {
	rendered := make([]string, len(cycles))
	for i, c := range cycles {
		rendered[i] = strings.Join(c, " -> ")
	}
	return &DomainError{
		Code:    ErrCodeCyclicNetwork,
		Message: "Network contains dependency cycles",
		Context: map[string]interface{}{"cycles": rendered},
	}
}

// NewUnreachableEndpointError creates an error for a solve whose end activity
// cannot be reached from the start activity.
func NewUnreachableEndpointError(start, end string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnreachableEndpoint,
		Message: fmt.Sprintf("Activity %s is not reachable from %s", end, start),
		Context: map[string]interface{}{
			"start": start,
			"end":   end,
		},
	}
}

// NewEdgeNotFoundError creates an error for a missing (from, to) edge.
func NewEdgeNotFoundError(from, to string) *DomainError {
	return &DomainError{
		Code:    ErrCodeEdgeNotFound,
		Message: fmt.Sprintf("Edge from %s to %s not found", from, to),
		Context: map[string]interface{}{
			"from": from,
			"to":   to,
		},
	}
}

// NewEssentialNotFoundError creates an error for a missing essential
// constraint pair.
func NewEssentialNotFoundError(activity, required string) *DomainError {
	return &DomainError{
		Code:    ErrCodeEssentialNotFound,
		Message: fmt.Sprintf("Activity %s has no essential constraint on %s", activity, required),
		Context: map[string]interface{}{
			"activity": activity,
			"required": required,
		},
	}
}

// NewValidationError creates a validation error.
func NewValidationError(details []string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Context: map[string]interface{}{"details": details},
	}
}

// NewProjectNotFoundError creates a project not found error.
func NewProjectNotFoundError(project string) *DomainError {
	return &DomainError{
		Code:    ErrCodeProjectNotFound,
		Message: fmt.Sprintf("Project %s not found", project),
		Context: map[string]interface{}{"project": project},
	}
}

// NewInternalError creates an internal error.
func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternalError,
		Message: "An internal error occurred",
		Context: map[string]interface{}{},
	}
}

// IsolatedActivityWarning reports activities with no meaningful connection to
// the rest of the network. It is a warning, not an error: isolated activities
// do not block solving unless one of them is the declared start or end.
type IsolatedActivityWarning struct {
	Activities []string `json:"activities"`
}

func (w *IsolatedActivityWarning) String() string {
	return fmt.Sprintf("isolated activities: %s", strings.Join(w.Activities, ", "))
}
