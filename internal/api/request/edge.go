package request

import "github.com/planline/planline/internal/domain"

// AddEdgeRequest represents a request to add a dependency edge.
type AddEdgeRequest struct {
	To       string   `json:"to"`
	Duration *float64 `json:"duration"`
}

// Validate validates the add edge request.
func (r *AddEdgeRequest) Validate() []string {
	var errors []string

	if r.To == "" {
		errors = append(errors, "to is required")
	} else if !domain.ValidActivityName(r.To) {
		errors = append(errors, "to must be 1-64 characters of [a-zA-Z0-9._-]")
	}

	if r.Duration == nil {
		errors = append(errors, "duration is required")
	} else if !domain.ValidDuration(*r.Duration) {
		errors = append(errors, "duration must be non-negative")
	}

	return errors
}
