package request

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/planline/planline/internal/domain"
)

// SuccessorBody names one outgoing edge inside a create request.
type SuccessorBody struct {
	To       string  `json:"to"`
	Duration float64 `json:"duration"`
}

// CreateActivityRequest represents a request to create an activity.
type CreateActivityRequest struct {
	Name       string          `json:"name"`
	Label      *string         `json:"label,omitempty"`
	Successors []SuccessorBody `json:"successors,omitempty"`
}

// Validate validates the create activity request.
func (r *CreateActivityRequest) Validate() []string {
	var errors []string

	if r.Name == "" {
		errors = append(errors, "name is required")
	} else if !domain.ValidActivityName(r.Name) {
		errors = append(errors, "name must be 1-64 characters of [a-zA-Z0-9._-]")
	}

	for _, succ := range r.Successors {
		if !domain.ValidActivityName(succ.To) {
			errors = append(errors, "successor to must be 1-64 characters of [a-zA-Z0-9._-]")
		}
		if !domain.ValidDuration(succ.Duration) {
			errors = append(errors, "successor duration must be non-negative")
		}
	}

	return errors
}

// DecodeJSON decodes JSON from request body into the given value.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// Pagination contains pagination parameters.
type Pagination struct {
	Page    int
	PerPage int
}

// DefaultPage is the default page number.
const DefaultPage = 1

// DefaultPerPage is the default items per page.
const DefaultPerPage = 50

// MaxPerPage is the maximum items per page.
const MaxPerPage = 100

// ParsePagination extracts pagination from query parameters.
func ParsePagination(r *http.Request) Pagination {
	page := DefaultPage
	perPage := DefaultPerPage

	if p := r.URL.Query().Get("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if pp := r.URL.Query().Get("per_page"); pp != "" {
		if v, err := strconv.Atoi(pp); err == nil && v > 0 {
			perPage = v
		}
	}

	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return Pagination{Page: page, PerPage: perPage}
}
