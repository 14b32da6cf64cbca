package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planline/planline/internal/api/middleware"
	"github.com/planline/planline/internal/api/request"
	"github.com/planline/planline/internal/api/response"
	"github.com/planline/planline/internal/domain"
)

// EssentialHandler handles essential constraint operations.
type EssentialHandler struct{}

// NewEssentialHandler creates a new EssentialHandler.
func NewEssentialHandler() *EssentialHandler {
	return &EssentialHandler{}
}

// ListEssentials handles GET /activities/{name}/essentials.
func (h *EssentialHandler) ListEssentials(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	constraints, err := networkService(r).ListEssentials(name)
	if err != nil {
		response.Error(w, err)
		return
	}

	if constraints == nil {
		constraints = []*domain.EssentialConstraint{}
	}

	response.OK(w, constraints)
}

// DeclareEssential handles POST /activities/{name}/essentials.
func (h *EssentialHandler) DeclareEssential(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req request.DeclareEssentialRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid JSON body"}))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return
	}

	agentID := middleware.GetAgentID(r.Context())
	if err := networkService(r).DeclareEssential(name, req.Required, agentID); err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, map[string]string{
		"activity": name,
		"required": req.Required,
	})
}

// RevokeEssential handles DELETE /activities/{name}/essentials/{required}.
func (h *EssentialHandler) RevokeEssential(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	required := chi.URLParam(r, "required")
	agentID := middleware.GetAgentID(r.Context())

	if err := networkService(r).RevokeEssential(name, required, agentID); err != nil {
		response.Error(w, err)
		return
	}

	response.NoContent(w)
}
