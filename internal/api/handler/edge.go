package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planline/planline/internal/api/middleware"
	"github.com/planline/planline/internal/api/request"
	"github.com/planline/planline/internal/api/response"
	"github.com/planline/planline/internal/domain"
)

// EdgeHandler handles dependency edge operations.
type EdgeHandler struct{}

// NewEdgeHandler creates a new EdgeHandler.
func NewEdgeHandler() *EdgeHandler {
	return &EdgeHandler{}
}

// ListEdges handles GET /edges.
func (h *EdgeHandler) ListEdges(w http.ResponseWriter, r *http.Request) {
	edges, err := networkService(r).ListEdges()
	if err != nil {
		response.Error(w, err)
		return
	}

	if edges == nil {
		edges = []*domain.Edge{}
	}

	response.OK(w, edges)
}

// AddEdge handles POST /activities/{name}/edges.
func (h *EdgeHandler) AddEdge(w http.ResponseWriter, r *http.Request) {
	from := chi.URLParam(r, "name")

	var req request.AddEdgeRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid JSON body"}))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return
	}

	agentID := middleware.GetAgentID(r.Context())
	overwrote, err := networkService(r).AddEdge(from, req.To, *req.Duration, agentID)
	if err != nil {
		response.Error(w, err)
		return
	}

	body := map[string]interface{}{
		"from":      from,
		"to":        req.To,
		"duration":  *req.Duration,
		"overwrote": overwrote,
	}
	if overwrote {
		response.OK(w, body)
		return
	}
	response.Created(w, body)
}

// RemoveEdge handles DELETE /activities/{name}/edges/{to}.
func (h *EdgeHandler) RemoveEdge(w http.ResponseWriter, r *http.Request) {
	from := chi.URLParam(r, "name")
	to := chi.URLParam(r, "to")
	agentID := middleware.GetAgentID(r.Context())

	if err := networkService(r).RemoveEdge(from, to, agentID); err != nil {
		response.Error(w, err)
		return
	}

	response.NoContent(w)
}
