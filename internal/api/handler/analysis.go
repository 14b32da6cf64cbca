package handler

import (
	"net/http"

	"github.com/planline/planline/internal/api/middleware"
	"github.com/planline/planline/internal/api/request"
	"github.com/planline/planline/internal/api/response"
	"github.com/planline/planline/internal/domain"
	"github.com/planline/planline/internal/service"
)

// AnalysisHandler handles integrity checks, path enumeration, and solves.
type AnalysisHandler struct{}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{}
}

// Validate handles GET /validate.
func (h *AnalysisHandler) Validate(w http.ResponseWriter, r *http.Request) {
	report, err := analysisService(r).Validate()
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, report)
}

// ListIsolated handles GET /isolated.
func (h *AnalysisHandler) ListIsolated(w http.ResponseWriter, r *http.Request) {
	isolated, err := analysisService(r).Isolated()
	if err != nil {
		response.Error(w, err)
		return
	}

	if isolated == nil {
		isolated = []string{}
	}

	response.OK(w, isolated)
}

// ListCycles handles GET /cycles.
func (h *AnalysisHandler) ListCycles(w http.ResponseWriter, r *http.Request) {
	cycles, err := analysisService(r).Cycles()
	if err != nil {
		response.Error(w, err)
		return
	}

	if cycles == nil {
		cycles = [][]string{}
	}

	response.OK(w, cycles)
}

// ListPaths handles GET /paths?from=&to=.
func (h *AnalysisHandler) ListPaths(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	var errors []string
	if from == "" {
		errors = append(errors, "from is required")
	}
	if to == "" {
		errors = append(errors, "to is required")
	}
	if len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return
	}

	paths, err := analysisService(r).Paths(from, to)
	if err != nil {
		response.Error(w, err)
		return
	}

	if paths == nil {
		paths = []service.Path{}
	}

	response.OK(w, paths)
}

// Solve handles POST /solve.
func (h *AnalysisHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req request.SolveRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid JSON body"}))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return
	}

	agentID := middleware.GetAgentID(r.Context())
	solved, err := analysisService(r).Solve(req.Start, req.End, agentID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, solved)
}
