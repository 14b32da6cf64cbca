package handler

import (
	"net/http"

	"github.com/planline/planline/internal/api/middleware"
	"github.com/planline/planline/internal/api/response"
	"github.com/planline/planline/internal/domain"
	"github.com/planline/planline/internal/service"
	"github.com/planline/planline/internal/store"
	"github.com/planline/planline/internal/store/sqlite"
)

// SystemHandler handles system-level operations.
type SystemHandler struct {
	manager *store.Manager
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(manager *store.Manager) *SystemHandler {
	return &SystemHandler{manager: manager}
}

// Health handles GET /v1/health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}

// ListProjects handles GET /v1/projects.
func (h *SystemHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.manager.ListProjects()
	if err != nil {
		response.Error(w, domain.NewInternalError(err))
		return
	}

	if projects == nil {
		projects = []string{}
	}

	response.OK(w, projects)
}

// networkService builds a NetworkService over the request's project database.
func networkService(r *http.Request) *service.NetworkService {
	db := middleware.GetDB(r.Context())
	return service.NewNetworkService(
		sqlite.NewActivityRepository(db),
		sqlite.NewEdgeRepository(db),
		sqlite.NewEssentialRepository(db),
		sqlite.NewAuditRepository(db),
	)
}

// analysisService builds an AnalysisService over the request's project database.
func analysisService(r *http.Request) *service.AnalysisService {
	db := middleware.GetDB(r.Context())
	return service.NewAnalysisService(
		sqlite.NewActivityRepository(db),
		sqlite.NewEdgeRepository(db),
		sqlite.NewEssentialRepository(db),
		sqlite.NewAuditRepository(db),
	)
}
