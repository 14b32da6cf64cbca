package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planline/planline/internal/api/request"
	"github.com/planline/planline/internal/api/response"
	"github.com/planline/planline/internal/domain"
	"github.com/planline/planline/internal/service"
)

// AuditHandler handles audit log operations.
type AuditHandler struct{}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler() *AuditHandler {
	return &AuditHandler{}
}

// GetActivityHistory handles GET /activities/{name}/history.
func (h *AuditHandler) GetActivityHistory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	entries, err := analysisService(r).History(name)
	if err != nil {
		response.Error(w, err)
		return
	}

	if entries == nil {
		entries = []*domain.AuditEntry{}
	}

	response.OK(w, entries)
}

// QueryAuditLog handles GET /audit.
func (h *AuditHandler) QueryAuditLog(w http.ResponseWriter, r *http.Request) {
	pagination := request.ParsePagination(r)
	queryParams := request.ParseAuditQuery(r)

	entries, total, err := analysisService(r).QueryAudit(service.AuditQueryInput{
		Action:    queryParams.Action,
		AgentID:   queryParams.AgentID,
		StartTime: queryParams.StartTime,
		EndTime:   queryParams.EndTime,
		Page:      pagination.Page,
		PerPage:   pagination.PerPage,
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	if entries == nil {
		entries = []*domain.AuditEntry{}
	}

	response.Paginated(w, entries, pagination.Page, pagination.PerPage, total)
}
