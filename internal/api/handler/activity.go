package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planline/planline/internal/api/middleware"
	"github.com/planline/planline/internal/api/request"
	"github.com/planline/planline/internal/api/response"
	"github.com/planline/planline/internal/domain"
	"github.com/planline/planline/internal/service"
)

// ActivityHandler handles activity CRUD operations.
type ActivityHandler struct{}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler() *ActivityHandler {
	return &ActivityHandler{}
}

// activityView is an activity together with its outgoing edges.
type activityView struct {
	Activity   *domain.Activity `json:"activity"`
	Successors []*domain.Edge   `json:"successors"`
}

// ListActivities handles GET /activities.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := networkService(r).ListActivities()
	if err != nil {
		response.Error(w, err)
		return
	}

	if activities == nil {
		activities = []*domain.Activity{}
	}

	response.OK(w, activities)
}

// CreateActivity handles POST /activities.
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req request.CreateActivityRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid JSON body"}))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return
	}

	input := service.AddActivityInput{
		Name:  req.Name,
		Label: req.Label,
	}
	for _, succ := range req.Successors {
		input.Successors = append(input.Successors, service.SuccessorInput{
			To:       succ.To,
			Duration: succ.Duration,
		})
	}

	agentID := middleware.GetAgentID(r.Context())
	activity, err := networkService(r).AddActivity(input, agentID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, activity)
}

// GetActivity handles GET /activities/{name}.
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	activity, edges, err := networkService(r).GetActivity(name)
	if err != nil {
		response.Error(w, err)
		return
	}

	if edges == nil {
		edges = []*domain.Edge{}
	}

	response.OK(w, activityView{Activity: activity, Successors: edges})
}

// DeleteActivity handles DELETE /activities/{name}.
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	agentID := middleware.GetAgentID(r.Context())

	if err := networkService(r).RemoveActivity(name, agentID); err != nil {
		response.Error(w, err)
		return
	}

	response.NoContent(w)
}

// ListSuccessors handles GET /activities/{name}/successors.
func (h *ActivityHandler) ListSuccessors(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	_, edges, err := networkService(r).GetActivity(name)
	if err != nil {
		response.Error(w, err)
		return
	}

	if edges == nil {
		edges = []*domain.Edge{}
	}

	response.OK(w, edges)
}
