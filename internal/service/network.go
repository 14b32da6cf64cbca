package service

import (
	"database/sql"
	"fmt"

	"github.com/planline/planline/internal/domain"
	"github.com/planline/planline/internal/store/sqlite"
)

// NetworkService handles activity network mutations: activities, dependency
// edges, and essential constraints. Every mutation is audit-logged.
type NetworkService struct {
	activityRepo  *sqlite.ActivityRepository
	edgeRepo      *sqlite.EdgeRepository
	essentialRepo *sqlite.EssentialRepository
	auditRepo     *sqlite.AuditRepository
}

// NewNetworkService creates a new NetworkService.
func NewNetworkService(
	activityRepo *sqlite.ActivityRepository,
	edgeRepo *sqlite.EdgeRepository,
	essentialRepo *sqlite.EssentialRepository,
	auditRepo *sqlite.AuditRepository,
) *NetworkService {
	return &NetworkService{
		activityRepo:  activityRepo,
		edgeRepo:      edgeRepo,
		essentialRepo: essentialRepo,
		auditRepo:     auditRepo,
	}
}

// SuccessorInput names one outgoing edge of a new activity.
type SuccessorInput struct {
	To       string
	Duration float64
}

// AddActivityInput contains the input for adding an activity.
type AddActivityInput struct {
	Name       string
	Label      *string
	Successors []SuccessorInput
}

// AddActivity creates an activity together with its successor edges.
// Successors not yet registered are created implicitly, and a successor edge
// that already exists has its duration overwritten.
func (s *NetworkService) AddActivity(input AddActivityInput, agentID string) (*domain.Activity, error) {
	var details []string
	if !domain.ValidActivityName(input.Name) {
		details = append(details, "activity name must be 1-64 characters of [a-zA-Z0-9._-]")
	}
	for _, succ := range input.Successors {
		if !domain.ValidActivityName(succ.To) {
			details = append(details, "successor name must be 1-64 characters of [a-zA-Z0-9._-]")
		}
		if succ.To == input.Name {
			details = append(details, "self-loop edges are not allowed: "+input.Name)
		}
		if !domain.ValidDuration(succ.Duration) {
			details = append(details, "edge duration must be non-negative")
		}
	}
	if len(details) > 0 {
		return nil, domain.NewValidationError(details)
	}

	activity := domain.NewActivity(input.Name)
	if input.Label != nil {
		activity.SetLabel(*input.Label)
	}
	if err := s.activityRepo.Create(activity); err != nil {
		return nil, domain.NewInternalError(err)
	}

	entry := domain.NewAuditEntry(input.Name, domain.ActionAddActivity, agentID)
	s.auditRepo.Log(&entry)

	for _, succ := range input.Successors {
		if err := s.activityRepo.Create(domain.NewActivity(succ.To)); err != nil {
			return nil, domain.NewInternalError(err)
		}
		if _, err := s.upsertEdge(input.Name, succ.To, succ.Duration, agentID); err != nil {
			return nil, err
		}
	}

	stored, err := s.activityRepo.GetByName(input.Name)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return stored, nil
}

// GetActivity returns an activity with its outgoing edges.
func (s *NetworkService) GetActivity(name string) (*domain.Activity, []*domain.Edge, error) {
	activity, err := s.activityRepo.GetByName(name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, domain.NewUnknownActivityError(name)
		}
		return nil, nil, domain.NewInternalError(err)
	}

	edges, err := s.edgeRepo.ListFrom(name)
	if err != nil {
		return nil, nil, domain.NewInternalError(err)
	}
	return activity, edges, nil
}

// ListActivities returns all activities in the project.
func (s *NetworkService) ListActivities() ([]*domain.Activity, error) {
	activities, err := s.activityRepo.List()
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return activities, nil
}

// RemoveActivity deletes an activity. Edges in either direction and essential
// constraints naming it are removed with it.
func (s *NetworkService) RemoveActivity(name, agentID string) error {
	if err := s.activityRepo.Delete(name); err != nil {
		if err == sql.ErrNoRows {
			return domain.NewUnknownActivityError(name)
		}
		return domain.NewInternalError(err)
	}

	entry := domain.NewAuditEntry(name, domain.ActionRemoveActivity, agentID)
	s.auditRepo.Log(&entry)
	return nil
}

// AddEdge inserts a dependency edge, registering either endpoint if missing.
// A repeated (from, to) pair overwrites the stored duration; the overwrite is
// reported back so callers can surface it.
func (s *NetworkService) AddEdge(from, to string, duration float64, agentID string) (overwrote bool, err error) {
	var details []string
	if !domain.ValidActivityName(from) || !domain.ValidActivityName(to) {
		details = append(details, "activity name must be 1-64 characters of [a-zA-Z0-9._-]")
	}
	if from == to {
		details = append(details, "self-loop edges are not allowed: "+from)
	}
	if !domain.ValidDuration(duration) {
		details = append(details, "edge duration must be non-negative")
	}
	if len(details) > 0 {
		return false, domain.NewValidationError(details)
	}

	for _, name := range []string{from, to} {
		if err := s.activityRepo.Create(domain.NewActivity(name)); err != nil {
			return false, domain.NewInternalError(err)
		}
	}

	return s.upsertEdge(from, to, duration, agentID)
}

func (s *NetworkService) upsertEdge(from, to string, duration float64, agentID string) (overwrote bool, err error) {
	previous, err := s.edgeRepo.Upsert(from, to, duration)
	if err != nil {
		return false, domain.NewInternalError(err)
	}

	action := domain.ActionAddEdge
	entry := domain.NewAuditEntry(from, action, agentID).
		WithField("duration").
		WithNewValue(formatDuration(duration))
	if previous != nil {
		entry.Action = domain.ActionUpdateEdge
		entry = entry.WithOldValue(formatDuration(*previous))
	}
	s.auditRepo.Log(&entry)

	return previous != nil, nil
}

// RemoveEdge deletes a dependency edge.
func (s *NetworkService) RemoveEdge(from, to, agentID string) error {
	if err := s.edgeRepo.Remove(from, to); err != nil {
		if err == sql.ErrNoRows {
			return domain.NewEdgeNotFoundError(from, to)
		}
		return domain.NewInternalError(err)
	}

	entry := domain.NewAuditEntry(from, domain.ActionRemoveEdge, agentID).
		WithOldValue(to)
	s.auditRepo.Log(&entry)
	return nil
}

// ListEdges returns every edge in the project in insertion order.
func (s *NetworkService) ListEdges() ([]*domain.Edge, error) {
	edges, err := s.edgeRepo.ListAll()
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return edges, nil
}

// DeclareEssential records that activity cannot start before required has
// finished, independent of the edges between them. Re-declaring an existing
// pair is idempotent.
func (s *NetworkService) DeclareEssential(activity, required, agentID string) error {
	if activity == required {
		return domain.NewValidationError([]string{"activity cannot be essential on itself: " + activity})
	}
	for _, name := range []string{activity, required} {
		exists, err := s.activityRepo.Exists(name)
		if err != nil {
			return domain.NewInternalError(err)
		}
		if !exists {
			return domain.NewUnknownActivityError(name)
		}
	}

	if err := s.essentialRepo.Add(activity, required); err != nil {
		return domain.NewInternalError(err)
	}

	entry := domain.NewAuditEntry(activity, domain.ActionDeclareEssential, agentID).
		WithNewValue(required)
	s.auditRepo.Log(&entry)
	return nil
}

// RevokeEssential removes an essential constraint.
func (s *NetworkService) RevokeEssential(activity, required, agentID string) error {
	if err := s.essentialRepo.Remove(activity, required); err != nil {
		if err == sql.ErrNoRows {
			return domain.NewEssentialNotFoundError(activity, required)
		}
		return domain.NewInternalError(err)
	}

	entry := domain.NewAuditEntry(activity, domain.ActionRevokeEssential, agentID).
		WithOldValue(required)
	s.auditRepo.Log(&entry)
	return nil
}

// ListEssentials returns the essential requirements of one activity.
func (s *NetworkService) ListEssentials(activity string) ([]*domain.EssentialConstraint, error) {
	exists, err := s.activityRepo.Exists(activity)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if !exists {
		return nil, domain.NewUnknownActivityError(activity)
	}

	constraints, err := s.essentialRepo.ListByActivity(activity)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return constraints, nil
}

// ListAllEssentials returns every essential constraint in the project.
func (s *NetworkService) ListAllEssentials() ([]*domain.EssentialConstraint, error) {
	constraints, err := s.essentialRepo.ListAll()
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return constraints, nil
}

func formatDuration(d float64) string {
	return fmt.Sprintf("%g", d)
}
