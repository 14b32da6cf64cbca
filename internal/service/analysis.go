package service

import (
	"time"

	"github.com/planline/planline/internal/cpm"
	"github.com/planline/planline/internal/domain"
	"github.com/planline/planline/internal/network"
	"github.com/planline/planline/internal/store/sqlite"
	"github.com/planline/planline/pkg/idgen"
)

// AnalysisService runs integrity checks, path enumeration, and CPM solves
// over the persisted network. Each call materializes a fresh in-memory
// network from the repositories, so concurrent edits never corrupt a
// computation in flight.
type AnalysisService struct {
	activityRepo  *sqlite.ActivityRepository
	edgeRepo      *sqlite.EdgeRepository
	essentialRepo *sqlite.EssentialRepository
	auditRepo     *sqlite.AuditRepository
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(
	activityRepo *sqlite.ActivityRepository,
	edgeRepo *sqlite.EdgeRepository,
	essentialRepo *sqlite.EssentialRepository,
	auditRepo *sqlite.AuditRepository,
) *AnalysisService {
	return &AnalysisService{
		activityRepo:  activityRepo,
		edgeRepo:      edgeRepo,
		essentialRepo: essentialRepo,
		auditRepo:     auditRepo,
	}
}

// LoadNetwork materializes the persisted network. Edges are replayed in
// insertion order so enumeration output matches the order edits were made.
func (s *AnalysisService) LoadNetwork() (*network.Network, error) {
	activities, err := s.activityRepo.List()
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	net := network.New()
	for _, a := range activities {
		if err := net.AddActivity(a.Name, nil); err != nil {
			return nil, err
		}
	}

	edges, err := s.edgeRepo.ListAll()
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	for _, e := range edges {
		if _, err := net.AddEdge(e.From, e.To, e.Duration); err != nil {
			return nil, err
		}
	}
	return net, nil
}

// ValidationReport is the outcome of a network integrity check.
type ValidationReport struct {
	Valid    bool                `json:"valid"`
	Cycles   []string            `json:"cycles,omitempty"`
	Isolated []string            `json:"isolated,omitempty"`
	Warning  string              `json:"warning,omitempty"`
	Error    *domain.DomainError `json:"-"`
}

// Validate checks the persisted network for cycles and isolated activities.
// Cycles make the report invalid; isolated activities only attach a warning.
func (s *AnalysisService) Validate() (*ValidationReport, error) {
	net, err := s.LoadNetwork()
	if err != nil {
		return nil, err
	}

	report := &ValidationReport{Valid: true}
	warning, err := net.Validate()
	if err != nil {
		domainErr, ok := err.(*domain.DomainError)
		if !ok {
			return nil, domain.NewInternalError(err)
		}
		report.Valid = false
		report.Error = domainErr
		if cycles, ok := domainErr.Context["cycles"].([]string); ok {
			report.Cycles = cycles
		}
	}
	if warning != nil {
		report.Isolated = warning.Activities
		report.Warning = warning.String()
	}
	return report, nil
}

// Isolated returns activities with no meaningful connection to the network.
func (s *AnalysisService) Isolated() ([]string, error) {
	net, err := s.LoadNetwork()
	if err != nil {
		return nil, err
	}
	return net.FindIsolated(), nil
}

// Cycles returns every simple cycle in the persisted network.
func (s *AnalysisService) Cycles() ([][]string, error) {
	net, err := s.LoadNetwork()
	if err != nil {
		return nil, err
	}
	return net.FindAllCycles(), nil
}

// Path is one simple path through the network with its total duration.
type Path struct {
	Activities []string `json:"activities"`
	Duration   float64  `json:"duration"`
}

// Paths enumerates every simple path from start to end.
func (s *AnalysisService) Paths(start, end string) ([]Path, error) {
	net, err := s.LoadNetwork()
	if err != nil {
		return nil, err
	}

	raw, err := net.FindAllPaths(start, end)
	if err != nil {
		return nil, err
	}

	paths := make([]Path, 0, len(raw))
	for _, p := range raw {
		d, err := net.PathDuration(p)
		if err != nil {
			return nil, domain.NewInternalError(err)
		}
		paths = append(paths, Path{Activities: p, Duration: d})
	}
	return paths, nil
}

// SolveResult wraps a CPM schedule with the run's identity and any
// non-fatal warnings raised during the solve.
type SolveResult struct {
	RunID   string      `json:"run_id"`
	Result  *cpm.Result `json:"result"`
	Warning string      `json:"warning,omitempty"`
}

// Solve computes the CPM schedule of the persisted network between start and
// end, honoring stored essential constraints. Each call is an independent run
// over a snapshot, identified by a generated run ID and recorded in the
// audit log.
func (s *AnalysisService) Solve(start, end, agentID string) (*SolveResult, error) {
	net, err := s.LoadNetwork()
	if err != nil {
		return nil, err
	}

	warning, err := net.Validate()
	if err != nil {
		return nil, err
	}

	solver := cpm.NewSolver(net)

	constraints, err := s.essentialRepo.ListAll()
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	for _, c := range constraints {
		if err := solver.DeclareEssential(c.Activity, c.Required); err != nil {
			return nil, err
		}
	}

	result, err := solver.Solve(start, end)
	if err != nil {
		return nil, err
	}

	runID, err := idgen.Generate()
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	out := &SolveResult{RunID: runID, Result: result}
	if warning != nil {
		out.Warning = warning.String()
	}

	entry := domain.NewAuditEntry(start, domain.ActionSolve, agentID).
		WithField("run_id").
		WithNewValue(runID)
	s.auditRepo.Log(&entry)

	return out, nil
}

// History returns the audit trail of one activity. History survives the
// activity's deletion, so the existence check only runs when the trail is
// empty.
func (s *AnalysisService) History(activity string) ([]*domain.AuditEntry, error) {
	entries, err := s.auditRepo.ListByActivity(activity)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if len(entries) == 0 {
		exists, err := s.activityRepo.Exists(activity)
		if err != nil {
			return nil, domain.NewInternalError(err)
		}
		if !exists {
			return nil, domain.NewUnknownActivityError(activity)
		}
	}
	return entries, nil
}

// AuditQueryInput contains the input for querying the audit log.
type AuditQueryInput struct {
	Action    *string
	AgentID   *string
	StartTime *time.Time
	EndTime   *time.Time
	Page      int
	PerPage   int
}

// QueryAudit queries the audit log with filters and pagination.
func (s *AnalysisService) QueryAudit(input AuditQueryInput) ([]*domain.AuditEntry, int, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.PerPage < 1 || input.PerPage > 100 {
		input.PerPage = 50
	}

	entries, total, err := s.auditRepo.Query(sqlite.AuditQueryParams{
		Action:    input.Action,
		AgentID:   input.AgentID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Page:      input.Page,
		PerPage:   input.PerPage,
	})
	if err != nil {
		return nil, 0, domain.NewInternalError(err)
	}
	return entries, total, nil
}
