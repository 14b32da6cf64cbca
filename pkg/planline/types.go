package planline

import "time"

// Activity represents a node in the activity network.
type Activity struct {
	Name      string    `json:"name"`
	Label     *string   `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Edge represents a weighted dependency edge between two activities.
type Edge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Duration float64 `json:"duration"`
}

// ActivityDetail is an activity together with its outgoing edges.
type ActivityDetail struct {
	Activity   *Activity `json:"activity"`
	Successors []Edge    `json:"successors"`
}

// EssentialConstraint records that Activity cannot start before Required has
// finished.
type EssentialConstraint struct {
	Activity string `json:"activity"`
	Required string `json:"required"`
}

// TimingRecord holds the computed schedule values for one activity.
type TimingRecord struct {
	Activity       string  `json:"activity"`
	EarliestStart  float64 `json:"earliest_start"`
	EarliestFinish float64 `json:"earliest_finish"`
	LatestStart    float64 `json:"latest_start"`
	LatestFinish   float64 `json:"latest_finish"`
	Slack          float64 `json:"slack"`
	Critical       bool    `json:"critical"`
}

// ScheduleResult is the outcome of a CPM solve.
type ScheduleResult struct {
	Start           string                   `json:"start"`
	End             string                   `json:"end"`
	CriticalPath    []string                 `json:"critical_path"`
	ProjectDuration float64                  `json:"project_duration"`
	Timings         map[string]*TimingRecord `json:"timings"`
	TopoOrder       []string                 `json:"topo_order"`
}

// SolveResult wraps a schedule with the run's identity and any non-fatal
// warnings raised during the solve.
type SolveResult struct {
	RunID   string          `json:"run_id"`
	Result  *ScheduleResult `json:"result"`
	Warning string          `json:"warning,omitempty"`
}

// ValidationReport is the outcome of a network integrity check.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Cycles   []string `json:"cycles,omitempty"`
	Isolated []string `json:"isolated,omitempty"`
	Warning  string   `json:"warning,omitempty"`
}

// Path is one simple path through the network with its total duration.
type Path struct {
	Activities []string `json:"activities"`
	Duration   float64  `json:"duration"`
}

// AuditEntry represents a single change in the audit log.
type AuditEntry struct {
	ID        int64     `json:"id"`
	Activity  string    `json:"activity"`
	Action    string    `json:"action"`
	Field     *string   `json:"field,omitempty"`
	OldValue  *string   `json:"old_value,omitempty"`
	NewValue  *string   `json:"new_value,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy string    `json:"changed_by"`
}

// PaginationMeta contains pagination metadata.
type PaginationMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// AuditPage is one page of audit log entries.
type AuditPage struct {
	Data       []AuditEntry   `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// createActivityRequest is the JSON body for CreateActivity.
type createActivityRequest struct {
	Name       string          `json:"name"`
	Label      *string         `json:"label,omitempty"`
	Successors []SuccessorSpec `json:"successors,omitempty"`
}

// addEdgeRequest is the JSON body for AddEdge.
type addEdgeRequest struct {
	To       string  `json:"to"`
	Duration float64 `json:"duration"`
}

// declareEssentialRequest is the JSON body for DeclareEssential.
type declareEssentialRequest struct {
	Required string `json:"required"`
}

// solveRequest is the JSON body for Solve.
type solveRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EdgeResult reports the outcome of an AddEdge call.
type EdgeResult struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Duration  float64 `json:"duration"`
	Overwrote bool    `json:"overwrote"`
}
