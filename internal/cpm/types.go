package cpm

// TimingRecord holds the computed schedule for a single activity. Records are
// created fresh on every solve and never mutated afterwards; a network edit
// invalidates them and requires a new solve.
type TimingRecord struct {
	Activity       string  `json:"activity"`
	EarliestStart  float64 `json:"earliest_start"`
	EarliestFinish float64 `json:"earliest_finish"`
	LatestStart    float64 `json:"latest_start"`
	LatestFinish   float64 `json:"latest_finish"`
	Slack          float64 `json:"slack"`
	Critical       bool    `json:"critical"`
}

// Result holds a complete critical path analysis.
type Result struct {
	Start           string                   `json:"start"`
	End             string                   `json:"end"`
	CriticalPath    []string                 `json:"critical_path"`
	ProjectDuration float64                  `json:"project_duration"`
	Timings         map[string]*TimingRecord `json:"timings"`
	TopoOrder       []string                 `json:"topo_order"`
}

// State tracks a solver through its lifecycle. A solver is single-use per
// network snapshot: Solved and Failed are terminal.
type State int

const (
	Unsolved State = iota
	Solving
	Solved
	Failed
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case Unsolved:
		return "unsolved"
	case Solving:
		return "solving"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
