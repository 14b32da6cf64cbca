package request

// SolveRequest represents a request to compute a schedule.
type SolveRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Validate validates the solve request.
func (r *SolveRequest) Validate() []string {
	var errors []string

	if r.Start == "" {
		errors = append(errors, "start is required")
	}
	if r.End == "" {
		errors = append(errors, "end is required")
	}
	if r.Start != "" && r.Start == r.End {
		errors = append(errors, "start and end must differ")
	}

	return errors
}
