package domain

// Edge represents a directed dependency between two activities. The duration
// is the time required to move from the tail activity to the head activity
// (activity-on-arc model). At most one edge may exist per ordered (from, to)
// pair; re-adding with a new duration overwrites the old one.
type Edge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Duration float64 `json:"duration"`
}

// NewEdge creates a new dependency edge.
func NewEdge(from, to string, duration float64) Edge {
	return Edge{
		From:     from,
		To:       to,
		Duration: duration,
	}
}

// ValidDuration checks that an edge duration is non-negative.
func ValidDuration(d float64) bool {
	return d >= 0
}
