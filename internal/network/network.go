// Package network implements the in-memory activity network: a directed,
// weighted adjacency list with integrity checks (cycles, isolated activities)
// and simple-path enumeration. The network is the unit a solve operates on;
// callers own it exclusively and the solver only ever sees a snapshot.
package network

import (
	"sort"

	"github.com/planline/planline/internal/domain"
)

// Edge is an outgoing dependency edge: the successor activity and the
// duration required to move from the owning activity to it.
type Edge struct {
	To       string  `json:"to"`
	Duration float64 `json:"duration"`
}

// Network is a mapping from activity name to its outgoing edges. Edge
// insertion order is preserved so that enumeration output is deterministic.
// The network is closed under reference: every successor named by an edge is
// itself a key, registered implicitly with an empty edge list if needed.
type Network struct {
	adj map[string][]Edge
}

// New creates an empty network.
func New() *Network {
	return &Network{adj: make(map[string][]Edge)}
}

// FromMap builds a network from an activity -> successors mapping. Activities
// are inserted in sorted key order so construction is deterministic.
func FromMap(m map[string][]Edge) (*Network, error) {
	n := New()

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := n.AddActivity(name, m[name]); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// AddActivity inserts an activity with the given successor edges. If the
// activity already exists the edges are appended to its existing list, with
// exact duplicate (to, duration) pairs dropped and a repeated (from, to) pair
// overwriting the stored duration. Successors not yet present are registered
// with an empty edge list.
func (n *Network) AddActivity(name string, successors []Edge) error {
	if name == "" {
		return domain.NewValidationError([]string{"activity name cannot be empty"})
	}
	for _, e := range successors {
		if e.To == name {
			return domain.NewValidationError([]string{"self-loop edges are not allowed: " + name})
		}
		if !domain.ValidDuration(e.Duration) {
			return domain.NewValidationError([]string{"edge duration must be non-negative"})
		}
	}

	if _, ok := n.adj[name]; !ok {
		n.adj[name] = []Edge{}
	}
	for _, e := range successors {
		n.addEdge(name, e.To, e.Duration)
	}
	return nil
}

// AddEdge inserts a single edge, registering either endpoint if missing.
// Returns true when an existing (from, to) edge had its duration overwritten.
func (n *Network) AddEdge(from, to string, duration float64) (bool, error) {
	if from == to {
		return false, domain.NewValidationError([]string{"self-loop edges are not allowed: " + from})
	}
	if !domain.ValidDuration(duration) {
		return false, domain.NewValidationError([]string{"edge duration must be non-negative"})
	}
	if _, ok := n.adj[from]; !ok {
		n.adj[from] = []Edge{}
	}
	return n.addEdge(from, to, duration), nil
}

// addEdge appends an edge to an existing activity, applying the duplicate
// policy: identical (to, duration) is a no-op, same head with a different
// duration overwrites in place. The head is registered if missing.
func (n *Network) addEdge(from, to string, duration float64) bool {
	if _, ok := n.adj[to]; !ok {
		n.adj[to] = []Edge{}
	}
	for i, existing := range n.adj[from] {
		if existing.To == to {
			if existing.Duration == duration {
				return false
			}
			n.adj[from][i].Duration = duration
			return true
		}
	}
	n.adj[from] = append(n.adj[from], Edge{To: to, Duration: duration})
	return false
}

// RemoveActivity deletes an activity and every edge elsewhere in the network
// whose head is that activity. Removing an unknown activity is an error, not
// a silent no-op.
func (n *Network) RemoveActivity(name string) error {
	if _, ok := n.adj[name]; !ok {
		return domain.NewUnknownActivityError(name)
	}
	delete(n.adj, name)

	for from, edges := range n.adj {
		kept := edges[:0]
		for _, e := range edges {
			if e.To != name {
				kept = append(kept, e)
			}
		}
		n.adj[from] = kept
	}
	return nil
}

// RemoveEdge deletes the (from, to) edge. The head activity stays registered.
func (n *Network) RemoveEdge(from, to string) error {
	edges, ok := n.adj[from]
	if !ok {
		return domain.NewUnknownActivityError(from)
	}
	for i, e := range edges {
		if e.To == to {
			n.adj[from] = append(edges[:i:i], edges[i+1:]...)
			return nil
		}
	}
	return domain.NewEdgeNotFoundError(from, to)
}

// SuccessorsOf returns the activity's outgoing edges in stored order.
func (n *Network) SuccessorsOf(name string) ([]Edge, error) {
	edges, ok := n.adj[name]
	if !ok {
		return nil, domain.NewUnknownActivityError(name)
	}
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out, nil
}

// Activities returns all activity names in sorted order.
func (n *Network) Activities() []string {
	names := make([]string, 0, len(n.adj))
	for name := range n.adj {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the activity is present in the network.
func (n *Network) Has(name string) bool {
	_, ok := n.adj[name]
	return ok
}

// Len returns the number of activities.
func (n *Network) Len() int {
	return len(n.adj)
}

// Predecessors returns the reverse adjacency mapping: for each activity, the
// edges that point at it. Used by the solver's forward and backward passes.
func (n *Network) Predecessors() map[string][]domain.Edge {
	rev := make(map[string][]domain.Edge, len(n.adj))
	for _, from := range n.Activities() {
		for _, e := range n.adj[from] {
			rev[e.To] = append(rev[e.To], domain.NewEdge(from, e.To, e.Duration))
		}
	}
	return rev
}

// Clone returns a point-in-time copy of the network. A solve works on a clone
// so that concurrent reads of a solved result stay safe while the caller
// begins a new round of edits.
func (n *Network) Clone() *Network {
	c := &Network{adj: make(map[string][]Edge, len(n.adj))}
	for name, edges := range n.adj {
		cp := make([]Edge, len(edges))
		copy(cp, edges)
		c.adj[name] = cp
	}
	return c
}
