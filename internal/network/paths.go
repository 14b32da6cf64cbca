package network

import (
	"github.com/planline/planline/internal/domain"
)

// FindAllPaths returns every simple directed path from start to end,
// inclusive of both endpoints, in depth-first order with successors visited
// in their stored order. The enumeration order is stable, which makes it the
// tie-break rule for critical path selection.
//
// An unknown start is an error; an end that exists but cannot be reached
// yields an empty result.
func (n *Network) FindAllPaths(start, end string) ([][]string, error) {
	if _, ok := n.adj[start]; !ok {
		return nil, domain.NewUnknownActivityError(start)
	}

	var paths [][]string
	n.extendPath(start, end, []string{start}, &paths)
	return paths, nil
}

// extendPath grows the current path by one unvisited successor at a time.
// Each recursion step works on its own copy of the path, so no state leaks
// between sibling branches or between calls.
func (n *Network) extendPath(current, end string, path []string, paths *[][]string) {
	if current == end {
		complete := make([]string, len(path))
		copy(complete, path)
		*paths = append(*paths, complete)
		return
	}
	for _, e := range n.adj[current] {
		if containsActivity(path, e.To) {
			continue
		}
		next := make([]string, len(path), len(path)+1)
		copy(next, path)
		n.extendPath(e.To, end, append(next, e.To), paths)
	}
}

// PathDuration sums the edge durations along a path. Returns an error when
// any consecutive pair is not connected by an edge.
func (n *Network) PathDuration(path []string) (float64, error) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		edges, ok := n.adj[path[i]]
		if !ok {
			return 0, domain.NewUnknownActivityError(path[i])
		}
		found := false
		for _, e := range edges {
			if e.To == path[i+1] {
				total += e.Duration
				found = true
				break
			}
		}
		if !found {
			return 0, domain.NewEdgeNotFoundError(path[i], path[i+1])
		}
	}
	return total, nil
}
