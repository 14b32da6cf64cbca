package network

import (
	"sort"
	"strings"

	"github.com/planline/planline/internal/domain"
)

// Visitation states for the cycle-check DFS.
const (
	white = 0 // unvisited
	gray  = 1 // on the current recursion stack
	black = 2 // fully explored
)

// FindIsolated returns activities with no meaningful connection to the rest
// of the network: an activity is referenced when it has at least one outgoing
// edge or appears as a successor anywhere; isolated is everything else.
func (n *Network) FindIsolated() []string {
	referenced := make(map[string]bool)
	for _, name := range n.Activities() {
		edges := n.adj[name]
		if len(edges) == 0 {
			continue
		}
		referenced[name] = true
		for _, e := range edges {
			referenced[e.To] = true
		}
	}

	var isolated []string
	for _, name := range n.Activities() {
		if !referenced[name] {
			isolated = append(isolated, name)
		}
	}
	return isolated
}

// FindAllCycles returns every distinct simple cycle in the network. Each
// cycle is reported as an ordered sequence starting and ending at the same
// activity, rotated so the lexicographically smallest member comes first,
// and the list is sorted for deterministic output.
//
// This is a diagnostic: it walks path-accumulation DFS from every activity
// and can be expensive on dense graphs. Validate uses the linear three-color
// check and only calls this once a cycle is known to exist.
func (n *Network) FindAllCycles() [][]string {
	seen := make(map[string]struct{})
	var cycles [][]string

	for _, start := range n.Activities() {
		n.collectCycles(start, start, []string{start}, seen, &cycles)
	}

	sort.Slice(cycles, func(i, j int) bool {
		return strings.Join(cycles[i], ",") < strings.Join(cycles[j], ",")
	})
	return cycles
}

// collectCycles extends path by one successor at a time. Reaching the cycle
// start closes a cycle; reaching any other activity already on the path is
// pruned, since that cycle is found when DFS starts from one of its own
// members. The path value is copied per recursion step, never shared.
func (n *Network) collectCycles(start, current string, path []string, seen map[string]struct{}, cycles *[][]string) {
	for _, e := range n.adj[current] {
		if e.To == start {
			cycle := canonicalCycle(path)
			sig := strings.Join(cycle, ",")
			if _, dup := seen[sig]; !dup {
				seen[sig] = struct{}{}
				*cycles = append(*cycles, cycle)
			}
			continue
		}
		if containsActivity(path, e.To) {
			continue
		}
		next := make([]string, len(path), len(path)+1)
		copy(next, path)
		n.collectCycles(start, e.To, append(next, e.To), seen, cycles)
	}
}

// canonicalCycle rotates the cycle so its smallest member leads, then appends
// the closing repeat of that member.
func canonicalCycle(members []string) []string {
	min := 0
	for i, m := range members {
		if m < members[min] {
			min = i
		}
	}
	cycle := make([]string, 0, len(members)+1)
	cycle = append(cycle, members[min:]...)
	cycle = append(cycle, members[:min]...)
	return append(cycle, members[min])
}

// Validate checks that the network is schedulable: it must be acyclic, and
// isolated activities are reported back as a warning. Pruning isolated
// activities is the caller's decision, never a side effect here.
func (n *Network) Validate() (*domain.IsolatedActivityWarning, error) {
	if n.hasCycle() {
		return nil, domain.NewCyclicNetworkError(n.FindAllCycles())
	}
	if isolated := n.FindIsolated(); len(isolated) > 0 {
		return &domain.IsolatedActivityWarning{Activities: isolated}, nil
	}
	return nil, nil
}

// hasCycle runs a linear three-color DFS over the whole network.
func (n *Network) hasCycle() bool {
	color := make(map[string]int, len(n.adj))

	var visit func(name string) bool
	visit = func(name string) bool {
		color[name] = gray
		for _, e := range n.adj[name] {
			switch color[e.To] {
			case gray:
				return true
			case white:
				if visit(e.To) {
					return true
				}
			}
		}
		color[name] = black
		return false
	}

	for _, name := range n.Activities() {
		if color[name] == white && visit(name) {
			return true
		}
	}
	return false
}

func containsActivity(path []string, name string) bool {
	for _, p := range path {
		if p == name {
			return true
		}
	}
	return false
}
