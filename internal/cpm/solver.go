// Package cpm computes Critical Path Method schedules over an activity
// network: earliest/latest start and finish per activity via forward and
// backward passes in topological order, slack, and the critical path from a
// designated start to a designated end.
package cpm

import (
	"sort"

	"github.com/planline/planline/internal/domain"
	"github.com/planline/planline/internal/network"
)

// Solver computes a CPM schedule over a point-in-time snapshot of a network.
// It is single-use: after Solve returns, the solver is Solved or Failed and
// a fresh one is needed for any further computation.
type Solver struct {
	net        *network.Network
	essentials map[string][]string
	state      State
}

// NewSolver creates a solver over a snapshot of n. The caller's network is
// never retained: edits made after construction do not affect the solve.
func NewSolver(n *network.Network) *Solver {
	return &Solver{
		net:        n.Clone(),
		essentials: make(map[string][]string),
		state:      Unsolved,
	}
}

// State returns the solver's lifecycle state.
func (s *Solver) State() State {
	return s.state
}

// DeclareEssential records that activity's earliest start must also account
// for the earliest finish of each required activity, beyond what the raw
// edges encode. Must be called before Solve.
func (s *Solver) DeclareEssential(activity string, required ...string) error {
	if s.state != Unsolved {
		return domain.NewValidationError([]string{"essential constraints must be declared before solving"})
	}
	if !s.net.Has(activity) {
		return domain.NewUnknownActivityError(activity)
	}
	for _, r := range required {
		if !s.net.Has(r) {
			return domain.NewUnknownActivityError(r)
		}
		if r == activity {
			return domain.NewValidationError([]string{"activity cannot be essential on itself: " + activity})
		}
	}
	s.essentials[activity] = append(s.essentials[activity], required...)
	return nil
}

// Solve computes the full schedule from start to end. The network must be
// acyclic and both endpoints must exist; end must be reachable from start.
func (s *Solver) Solve(start, end string) (*Result, error) {
	if s.state != Unsolved {
		return nil, domain.NewValidationError([]string{"solver already used; create a new one per solve"})
	}
	s.state = Solving

	if !s.net.Has(start) {
		s.state = Failed
		return nil, domain.NewUnknownActivityError(start)
	}
	if !s.net.Has(end) {
		s.state = Failed
		return nil, domain.NewUnknownActivityError(end)
	}

	order, err := s.topoOrder()
	if err != nil {
		s.state = Failed
		return nil, err
	}

	paths, err := s.net.FindAllPaths(start, end)
	if err != nil {
		s.state = Failed
		return nil, err
	}
	if len(paths) == 0 {
		s.state = Failed
		return nil, domain.NewUnreachableEndpointError(start, end)
	}

	preds := s.net.Predecessors()

	result := &Result{
		Start:     start,
		End:       end,
		Timings:   make(map[string]*TimingRecord, len(order)),
		TopoOrder: order,
	}
	for _, name := range order {
		result.Timings[name] = &TimingRecord{Activity: name}
	}

	s.forwardPass(order, preds, result)
	s.applyEssentials(order, preds, result)
	s.backwardPass(order, result)

	result.ProjectDuration = result.Timings[end].EarliestFinish
	result.CriticalPath = s.selectCriticalPath(paths)

	s.state = Solved
	return result, nil
}

// topoOrder runs Kahn's algorithm with a sorted ready queue for determinism.
// Failure to order every activity means the network has a cycle.
func (s *Solver) topoOrder() ([]string, error) {
	names := s.net.Activities()
	preds := s.net.Predecessors()

	inDegree := make(map[string]int, len(names))
	for _, name := range names {
		inDegree[name] = len(preds[name])
	}

	var queue []string
	for _, name := range names {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var order []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		edges, _ := s.net.SuccessorsOf(node)
		var ready []string
		for _, e := range edges {
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				ready = append(ready, e.To)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
	}

	if len(order) != len(names) {
		return nil, domain.NewCyclicNetworkError(s.net.FindAllCycles())
	}
	return order, nil
}

// forwardPass computes earliest start and finish in topological order. In the
// activity-on-arc model the earliest finish of an activity is the max over
// its incoming edges of the predecessor's earliest finish plus the edge
// duration; the earliest start is the max of predecessor finishes alone.
func (s *Solver) forwardPass(order []string, preds map[string][]domain.Edge, result *Result) {
	for _, name := range order {
		rec := result.Timings[name]
		var es, ef float64
		for _, in := range preds[name] {
			predFinish := result.Timings[in.From].EarliestFinish
			if predFinish > es {
				es = predFinish
			}
			if predFinish+in.Duration > ef {
				ef = predFinish + in.Duration
			}
		}
		rec.EarliestStart = es
		rec.EarliestFinish = ef
	}
}

// applyEssentials raises earliest starts to honor declared essential
// constraints, re-applying the forward pass until a fixed point. The values
// are monotonically non-decreasing and bounded on a finite DAG, so the
// iteration terminates.
func (s *Solver) applyEssentials(order []string, preds map[string][]domain.Edge, result *Result) {
	if len(s.essentials) == 0 {
		return
	}

	for changed := true; changed; {
		changed = false
		for _, name := range order {
			rec := result.Timings[name]
			es, ef := rec.EarliestStart, rec.EarliestFinish
			for _, in := range preds[name] {
				predFinish := result.Timings[in.From].EarliestFinish
				if predFinish > es {
					es = predFinish
				}
				if predFinish+in.Duration > ef {
					ef = predFinish + in.Duration
				}
			}
			for _, r := range s.essentials[name] {
				reqFinish := result.Timings[r].EarliestFinish
				if reqFinish > es {
					es = reqFinish
				}
				if reqFinish > ef {
					ef = reqFinish
				}
			}
			if es > rec.EarliestStart || ef > rec.EarliestFinish {
				rec.EarliestStart = es
				rec.EarliestFinish = ef
				changed = true
			}
		}
	}
}

// backwardPass computes latest finish and start in reverse topological order.
// Latest start is derived from slack so that slack == latest start − earliest
// start and slack == latest finish − earliest finish agree on every record.
func (s *Solver) backwardPass(order []string, result *Result) {
	projectEnd := result.Timings[result.End].EarliestFinish

	for i := len(order) - 1; i >= 0; i-- {
		name := order[i]
		rec := result.Timings[name]

		edges, _ := s.net.SuccessorsOf(name)
		if len(edges) == 0 || name == result.End {
			rec.LatestFinish = projectEnd
		} else {
			lf := 0.0
			first := true
			for _, e := range edges {
				bound := result.Timings[e.To].LatestFinish - e.Duration
				if first || bound < lf {
					lf = bound
					first = false
				}
			}
			rec.LatestFinish = lf
		}

		rec.Slack = rec.LatestFinish - rec.EarliestFinish
		rec.LatestStart = rec.EarliestStart + rec.Slack
		rec.Critical = rec.Slack == 0
	}
}

// selectCriticalPath picks the maximum-duration path. Ties keep the first
// path in enumeration order, which is stable depth-first with successors in
// stored order.
func (s *Solver) selectCriticalPath(paths [][]string) []string {
	var best []string
	bestDuration := -1.0
	for _, p := range paths {
		d, err := s.net.PathDuration(p)
		if err != nil {
			continue
		}
		if d > bestDuration {
			bestDuration = d
			best = p
		}
	}
	return best
}
