package network

import (
	"reflect"
	"testing"

	"github.com/planline/planline/internal/domain"
)

// cyclicFixture reproduces the network {A:[B5,D6], B:[C3], C:[A1], D:[C6]},
// which contains the two simple cycles A->B->C->A and A->D->C->A.
func cyclicFixture(t *testing.T) *Network {
	t.Helper()
	n, err := FromMap(map[string][]Edge{
		"A": {{To: "B", Duration: 5}, {To: "D", Duration: 6}},
		"B": {{To: "C", Duration: 3}},
		"C": {{To: "A", Duration: 1}},
		"D": {{To: "C", Duration: 6}},
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	return n
}

func TestFindAllCycles(t *testing.T) {
	n := cyclicFixture(t)

	got := n.FindAllCycles()
	want := [][]string{
		{"A", "B", "C", "A"},
		{"A", "D", "C", "A"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAllCycles() = %v, want %v", got, want)
	}
}

func TestFindAllCycles_EmptyOnAcyclic(t *testing.T) {
	n, err := FromMap(map[string][]Edge{
		"A": {{To: "B", Duration: 1}},
		"B": {{To: "C", Duration: 1}},
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}

	if cycles := n.FindAllCycles(); len(cycles) != 0 {
		t.Errorf("FindAllCycles() = %v, want empty", cycles)
	}
}

func TestFindIsolated(t *testing.T) {
	n, err := FromMap(map[string][]Edge{
		"A":      {{To: "B", Duration: 1}},
		"B":      {},
		"lonely": {},
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}

	want := []string{"lonely"}
	if got := n.FindIsolated(); !reflect.DeepEqual(got, want) {
		t.Errorf("FindIsolated() = %v, want %v", got, want)
	}
}

func TestFindIsolated_EmptyWhenFullyConnected(t *testing.T) {
	n, err := FromMap(map[string][]Edge{
		"start": {{To: "A", Duration: 2}},
		"A":     {{To: "end", Duration: 3}},
		"end":   {},
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}

	if isolated := n.FindIsolated(); len(isolated) != 0 {
		t.Errorf("FindIsolated() = %v, want empty", isolated)
	}
}

func TestValidate_CyclesAreFatal(t *testing.T) {
	n := cyclicFixture(t)

	_, err := n.Validate()
	if err == nil {
		t.Fatal("Validate() should fail on a cyclic network")
	}
	domainErr, ok := err.(*domain.DomainError)
	if !ok || domainErr.Code != domain.ErrCodeCyclicNetwork {
		t.Errorf("expected CYCLIC_NETWORK error, got %v", err)
	}
	cycles, ok := domainErr.Context["cycles"].([]string)
	if !ok || len(cycles) != 2 {
		t.Errorf("error should carry the offending cycles, got %v", domainErr.Context["cycles"])
	}
}

func TestValidate_IsolatedIsWarningOnly(t *testing.T) {
	n, err := FromMap(map[string][]Edge{
		"A":      {{To: "B", Duration: 1}},
		"lonely": {},
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}

	warning, err := n.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v, isolated activities must not be fatal", err)
	}
	if warning == nil {
		t.Fatal("Validate() should report an isolated-activity warning")
	}
	if !reflect.DeepEqual(warning.Activities, []string{"lonely"}) {
		t.Errorf("warning activities = %v, want [lonely]", warning.Activities)
	}

	// Pruning is the caller's decision: validate must not mutate the network.
	if !n.Has("lonely") {
		t.Error("Validate() must not auto-prune isolated activities")
	}
}

func TestValidate_CleanNetwork(t *testing.T) {
	n, err := FromMap(map[string][]Edge{
		"start": {{To: "end", Duration: 4}},
		"end":   {},
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}

	warning, err := n.Validate()
	if err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if warning != nil {
		t.Errorf("Validate() warning = %v, want nil", warning)
	}
}

// Validate and FindAllCycles must agree: no cycles if and only if validation
// passes.
func TestValidate_AgreesWithFindAllCycles(t *testing.T) {
	tests := []struct {
		name string
		m    map[string][]Edge
	}{
		{"acyclic diamond", map[string][]Edge{
			"s": {{To: "a", Duration: 1}, {To: "b", Duration: 2}},
			"a": {{To: "t", Duration: 1}},
			"b": {{To: "t", Duration: 1}},
		}},
		{"two-node cycle", map[string][]Edge{
			"a": {{To: "b", Duration: 1}},
			"b": {{To: "a", Duration: 1}},
		}},
		{"self-contained triangle", map[string][]Edge{
			"a": {{To: "b", Duration: 1}},
			"b": {{To: "c", Duration: 1}},
			"c": {{To: "a", Duration: 1}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := FromMap(tt.m)
			if err != nil {
				t.Fatalf("FromMap() error = %v", err)
			}
			cycles := n.FindAllCycles()
			_, err = n.Validate()
			if (len(cycles) == 0) != (err == nil) {
				t.Errorf("FindAllCycles() found %d cycles but Validate() error = %v", len(cycles), err)
			}
		})
	}
}
