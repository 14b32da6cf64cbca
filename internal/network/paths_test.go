package network

import (
	"reflect"
	"testing"

	"github.com/planline/planline/internal/domain"
)

// referenceNetwork is the regression network from the project scheduling
// exercise: maximum-duration path is start->C->E->end with total 24.
func referenceNetwork(t *testing.T) *Network {
	t.Helper()
	n, err := FromMap(map[string][]Edge{
		"start": {{To: "A", Duration: 5}, {To: "B", Duration: 7}, {To: "C", Duration: 6}},
		"A":     {{To: "D", Duration: 3}, {To: "E", Duration: 9}},
		"B":     {{To: "D", Duration: 1}, {To: "F", Duration: 4}},
		"C":     {{To: "F", Duration: 6}, {To: "E", Duration: 13}},
		"D":     {{To: "end", Duration: 8}},
		"E":     {{To: "end", Duration: 5}},
		"F":     {{To: "end", Duration: 11}},
		"end":   {},
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	return n
}

func TestFindAllPaths(t *testing.T) {
	n := referenceNetwork(t)

	paths, err := n.FindAllPaths("start", "end")
	if err != nil {
		t.Fatalf("FindAllPaths() error = %v", err)
	}

	// Depth-first with successors in stored order: A branch, B branch, C branch.
	want := [][]string{
		{"start", "A", "D", "end"},
		{"start", "A", "E", "end"},
		{"start", "B", "D", "end"},
		{"start", "B", "F", "end"},
		{"start", "C", "F", "end"},
		{"start", "C", "E", "end"},
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("FindAllPaths() = %v, want %v", paths, want)
	}
}

func TestFindAllPaths_UnknownStart(t *testing.T) {
	n := referenceNetwork(t)

	_, err := n.FindAllPaths("ghost", "end")
	assertErrorCode(t, err, domain.ErrCodeUnknownActivity)
}

func TestFindAllPaths_UnreachableEndIsEmpty(t *testing.T) {
	n := referenceNetwork(t)
	if err := n.AddActivity("island", nil); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	paths, err := n.FindAllPaths("start", "island")
	if err != nil {
		t.Fatalf("FindAllPaths() error = %v, unreachable end must not be an error", err)
	}
	if len(paths) != 0 {
		t.Errorf("FindAllPaths() = %v, want empty", paths)
	}
}

func TestFindAllPaths_NoSharedStateBetweenCalls(t *testing.T) {
	n := referenceNetwork(t)

	first, err := n.FindAllPaths("start", "end")
	if err != nil {
		t.Fatalf("FindAllPaths() error = %v", err)
	}
	second, err := n.FindAllPaths("start", "end")
	if err != nil {
		t.Fatalf("FindAllPaths() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated enumeration differs: %v vs %v", first, second)
	}
}

func TestPathDuration(t *testing.T) {
	n := referenceNetwork(t)

	tests := []struct {
		name string
		path []string
		want float64
	}{
		{"via A and D", []string{"start", "A", "D", "end"}, 16},
		{"via A and E", []string{"start", "A", "E", "end"}, 19},
		{"via B and F", []string{"start", "B", "F", "end"}, 22},
		{"via C and E (critical)", []string{"start", "C", "E", "end"}, 24},
		{"via C and F", []string{"start", "C", "F", "end"}, 23},
		{"single activity", []string{"start"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.PathDuration(tt.path)
			if err != nil {
				t.Fatalf("PathDuration() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PathDuration(%v) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathDuration_DisconnectedPair(t *testing.T) {
	n := referenceNetwork(t)

	_, err := n.PathDuration([]string{"start", "end"})
	assertErrorCode(t, err, domain.ErrCodeEdgeNotFound)
}
