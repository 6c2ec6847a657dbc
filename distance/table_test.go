package distance_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Kantarellen1/TrainSystemNL/distance"
	"github.com/Kantarellen1/TrainSystemNL/layout"
)

func buildYard(t *testing.T, spec map[string]int) *layout.Graph {
	t.Helper()
	g, err := layout.Build(spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

// TestNewTable_Errors verifies nil-graph rejection.
func TestNewTable_Errors(t *testing.T) {
	if _, err := distance.NewTable(nil); !errors.Is(err, distance.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
}

// TestTable_KnownDistances checks hop counts on a two-siding yard:
// A0—A1—MAIN and B0—MAIN, with M1/M2 off MAIN.
func TestTable_KnownDistances(t *testing.T) {
	g := buildYard(t, map[string]int{"A": 2, "B": 1})
	tbl, err := distance.NewTable(g)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		from, to string
		want     int
	}{
		{"A0", "A0", 0},
		{"A0", "A1", 1},
		{"A0", "MAIN", 2},
		{"A0", "B0", 3},
		{"A0", "M1", 3},
		{"B0", "M2", 2},
		{"MAIN", "M1", 1},
		{"M1", "M2", 2},
	}
	for _, c := range cases {
		if got := tbl.Between(c.from, c.to); got != c.want {
			t.Errorf("Between(%s, %s) = %d; want %d", c.from, c.to, got, c.want)
		}
		// symmetry of an undirected yard
		if got := tbl.Between(c.to, c.from); got != c.want {
			t.Errorf("Between(%s, %s) = %d; want %d", c.to, c.from, got, c.want)
		}
	}
}

// TestTable_Unreachable covers the sentinel for unknown nodes.
func TestTable_Unreachable(t *testing.T) {
	g := buildYard(t, map[string]int{"A": 1})
	tbl, err := distance.NewTable(g)
	if err != nil {
		t.Fatal(err)
	}
	if got := tbl.Between("A0", "Z9"); got != distance.Unreachable {
		t.Errorf("Between to unknown node = %d; want Unreachable", got)
	}
	if got := tbl.Between("Z9", "A0"); got != distance.Unreachable {
		t.Errorf("Between from unknown node = %d; want Unreachable", got)
	}
	if got := tbl.Unreachables("A0"); len(got) != 0 {
		t.Errorf("Unreachables(A0) = %v; want empty", got)
	}
}

// TestTable_MinTo exercises the stateless per-car diagnostic.
func TestTable_MinTo(t *testing.T) {
	g := buildYard(t, map[string]int{"A": 2, "B": 3})
	tbl, err := distance.NewTable(g)
	if err != nil {
		t.Fatal(err)
	}
	// A0 → {B2, M1}: B2 is 3 hops (A0,A1,MAIN,B2), M1 is 3 as well.
	if got := tbl.MinTo("A0", []string{"B2", "M1"}); got != 3 {
		t.Errorf("MinTo = %d; want 3", got)
	}
	// Closer goal wins.
	if got := tbl.MinTo("A0", []string{"A1", "B0"}); got != 1 {
		t.Errorf("MinTo = %d; want 1", got)
	}
	if got := tbl.MinTo("A0", []string{"Z9"}); got != distance.Unreachable {
		t.Errorf("MinTo to unknown goal = %d; want Unreachable", got)
	}
	if got := tbl.MinTo("A0", nil); got != distance.Unreachable {
		t.Errorf("MinTo with no goals = %d; want Unreachable", got)
	}
}

// TestPath_Reconstruction checks endpoints, order, and length of one
// shortest path.
func TestPath_Reconstruction(t *testing.T) {
	g := buildYard(t, map[string]int{"A": 2, "B": 1})
	path, err := distance.Path(g, "A0", "B0")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A0", "A1", "MAIN", "B0"}; !reflect.DeepEqual(path, want) {
		t.Errorf("Path = %v; want %v", path, want)
	}

	// Trivial start → start path.
	path, err = distance.Path(g, "M1", "M1")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"M1"}; !reflect.DeepEqual(path, want) {
		t.Errorf("trivial Path = %v; want %v", path, want)
	}
}

// TestPath_Errors covers nil graph, unknown endpoints.
func TestPath_Errors(t *testing.T) {
	if _, err := distance.Path(nil, "A0", "B0"); !errors.Is(err, distance.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	g := buildYard(t, map[string]int{"A": 1})
	if _, err := distance.Path(g, "Z9", "A0"); !errors.Is(err, distance.ErrNodeNotFound) {
		t.Errorf("unknown from: want ErrNodeNotFound, got %v", err)
	}
	if _, err := distance.Path(g, "A0", "Z9"); !errors.Is(err, distance.ErrNodeNotFound) {
		t.Errorf("unknown to: want ErrNodeNotFound, got %v", err)
	}
}

// TestTable_ConsistentWithPath cross-checks the table against Path lengths.
func TestTable_ConsistentWithPath(t *testing.T) {
	g := buildYard(t, map[string]int{"A": 2, "B": 3, "C": 1})
	tbl, err := distance.NewTable(g)
	if err != nil {
		t.Fatal(err)
	}
	nodes := g.Nodes()
	for _, from := range nodes {
		for _, to := range nodes {
			path, err := distance.Path(g, from, to)
			if err != nil {
				t.Fatalf("Path(%s, %s): %v", from, to, err)
			}
			if got, want := tbl.Between(from, to), len(path)-1; got != want {
				t.Errorf("Between(%s, %s) = %d; path length %d", from, to, got, want)
			}
		}
	}
}
