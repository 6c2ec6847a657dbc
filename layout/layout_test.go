package layout_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Kantarellen1/TrainSystemNL/layout"
)

// baseline yard used across the layout tests.
var baseSpec = map[string]int{"A": 2, "B": 3, "C": 1, "D": 2, "E": 1}

// TestBuild_Errors verifies that invalid specifications are rejected.
func TestBuild_Errors(t *testing.T) {
	if _, err := layout.Build(nil); !errors.Is(err, layout.ErrEmptySpec) {
		t.Errorf("empty spec: want ErrEmptySpec, got %v", err)
	}
	if _, err := layout.Build(map[string]int{"A": 0}); !errors.Is(err, layout.ErrSidingLength) {
		t.Errorf("zero length: want ErrSidingLength, got %v", err)
	}
	if _, err := layout.Build(map[string]int{"A": 2, "B": -3}); !errors.Is(err, layout.ErrSidingLength) {
		t.Errorf("negative length: want ErrSidingLength, got %v", err)
	}
}

// TestBuild_LabelCollision rejects labels whose generated node IDs clash
// with the reserved through-line nodes or with another siding's nodes.
func TestBuild_LabelCollision(t *testing.T) {
	// "M" with length 3 generates M0, M1, M2; M1 and M2 are reserved.
	if _, err := layout.Build(map[string]int{"M": 3}); !errors.Is(err, layout.ErrLabelCollision) {
		t.Errorf(`{"M": 3}: want ErrLabelCollision, got %v`, err)
	}
	if _, err := layout.Build(map[string]int{"M": 2}); !errors.Is(err, layout.ErrLabelCollision) {
		t.Errorf(`{"M": 2}: want ErrLabelCollision, got %v`, err)
	}
	// "A" position 10 and "A1" position 0 both generate node A10.
	if _, err := layout.Build(map[string]int{"A": 11, "A1": 1}); !errors.Is(err, layout.ErrLabelCollision) {
		t.Errorf(`{"A": 11, "A1": 1}: want ErrLabelCollision, got %v`, err)
	}

	// Near misses stay legal: "M" of length 1 only generates M0, and a
	// "MAIN" siding generates MAIN0 onward.
	g, err := layout.Build(map[string]int{"M": 1, "MAIN": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// M0, MAIN0, MAIN, M1, M2
	if got, want := g.NodeCount(), 5; got != want {
		t.Errorf("NodeCount = %d; want %d", got, want)
	}
}

// TestBuild_TailAndHubDegrees checks the hub wiring invariants:
// every tail has exactly one edge to MAIN, and MAIN has #sidings+2 edges.
func TestBuild_TailAndHubDegrees(t *testing.T) {
	g, err := layout.Build(baseSpec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for label := range baseSpec {
		tail, ok := g.Tail(label)
		if !ok {
			t.Fatalf("Tail(%q): siding not found", label)
		}
		edgesToMain := 0
		for _, nbr := range g.Neighbors(tail) {
			if nbr == layout.Main {
				edgesToMain++
			}
		}
		if edgesToMain != 1 {
			t.Errorf("tail %s: %d edges to MAIN; want 1", tail, edgesToMain)
		}
	}

	if got, want := g.Degree(layout.Main), len(baseSpec)+2; got != want {
		t.Errorf("Degree(MAIN) = %d; want %d", got, want)
	}
}

// TestBuild_Symmetry verifies v ∈ adj(u) ⇔ u ∈ adj(v) over all nodes.
func TestBuild_Symmetry(t *testing.T) {
	g, err := layout.Build(baseSpec)
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range g.Nodes() {
		for _, v := range g.Neighbors(u) {
			found := false
			for _, back := range g.Neighbors(v) {
				if back == u {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("edge %s—%s not symmetric", u, v)
			}
		}
	}
}

// TestBuild_ChainShape checks the intra-siding chain of a length-3 siding.
func TestBuild_ChainShape(t *testing.T) {
	g, err := layout.Build(map[string]int{"B": 3})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.Neighbors("B0"), []string{"B1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(B0) = %v; want %v", got, want)
	}
	if got, want := g.Neighbors("B1"), []string{"B0", "B2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(B1) = %v; want %v", got, want)
	}
	if got, want := g.Neighbors("B2"), []string{"B1", "MAIN"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(B2) = %v; want %v", got, want)
	}
	// 3 siding nodes + MAIN + M1 + M2
	if got, want := g.NodeCount(), 6; got != want {
		t.Errorf("NodeCount = %d; want %d", got, want)
	}
}

// TestBuild_Deterministic ensures identical specs produce identical graphs.
func TestBuild_Deterministic(t *testing.T) {
	g1, err := layout.Build(baseSpec)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := layout.Build(baseSpec)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g1.Nodes(), g2.Nodes()) {
		t.Errorf("node sets differ: %v vs %v", g1.Nodes(), g2.Nodes())
	}
	for _, id := range g1.Nodes() {
		if !reflect.DeepEqual(g1.Neighbors(id), g2.Neighbors(id)) {
			t.Errorf("Neighbors(%s) differ: %v vs %v", id, g1.Neighbors(id), g2.Neighbors(id))
		}
	}
}

// TestGraph_UnknownNode exercises getters against an absent node.
func TestGraph_UnknownNode(t *testing.T) {
	g, err := layout.Build(map[string]int{"A": 1})
	if err != nil {
		t.Fatal(err)
	}
	if g.HasNode("Z9") {
		t.Error("HasNode(Z9) = true; want false")
	}
	if nbrs := g.Neighbors("Z9"); nbrs != nil {
		t.Errorf("Neighbors(Z9) = %v; want nil", nbrs)
	}
	if d := g.Degree("Z9"); d != 0 {
		t.Errorf("Degree(Z9) = %d; want 0", d)
	}
}
