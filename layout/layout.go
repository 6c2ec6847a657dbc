package layout

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Reserved node identifiers shared by every yard.
const (
	// Main is the hub node joining all siding tails to the through line.
	Main = "MAIN"

	// M1 is the first entry/exit node of the through line.
	M1 = "M1"

	// M2 is the second entry/exit node of the through line.
	M2 = "M2"
)

// Sentinel errors for layout construction.
var (
	// ErrSidingLength is returned when a siding length is below 1.
	ErrSidingLength = errors.New("layout: siding length must be at least 1")

	// ErrEmptySpec is returned when the specification contains no sidings.
	ErrEmptySpec = errors.New("layout: specification must name at least one siding")

	// ErrLabelCollision is returned when a siding label would generate a node
	// ID that clashes with a reserved node or with another siding's node.
	ErrLabelCollision = errors.New("layout: siding label collides with an existing node")
)

// Graph is the immutable adjacency view of a yard.
//
// It is safe for concurrent use: no method mutates state after Build returns.
type Graph struct {
	// adjacency[node] is the sorted list of neighbor node IDs.
	adjacency map[string][]string

	// sidings preserves the validated input specification.
	sidings map[string]int
}

// Build constructs the yard graph from a siding specification.
// Labels may be any distinct non-empty tokens; single characters read best.
// Returns ErrEmptySpec for an empty specification, ErrSidingLength (wrapped
// with the offending label) for any length below 1, and ErrLabelCollision
// when a generated node ID would clash with MAIN, M1, M2, or a node of
// another siding (a label like "M" generates M1 and M2 itself).
func Build(sidings map[string]int) (*Graph, error) {
	if len(sidings) == 0 {
		return nil, ErrEmptySpec
	}

	// Validate before touching any adjacency so failures leave nothing behind.
	labels := make([]string, 0, len(sidings))
	for label, length := range sidings {
		if length < 1 {
			return nil, fmt.Errorf("%w: siding %q has length %d", ErrSidingLength, label, length)
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)

	seen := map[string]bool{Main: true, M1: true, M2: true}
	for _, label := range labels {
		for i := 0; i < sidings[label]; i++ {
			id := NodeID(label, i)
			if seen[id] {
				return nil, fmt.Errorf("%w: siding %q generates node %s", ErrLabelCollision, label, id)
			}
			seen[id] = true
		}
	}

	g := &Graph{
		adjacency: make(map[string][]string),
		sidings:   make(map[string]int, len(sidings)),
	}
	for _, label := range labels {
		g.sidings[label] = sidings[label]
	}

	// Chain each siding and hook its tail onto MAIN.
	for _, label := range labels {
		length := sidings[label]
		for i := 0; i < length-1; i++ {
			g.link(NodeID(label, i), NodeID(label, i+1))
		}
		g.link(NodeID(label, length-1), Main)
	}

	// The through line: MAIN sits between both entry/exit nodes.
	g.link(Main, M1)
	g.link(Main, M2)

	for id := range g.adjacency {
		sort.Strings(g.adjacency[id])
	}

	return g, nil
}

// NodeID formats the node identifier for position idx (zero-based) on the
// siding with the given label.
func NodeID(label string, idx int) string {
	return label + strconv.Itoa(idx)
}

// link records the undirected edge u—v in both adjacency lists.
func (g *Graph) link(u, v string) {
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
}

// HasNode reports whether id names a node of the yard.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Neighbors returns the sorted neighbor IDs of id, or nil if id is unknown.
// The returned slice is a copy; callers may keep or modify it freely.
func (g *Graph) Neighbors(id string) []string {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]string, len(adj))
	copy(out, adj)

	return out
}

// Degree returns the number of edges incident to id, or 0 if id is unknown.
func (g *Graph) Degree(id string) int {
	return len(g.adjacency[id])
}

// Nodes returns all node IDs in sorted order.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// NodeCount returns the number of nodes in the yard.
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// Sidings returns the validated siding specification the graph was built
// from, as a defensive copy.
func (g *Graph) Sidings() map[string]int {
	out := make(map[string]int, len(g.sidings))
	for label, length := range g.sidings {
		out[label] = length
	}

	return out
}

// Tail returns the node ID of the siding position adjacent to MAIN for the
// given label, and whether the label names a siding.
func (g *Graph) Tail(label string) (string, bool) {
	length, ok := g.sidings[label]
	if !ok {
		return "", false
	}

	return NodeID(label, length-1), true
}
