package distance

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Kantarellen1/TrainSystemNL/layout"
)

// Unreachable is the sentinel hop count for node pairs with no connecting
// path. It is large enough that no real yard can produce it.
const Unreachable = int(math.MaxInt64)

// Sentinel errors for distance queries.
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("distance: graph is nil")

	// ErrNodeNotFound is returned when a queried node is absent from the graph.
	ErrNodeNotFound = errors.New("distance: node not found")

	// ErrNoPath is returned by Path when the destination is unreachable.
	ErrNoPath = errors.New("distance: no path between nodes")
)

// Table holds blocking-unaware shortest-path hop counts for every ordered
// node pair of one graph. Read-only after NewTable.
type Table struct {
	dist map[string]map[string]int
}

// queueItem pairs a node ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// NewTable computes the all-pairs table for g by running one breadth-first
// traversal per node. Returns ErrNilGraph for a nil graph.
func NewTable(g *layout.Graph) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	nodes := g.Nodes()
	t := &Table{dist: make(map[string]map[string]int, len(nodes))}
	for _, src := range nodes {
		t.dist[src] = bfsDepths(g, src)
	}

	return t, nil
}

// bfsDepths returns the hop count from src to every reachable node of g.
func bfsDepths(g *layout.Graph, src string) map[string]int {
	depths := map[string]int{src: 0}
	queue := []queueItem{{id: src, depth: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		for _, nbr := range g.Neighbors(item.id) {
			if _, seen := depths[nbr]; seen {
				continue
			}
			depths[nbr] = item.depth + 1
			queue = append(queue, queueItem{id: nbr, depth: item.depth + 1})
		}
	}

	return depths
}

// Between returns the hop count from one node to another, or Unreachable if
// no path exists or either node is unknown.
func (t *Table) Between(from, to string) int {
	row, ok := t.dist[from]
	if !ok {
		return Unreachable
	}
	d, ok := row[to]
	if !ok {
		return Unreachable
	}

	return d
}

// MinTo returns the smallest hop count from the given node to any node in
// goals, or Unreachable when none of them can be reached.
func (t *Table) MinTo(from string, goals []string) int {
	best := Unreachable
	for _, goal := range goals {
		if d := t.Between(from, goal); d < best {
			best = d
		}
	}

	return best
}

// Unreachables returns, in sorted order, every node of the table that cannot
// be reached from the given node. A fully connected yard yields an empty
// slice. Unknown from-nodes report every node as unreachable.
func (t *Table) Unreachables(from string) []string {
	row := t.dist[from]
	out := make([]string, 0)
	for id := range t.dist {
		if _, ok := row[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Path returns one shortest node sequence from one node to another over g,
// endpoints included. Returns ErrNilGraph, ErrNodeNotFound for unknown
// endpoints, or ErrNoPath when the nodes are disconnected.
func Path(g *layout.Graph, from, to string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(from) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	parent := map[string]string{}
	seen := map[string]bool{from: true}
	queue := []queueItem{{id: from}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.id == to {
			break
		}
		for _, nbr := range g.Neighbors(item.id) {
			if seen[nbr] {
				continue
			}
			seen[nbr] = true
			parent[nbr] = item.id
			queue = append(queue, queueItem{id: nbr})
		}
	}
	if !seen[to] {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, from, to)
	}

	// Build reversed path, then flip it start → dest.
	path := []string{}
	for cur := to; ; {
		path = append(path, cur)
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
