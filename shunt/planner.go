package shunt

import (
	"fmt"
	"sort"

	"github.com/Kantarellen1/TrainSystemNL/distance"
	"github.com/Kantarellen1/TrainSystemNL/layout"
)

// Planner binds a yard graph, its distance table, and a goal specification.
// One Planner may serve any number of concurrent Solve runs: graph, table,
// and goals are read-only after NewPlanner, and every run owns its frontier
// and bookkeeping maps.
type Planner struct {
	graph *layout.Graph
	table *distance.Table
	goals GoalSpec
}

// NewPlanner validates the goal specification against the graph and returns
// a ready planner.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. table must be non-nil (ErrNilTable).
//  3. Every goal set must be non-empty (ErrEmptyGoalSet).
//  4. Every goal node must exist in the graph (ErrUnknownNode).
func NewPlanner(g *layout.Graph, table *distance.Table, goals GoalSpec) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if table == nil {
		return nil, ErrNilTable
	}

	// Deterministic validation order keeps error messages stable.
	ids := make([]string, 0, len(goals))
	for id := range goals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	copied := make(GoalSpec, len(goals))
	for _, id := range ids {
		nodes := goals[id]
		if len(nodes) == 0 {
			return nil, fmt.Errorf("%w: car %q", ErrEmptyGoalSet, id)
		}
		set := make([]string, len(nodes))
		copy(set, nodes)
		for _, node := range set {
			if !g.HasNode(node) {
				return nil, fmt.Errorf("%w: goal %q of car %q", ErrUnknownNode, node, id)
			}
		}
		copied[id] = set
	}

	return &Planner{graph: g, table: table, goals: copied}, nil
}

// Goals returns the car IDs covered by the goal specification, sorted.
func (p *Planner) Goals() []string {
	ids := make([]string, 0, len(p.goals))
	for id := range p.goals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Diagnose reports the minimum blocking-unaware hop count from the node at
// to any goal node of car id, without running the solver. Returns
// distance.Unreachable when no goal can be reached, ErrMissingGoal for an
// unknown car, and ErrUnknownNode for an unknown node.
func (p *Planner) Diagnose(id, at string) (int, error) {
	goals, ok := p.goals[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingGoal, id)
	}
	if !p.graph.HasNode(at) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, at)
	}

	return p.table.MinTo(at, goals), nil
}

// validateRun rejects a start state or restriction that references unknown
// nodes, and any car lacking a goal entry. All of this runs before the
// search loop so no search step is spent on a bad configuration.
func (p *Planner) validateRun(start State, restriction map[string]bool) error {
	if !p.graph.HasNode(start.Loco) {
		return fmt.Errorf("%w: loco start %q", ErrUnknownNode, start.Loco)
	}
	for _, id := range start.CarIDs() {
		if _, ok := p.goals[id]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingGoal, id)
		}
		if node, resting := start.Cars[id]; resting && !p.graph.HasNode(node) {
			return fmt.Errorf("%w: car %q placed at %q", ErrUnknownNode, id, node)
		}
	}

	nodes := make([]string, 0, len(restriction))
	for node := range restriction {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	for _, node := range nodes {
		if !p.graph.HasNode(node) {
			return fmt.Errorf("%w: route restriction %q", ErrUnknownNode, node)
		}
	}

	return nil
}
