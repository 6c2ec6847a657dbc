package shunt

import (
	"errors"
	"fmt"
)

// ErrIllegalAction is returned by Apply when an action is not legal in the
// given state.
var ErrIllegalAction = errors.New("shunt: illegal action")

// Apply replays a single action against s and returns the successor,
// enforcing the same legality rules the generator uses: a move must target
// a neighbor of the loco's node, a couple requires at least one resting car
// there, and a decouple requires a non-empty attached sequence.
//
// Route restrictions are a solve-time concern and are not enforced here;
// Apply answers "is this physically executable", which is what plan replay
// and rendering need.
func (p *Planner) Apply(s State, a Action) (State, error) {
	switch a.Kind {
	case Move:
		for _, nbr := range p.graph.Neighbors(s.Loco) {
			if nbr == a.Dest {
				return s.move(a.Dest), nil
			}
		}
		return State{}, fmt.Errorf("%w: %s is not adjacent to %s", ErrIllegalAction, a.Dest, s.Loco)
	case Couple:
		here := s.carsAt(s.Loco)
		if len(here) == 0 {
			return State{}, fmt.Errorf("%w: no cars to couple at %s", ErrIllegalAction, s.Loco)
		}
		return s.couple(here), nil
	case Decouple:
		if len(s.Attached) == 0 {
			return State{}, fmt.Errorf("%w: nothing attached to decouple", ErrIllegalAction)
		}
		return s.decouple(s.Attached), nil
	default:
		return State{}, fmt.Errorf("%w: unknown action kind %d", ErrIllegalAction, int(a.Kind))
	}
}

// transition is one legal (action, successor) pair produced by expansion.
// Every transition has unit cost.
type transition struct {
	act  Action
	next State
}

// transitions enumerates the legal successors of s, in deterministic order:
// moves along sorted neighbors first, then couple, then decouple.
//
// Couple and decouple are all-or-nothing per the puzzle rules: coupling
// takes every resting car at the loco's node (sorted car-ID order), and
// decoupling releases the entire attached sequence. Each action kind
// contributes at most one transition, so the branching factor is bounded by
// degree + 2.
func (p *Planner) transitions(s State, restriction map[string]bool) []transition {
	out := make([]transition, 0, p.graph.Degree(s.Loco)+2)

	for _, nbr := range p.graph.Neighbors(s.Loco) {
		if len(restriction) > 0 && !restriction[nbr] {
			continue
		}
		out = append(out, transition{
			act:  Action{Kind: Move, Dest: nbr},
			next: s.move(nbr),
		})
	}

	if here := s.carsAt(s.Loco); len(here) > 0 {
		out = append(out, transition{
			act:  Action{Kind: Couple},
			next: s.couple(here),
		})
	}

	if len(s.Attached) > 0 {
		out = append(out, transition{
			act:  Action{Kind: Decouple},
			next: s.decouple(s.Attached),
		})
	}

	return out
}
