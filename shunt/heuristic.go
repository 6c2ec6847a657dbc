package shunt

import "github.com/Kantarellen1/TrainSystemNL/distance"

// heuristic estimates the remaining actions for s.
//
// Each car contributes the blocking-unaware hop count from its effective
// location (its resting node, or the loco's node while attached) to the
// nearest of its goal nodes. The relaxation ignores coupling and decoupling
// cost entirely, and a car whose goals are all unreachable contributes 0
// rather than infinity; an unreachable goal therefore reads as "already
// done" here and surfaces as ErrUnsolvable from the search itself.
//
// Each per-car term is a true lower bound for that car alone, but the sum
// can overcount moves shared by attached cars travelling together. The
// estimate is exactly 0 for any state satisfying the goal test.
func (p *Planner) heuristic(s State) int {
	total := 0
	for _, id := range s.Attached {
		total += p.carEstimate(id, s.Loco)
	}
	for id, at := range s.Cars {
		total += p.carEstimate(id, at)
	}

	return total
}

// carEstimate returns the per-car term of the heuristic. Cars without a
// goal entry contribute 0; validation rejects them before any search run,
// so this only matters for hand-built states.
func (p *Planner) carEstimate(id, effective string) int {
	goals, ok := p.goals[id]
	if !ok {
		return 0
	}
	d := p.table.MinTo(effective, goals)
	if d == distance.Unreachable {
		return 0
	}

	return d
}
