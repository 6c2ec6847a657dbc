// Package shunt plans short locomotive operation sequences on a branching
// siding yard.
//
// What
//
//   - State models the puzzle configuration: loco node, attached cars in
//     coupling order, and the resting node of every unattached car. States
//     are immutable values; transitions copy.
//   - A Planner binds a layout.Graph, its distance.Table, and a GoalSpec,
//     and exposes:
//   - Solve: A*-style best-first search returning an ordered plan of
//     (action, resulting state) steps, or one of two distinct failure
//     outcomes — ErrUnsolvable (state space exhausted) and
//     ErrBudgetExhausted (step budget hit, solvability unknown).
//   - Diagnose: the stateless per-car lower-bound distance report.
//   - Actions are move (one transition per permitted neighbor), couple, and
//     decouple. Coupling attaches every resting car at the loco's node and
//     decoupling releases the whole attached sequence; partial coupling is
//     not modeled.
//
// Why
//
//	Given a static topology and a car placement/goal specification, produce
//	an executable move plan or report that none exists within a search
//	budget. The heuristic deliberately ignores occupancy and coupling cost:
//	each per-car term is a true lower bound on that car's remaining work,
//	though the sum can overcount moves shared by cars travelling together,
//	so returned plans are short but not guaranteed minimal.
//
// Determinism
//
//	Neighbor order is sorted (layout), coupling discovery order is sorted by
//	car ID, canonical keys sort both the attached set and the resting
//	mapping, and frontier ties break by insertion order. Identical inputs
//	therefore produce identical plans.
//
// Concurrency
//
//	A Planner is read-only after construction; concurrent Solve runs with
//	distinct start states are safe. Each run owns its frontier and
//	bookkeeping maps. Cancellation goes through WithContext; progress goes
//	through WithObserver — the core performs no I/O.
//
// Errors
//
//   - ErrNilGraph / ErrNilTable        on construction.
//   - ErrEmptyGoalSet / ErrUnknownNode on goal validation.
//   - ErrUnknownNode / ErrMissingGoal  on start/restriction validation.
//   - ErrOptionViolation               for invalid options.
//   - ErrUnsolvable / ErrBudgetExhausted as distinct search outcomes.
package shunt
