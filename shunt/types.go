// Package shunt provides option and error definitions for the shunting
// planner; the solver itself lives in solve.go.
package shunt

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for planner construction and solving.
var (
	// ErrNilGraph is returned if a nil layout graph is passed.
	ErrNilGraph = errors.New("shunt: graph is nil")

	// ErrNilTable is returned if a nil distance table is passed.
	ErrNilTable = errors.New("shunt: distance table is nil")

	// ErrUnknownNode is returned when a start placement, goal set, or route
	// restriction references a node absent from the graph.
	ErrUnknownNode = errors.New("shunt: node not in graph")

	// ErrMissingGoal is returned when a car present in the start placement
	// has no GoalSpec entry. Such a car can never satisfy the goal test.
	ErrMissingGoal = errors.New("shunt: car has no goal entry")

	// ErrEmptyGoalSet is returned when a GoalSpec entry holds no nodes.
	ErrEmptyGoalSet = errors.New("shunt: goal set is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("shunt: invalid option supplied")

	// ErrUnsolvable is returned when the frontier empties without reaching a
	// goal state: the reachable state space was fully explored.
	ErrUnsolvable = errors.New("shunt: no plan exists")

	// ErrBudgetExhausted is returned when the step budget is reached with a
	// non-empty frontier: solvability is unknown. Deliberately distinct from
	// ErrUnsolvable.
	ErrBudgetExhausted = errors.New("shunt: step budget exhausted")

	// ErrBadKey is returned by DecodeKey for a malformed canonical key.
	ErrBadKey = errors.New("shunt: malformed canonical key")
)

// GoalSpec maps a car ID to its non-empty set of acceptable goal nodes.
// Every car that can appear during a run must have an entry.
type GoalSpec map[string][]string

// ActionKind enumerates the three locomotive operations.
type ActionKind int

const (
	// Move relocates the loco (and anything attached) to an adjacent node.
	Move ActionKind = iota

	// Couple attaches every unattached car at the loco's node, as one action.
	Couple

	// Decouple releases every attached car onto the loco's node, as one action.
	Decouple
)

// Action is a single step of a plan. Dest is set for Move only.
type Action struct {
	Kind ActionKind
	Dest string
}

// String renders the action label used in transcripts and plans.
func (a Action) String() string {
	switch a.Kind {
	case Move:
		return "move " + a.Dest
	case Couple:
		return "couple"
	case Decouple:
		return "decouple"
	default:
		return fmt.Sprintf("action(%d)", int(a.Kind))
	}
}

// Step pairs an action with the state it produces.
type Step struct {
	Action Action
	State  State
}

// Result holds the outcome of a Solve run.
//
// Plan is non-nil only when the goal was reached; its length equals Cost.
// Expanded and Frontier are the final search statistics and are populated
// for every outcome, including ErrUnsolvable and ErrBudgetExhausted.
type Result struct {
	Plan     []Step
	Cost     int
	Expanded int
	Frontier int
}

// Progress is the snapshot handed to a solve observer.
type Progress struct {
	// Expanded is the number of frontier pops performed so far.
	Expanded int

	// Frontier is the current frontier size.
	Frontier int

	// G and H are the cost-so-far and heuristic of the entry just popped.
	G, H int
}

// Observer receives periodic Progress snapshots. The solver performs no
// output of its own; all reporting goes through this hook.
type Observer func(Progress)

// DefaultStepBudget bounds a Solve run when WithStepBudget is not supplied.
const DefaultStepBudget = 1_000_000

// defaultCadence is the observer invocation interval in frontier pops.
const defaultCadence = 1000

// Option configures a Solve run via functional arguments.
// Invalid values are recorded internally and surfaced as ErrOptionViolation
// when Solve is invoked.
type Option func(*Options)

// Options holds parameters for a single Solve run.
type Options struct {
	// Ctx allows cancellation and deadlines, checked once per iteration.
	Ctx context.Context

	// StepBudget is the maximum number of frontier pops before the run
	// reports ErrBudgetExhausted.
	StepBudget int

	// Restriction, when non-empty, is the set of nodes the loco may occupy.
	// Empty means unrestricted.
	Restriction map[string]bool

	// Observe, if non-nil, is invoked every Cadence pops.
	Observe Observer

	// Cadence is the observer interval in pops.
	Cadence int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// DefaultStepBudget, no restriction, no observer.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		StepBudget: DefaultStepBudget,
		Cadence:    defaultCadence,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepBudget bounds the run to n frontier pops.
//
//	n > 0: use n as the budget
//	n ≤ 0: invalid option → ErrOptionViolation
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: step budget must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.StepBudget = n
	}
}

// WithRouteRestriction limits the loco to the given nodes. An empty slice
// means unrestricted; node existence is validated before the search starts.
func WithRouteRestriction(nodes []string) Option {
	return func(o *Options) {
		if len(nodes) == 0 {
			o.Restriction = nil
			return
		}
		o.Restriction = make(map[string]bool, len(nodes))
		for _, id := range nodes {
			o.Restriction[id] = true
		}
	}
}

// WithObserver registers fn to receive a Progress snapshot every `every`
// frontier pops. every ≤ 0 is an ErrOptionViolation.
func WithObserver(fn Observer, every int) Option {
	return func(o *Options) {
		if every <= 0 {
			o.err = fmt.Errorf("%w: observer cadence must be positive (%d)", ErrOptionViolation, every)
			return
		}
		o.Observe = fn
		o.Cadence = every
	}
}
