package shunt

import (
	"container/heap"
)

// Solve searches for a short action sequence that brings every car of start
// onto one of its goal nodes with nothing attached.
//
// Returns:
//
//   - Result with a Plan of (action, resulting state) steps on success;
//     len(Plan) == Result.Cost, and a start state already satisfying the
//     goal yields an empty plan.
//   - ErrUnsolvable when the frontier empties first: the reachable state
//     space holds no goal state.
//   - ErrBudgetExhausted when the step budget is hit with work remaining:
//     solvability is unknown. Never conflated with ErrUnsolvable.
//   - A pre-search configuration error (ErrUnknownNode, ErrMissingGoal,
//     ErrOptionViolation) before any frontier pop, or the context error on
//     cancellation.
//
// Options customization:
//
//   - WithStepBudget(n): bound the run to n frontier pops.
//   - WithRouteRestriction(nodes): limit the loco to the given nodes.
//   - WithObserver(fn, every): periodic Progress snapshots; the solver
//     itself performs no I/O.
//   - WithContext(ctx): cancellation, checked once per iteration.
//
// Complexity: O(B log B) time for B frontier pushes within the budget;
// memory is O(B) for the frontier plus the bookkeeping maps.
func (p *Planner) Solve(start State, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if err := p.validateRun(start, o.Restriction); err != nil {
		return Result{}, err
	}

	r := &run{
		planner:   p,
		opts:      o,
		bestG:     make(map[string]int),
		parent:    make(map[string]string),
		parentAct: make(map[string]Action),
		states:    make(map[string]State),
	}
	heap.Init(&r.frontier)
	r.push(start, 0)

	return r.loop()
}

// run owns the mutable bookkeeping of a single Solve invocation.
type run struct {
	planner *Planner
	opts    Options

	frontier  frontier
	bestG     map[string]int    // canonical key → best known g
	parent    map[string]string // canonical key → predecessor key
	parentAct map[string]Action // canonical key → action from predecessor
	states    map[string]State  // canonical key → decoded state
	popped    int               // frontier pops so far
	seq       int               // insertion counter for deterministic ties
}

// push records s at cost g (if it improves on the best known) and enqueues it.
func (r *run) push(s State, g int) {
	key := EncodeKey(s)
	if old, seen := r.bestG[key]; seen && g >= old {
		return
	}
	r.bestG[key] = g
	r.states[key] = s
	h := r.planner.heuristic(s)
	r.seq++
	heap.Push(&r.frontier, &frontierItem{key: key, g: g, h: h, f: g + h, seq: r.seq})
}

// loop pops lowest-f entries until a goal state surfaces, the frontier
// empties (ErrUnsolvable), the budget runs out (ErrBudgetExhausted), or the
// context is cancelled.
func (r *run) loop() (Result, error) {
	for r.frontier.Len() > 0 {
		// cancellation check (once per iteration)
		select {
		case <-r.opts.Ctx.Done():
			return r.stats(), r.opts.Ctx.Err()
		default:
		}

		if r.popped >= r.opts.StepBudget {
			return r.stats(), ErrBudgetExhausted
		}

		item := heap.Pop(&r.frontier).(*frontierItem)
		r.popped++

		if r.opts.Observe != nil && r.popped%r.opts.Cadence == 0 {
			r.opts.Observe(Progress{
				Expanded: r.popped,
				Frontier: r.frontier.Len(),
				G:        item.g,
				H:        item.h,
			})
		}

		// Stale entry from lazy-decrease-key; a cheaper path was found after
		// this one was pushed.
		if item.g > r.bestG[item.key] {
			continue
		}

		state := r.states[item.key]
		if state.IsGoal(r.planner.goals) {
			res := r.stats()
			res.Plan = r.reconstruct(item.key)
			res.Cost = item.g

			return res, nil
		}

		for _, tr := range r.planner.transitions(state, r.opts.Restriction) {
			nextKey := EncodeKey(tr.next)
			nextG := item.g + 1
			if old, seen := r.bestG[nextKey]; seen && nextG >= old {
				continue
			}
			r.parent[nextKey] = item.key
			r.parentAct[nextKey] = tr.act
			r.push(tr.next, nextG)
		}
	}

	return r.stats(), ErrUnsolvable
}

// reconstruct walks parent links from goalKey back to the start and returns
// the steps in execution order.
func (r *run) reconstruct(goalKey string) []Step {
	steps := []Step{}
	for key := goalKey; ; {
		prev, ok := r.parent[key]
		if !ok {
			break
		}
		steps = append(steps, Step{Action: r.parentAct[key], State: r.states[key]})
		key = prev
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

// stats snapshots the run counters into a Result shell.
func (r *run) stats() Result {
	return Result{Expanded: r.popped, Frontier: r.frontier.Len()}
}

// frontierItem is one priority-queue entry.
type frontierItem struct {
	key  string
	g, h int
	f    int
	seq  int // insertion order, used as the final tie-break
}

// frontier is a min-heap over f, preferring lower h and then earlier
// insertion on ties, which keeps expansion order fully deterministic.
type frontier []*frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) { *q = append(*q, x.(*frontierItem)) }

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
