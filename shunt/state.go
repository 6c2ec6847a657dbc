package shunt

import (
	"fmt"
	"sort"
	"strings"
)

// State is one configuration of the puzzle: the loco's node, the cars
// attached to it (in coupling order), and the resting place of every
// unattached car.
//
// A State is an immutable value: every transition returns a fresh copy and
// never mutates its receiver. A car is either attached or resting, never
// both and never neither; the transition helpers preserve that invariant.
type State struct {
	// Loco is the node the locomotive currently occupies.
	Loco string

	// Attached lists attached car IDs in coupling order. The order carries
	// no legality meaning; it exists for display and transcript fidelity.
	Attached []string

	// Cars maps each unattached car ID to the node it rests on.
	Cars map[string]string
}

// NewState builds a start state with the loco at loco, no cars attached,
// and the given resting placement. The placement map is copied.
func NewState(loco string, cars map[string]string) State {
	s := State{Loco: loco, Cars: make(map[string]string, len(cars))}
	for id, node := range cars {
		s.Cars[id] = node
	}

	return s
}

// clone deep-copies the state so a transition can edit it freely.
func (s State) clone() State {
	next := State{Loco: s.Loco}
	if len(s.Attached) > 0 {
		next.Attached = make([]string, len(s.Attached))
		copy(next.Attached, s.Attached)
	}
	next.Cars = make(map[string]string, len(s.Cars))
	for id, node := range s.Cars {
		next.Cars[id] = node
	}

	return next
}

// move returns the successor with the loco relocated to dest. Attached cars
// travel with the loco implicitly; resting cars never move.
func (s State) move(dest string) State {
	next := s.clone()
	next.Loco = dest

	return next
}

// couple returns the successor with the given resting cars attached, in the
// order supplied. Car IDs not resting in Cars are ignored.
func (s State) couple(carIDs []string) State {
	next := s.clone()
	for _, id := range carIDs {
		if _, ok := next.Cars[id]; !ok {
			continue
		}
		delete(next.Cars, id)
		next.Attached = append(next.Attached, id)
	}

	return next
}

// decouple returns the successor with the given attached cars released onto
// the loco's current node. IDs not currently attached are ignored.
func (s State) decouple(carIDs []string) State {
	next := s.clone()
	drop := make(map[string]bool, len(carIDs))
	for _, id := range carIDs {
		drop[id] = true
	}
	kept := next.Attached[:0]
	for _, id := range next.Attached {
		if drop[id] {
			next.Cars[id] = next.Loco
		} else {
			kept = append(kept, id)
		}
	}
	next.Attached = kept
	if len(next.Attached) == 0 {
		next.Attached = nil
	}

	return next
}

// carsAt returns the unattached cars resting on node, sorted by car ID.
// The sort fixes the discovery order used when coupling.
func (s State) carsAt(node string) []string {
	var out []string
	for id, at := range s.Cars {
		if at == node {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// CarIDs returns every car of the state, attached or resting, sorted.
func (s State) CarIDs() []string {
	out := make([]string, 0, len(s.Attached)+len(s.Cars))
	out = append(out, s.Attached...)
	for id := range s.Cars {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// IsGoal reports whether the state satisfies goals: nothing attached, and
// every resting car on one of its acceptable nodes. A car without a goals
// entry makes the test false (fail-closed).
func (s State) IsGoal(goals GoalSpec) bool {
	if len(s.Attached) > 0 {
		return false
	}
	for id, at := range s.Cars {
		accept, ok := goals[id]
		if !ok {
			return false
		}
		onGoal := false
		for _, node := range accept {
			if node == at {
				onGoal = true
				break
			}
		}
		if !onGoal {
			return false
		}
	}

	return true
}

// Canonical key layout: "<loco>|<attached sorted, comma-joined>|<car@node
// sorted by car, comma-joined>". The attached set is sorted inside the key
// so that the same physical configuration reached via different coupling
// orders merges to one search node.
const (
	keySection = "|"
	keyComma   = ","
	keyAt      = "@"
)

// EncodeKey returns the deterministic canonical key of s.
func EncodeKey(s State) string {
	attached := make([]string, len(s.Attached))
	copy(attached, s.Attached)
	sort.Strings(attached)

	resting := make([]string, 0, len(s.Cars))
	for id, node := range s.Cars {
		resting = append(resting, id+keyAt+node)
	}
	sort.Strings(resting)

	var b strings.Builder
	b.WriteString(s.Loco)
	b.WriteString(keySection)
	b.WriteString(strings.Join(attached, keyComma))
	b.WriteString(keySection)
	b.WriteString(strings.Join(resting, keyComma))

	return b.String()
}

// DecodeKey rebuilds a State from a canonical key. The attached sequence
// comes back in key (sorted) order. Returns ErrBadKey for malformed input.
func DecodeKey(key string) (State, error) {
	parts := strings.Split(key, keySection)
	if len(parts) != 3 || parts[0] == "" {
		return State{}, fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	s := State{Loco: parts[0], Cars: make(map[string]string)}
	if parts[1] != "" {
		s.Attached = strings.Split(parts[1], keyComma)
	}
	if parts[2] != "" {
		for _, entry := range strings.Split(parts[2], keyComma) {
			id, node, ok := strings.Cut(entry, keyAt)
			if !ok || id == "" || node == "" {
				return State{}, fmt.Errorf("%w: entry %q in %q", ErrBadKey, entry, key)
			}
			s.Cars[id] = node
		}
	}

	return s, nil
}
