package shunt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestState_CoupleExplicitSet checks the transition against an explicit
// car-id set: listed resting cars attach in the order given, unknown or
// already-attached IDs are ignored, and the receiver stays untouched.
func TestState_CoupleExplicitSet(t *testing.T) {
	s := NewState("MAIN", map[string]string{"C1": "MAIN", "C2": "MAIN", "C3": "A0"})

	next := s.couple([]string{"C2", "C1", "C9"})
	assert.Equal(t, []string{"C2", "C1"}, next.Attached)
	assert.Equal(t, map[string]string{"C3": "A0"}, next.Cars)

	// receiver unchanged
	assert.Empty(t, s.Attached)
	assert.Len(t, s.Cars, 3)
}

// TestState_DecoupleExplicitSet releases only the listed attached cars onto
// the loco's node, preserving the order of the rest.
func TestState_DecoupleExplicitSet(t *testing.T) {
	s := State{
		Loco:     "B1",
		Attached: []string{"C2", "C1", "C3"},
		Cars:     map[string]string{},
	}

	next := s.decouple([]string{"C1"})
	assert.Equal(t, []string{"C2", "C3"}, next.Attached)
	assert.Equal(t, map[string]string{"C1": "B1"}, next.Cars)

	all := next.decouple(next.Attached)
	assert.Empty(t, all.Attached)
	assert.Equal(t, map[string]string{"C1": "B1", "C2": "B1", "C3": "B1"}, all.Cars)

	// receiver unchanged
	assert.Equal(t, []string{"C2", "C1", "C3"}, s.Attached)
}

// TestState_MoveLeavesCars verifies resting cars never move with the loco.
func TestState_MoveLeavesCars(t *testing.T) {
	s := NewState("MAIN", map[string]string{"C1": "MAIN"})
	next := s.move("M1")
	assert.Equal(t, "M1", next.Loco)
	assert.Equal(t, "MAIN", next.Cars["C1"])
	assert.Equal(t, "MAIN", s.Loco)
}

// TestState_CarsAtSorted fixes the coupling discovery order.
func TestState_CarsAtSorted(t *testing.T) {
	s := NewState("A0", map[string]string{"C3": "A0", "C1": "A0", "C2": "B0"})
	assert.Equal(t, []string{"C1", "C3"}, s.carsAt("A0"))
	assert.Nil(t, s.carsAt("M1"))
}
