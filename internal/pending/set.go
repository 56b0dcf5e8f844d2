package pending

import (
	"fmt"

	"github.com/vk/tombstone/internal/lang"
)

// Constraint reads "once Base is executable, Source becomes executable via Target".
type Constraint struct {
	Base   lang.Name `json:"base"`
	Source lang.Name `json:"source"`
	Target lang.Name `json:"target"`
}

// String implements fmt.Stringer.
func (c Constraint) String() string {
	return fmt.Sprintf("%s->%s (needs %s)", c.Source, c.Target, c.Base)
}

// Set is an unordered collection of pending constraints. Insertion order is
// kept only so that listings and drains are deterministic.
type Set struct {
	items []Constraint
}

// New creates an empty Set.
func New() *Set {
	return &Set{}
}

// Add appends c. The caller has already established that c's precondition
// does not hold.
func (s *Set) Add(c Constraint) {
	s.items = append(s.items, c)
}

// DrainSatisfied removes and returns every constraint for which satisfied
// returns true. The predicate is evaluated against the set as it was when the
// call started; entries that do not satisfy it are left untouched.
func (s *Set) DrainSatisfied(satisfied func(Constraint) bool) []Constraint {
	var drained []Constraint
	kept := s.items[:0:0]
	for _, c := range s.items {
		if satisfied(c) {
			drained = append(drained, c)
			continue
		}
		kept = append(kept, c)
	}
	if len(drained) > 0 {
		s.items = kept
	}
	return drained
}

// Len returns the number of pending constraints.
func (s *Set) Len() int { return len(s.items) }

// All returns a copy of the pending constraints in insertion order.
func (s *Set) All() []Constraint {
	out := make([]Constraint, len(s.items))
	copy(out, s.items)
	return out
}
