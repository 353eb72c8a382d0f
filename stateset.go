package fsa // import "github.com/orkestr8/fsa"

import (
	"fmt"
	"strings"
)

// StateSet is an unordered, duplicate-free collection of state ids.
// Elements enumerate in insertion order so that repeated runs over the same
// automaton visit members identically; equality ignores that order.
// The zero value is not usable; construct with NewStateSet.
type StateSet struct {
	ids   []ID
	index map[ID]struct{}
}

// NewStateSet returns a set holding the given ids, duplicates collapsed.
func NewStateSet(ids ...ID) *StateSet {
	s := &StateSet{
		index: make(map[ID]struct{}, len(ids)),
	}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Contains returns true if id is a member of the set.
func (s *StateSet) Contains(id ID) bool {
	if s == nil {
		return false
	}
	_, has := s.index[id]
	return has
}

// Add inserts id and reports whether it was not already present.
func (s *StateSet) Add(id ID) bool {
	if _, has := s.index[id]; has {
		return false
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// Union returns a new set with the members of both sets.  Neither input is modified.
func (s *StateSet) Union(other *StateSet) *StateSet {
	union := NewStateSet()
	if s != nil {
		for _, id := range s.ids {
			union.Add(id)
		}
	}
	if other != nil {
		for _, id := range other.ids {
			union.Add(id)
		}
	}
	return union
}

// Equal returns true if both sets have the same members, in any order.
func (s *StateSet) Equal(other *StateSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == nil {
		return true
	}
	for _, id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// Len returns the number of members.
func (s *StateSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// Empty returns true if the set has no members.
func (s *StateSet) Empty() bool {
	return s.Len() == 0
}

// IDs returns the members in insertion order.  The slice is a copy.
func (s *StateSet) IDs() []ID {
	if s == nil {
		return nil
	}
	ids := make([]ID, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// String renders the set as {2,3,6}.  Every member appears exactly once;
// no particular order is guaranteed.
func (s *StateSet) String() string {
	buff := &strings.Builder{}
	buff.WriteString("{")
	if s != nil {
		for i, id := range s.ids {
			if i > 0 {
				buff.WriteString(",")
			}
			fmt.Fprintf(buff, "%d", id)
		}
	}
	buff.WriteString("}")
	return buff.String()
}
