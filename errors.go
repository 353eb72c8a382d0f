package fsa // import "github.com/orkestr8/fsa"

import (
	"fmt"
)

// ErrDuplicateState is raised when a state is re-added with conflicting flags
type ErrDuplicateState struct {
	automaton *Automaton
	ID
}

func (e ErrDuplicateState) Error() string {
	return fmt.Sprintf("duplicated state with conflicting flags: %v", e.automaton.stateName(e.ID))
}

// ErrUnknownState indicates the state referenced does not match a known state id
type ErrUnknownState struct {
	automaton *Automaton
	ID
}

func (e ErrUnknownState) Error() string {
	return fmt.Sprintf("unknown state: %v", e.automaton.stateName(e.ID))
}

// ErrMultipleStart is raised when a second state is flagged as the start state
type ErrMultipleStart struct {
	automaton *Automaton
	Existing  ID
	ID
}

func (e ErrMultipleStart) Error() string {
	return fmt.Sprintf("multiple start states: existing=%v, state=%v",
		e.automaton.stateName(e.Existing), e.automaton.stateName(e.ID))
}

// ErrNoStartState is raised when an operation requires a start state and none is flagged
type ErrNoStartState struct {
	automaton *Automaton
}

func (e ErrNoStartState) Error() string {
	return fmt.Sprintf("no start state: count(states)=%d", e.automaton.Len())
}
