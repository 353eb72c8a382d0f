package fsa // import "github.com/orkestr8/fsa"

import (
	"fmt"
	"strings"
)

// Automaton is a nondeterministic finite automaton with epsilon transitions.
// Build it with AddState and AddTransition; once built, all query operations
// (Closure, Step, Accepts, Deterministic, ToDFA) are read-only and safe for
// concurrent use.
type Automaton struct {
	Options

	states map[ID]State
	order  []ID

	start    ID
	hasStart bool

	transitions []Transition
	outgoing    map[ID][]Transition

	alphabet map[Symbol]struct{}
	symbols  []Symbol
}

// New returns an empty automaton with default options.
func New() *Automaton {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions returns an empty automaton.
func NewWithOptions(options Options) *Automaton {
	return &Automaton{
		Options:  options,
		states:   map[ID]State{},
		outgoing: map[ID][]Transition{},
		alphabet: map[Symbol]struct{}{},
	}
}

// AddState registers a state.  Re-adding an id with identical flags is a
// no-op; conflicting flags raise ErrDuplicateState, and flagging a second
// start state raises ErrMultipleStart.
func (a *Automaton) AddState(id ID, start, accepting bool) error {
	if st, has := a.states[id]; has {
		if st.Start == start && st.Accepting == accepting {
			return nil
		}
		return ErrDuplicateState{automaton: a, ID: id}
	}

	if start && a.hasStart {
		return ErrMultipleStart{automaton: a, Existing: a.start, ID: id}
	}

	a.states[id] = State{ID: id, Start: start, Accepting: accepting}
	a.order = append(a.order, id)

	if start {
		a.start = id
		a.hasStart = true
	}
	return nil
}

// AddTransition registers a transition.  Both endpoints must already be
// registered states; symbol may be Epsilon.  Identical duplicate transitions
// are redundant but accepted.
func (a *Automaton) AddTransition(from, to ID, symbol Symbol) error {
	if _, has := a.states[from]; !has {
		return ErrUnknownState{automaton: a, ID: from}
	}
	if _, has := a.states[to]; !has {
		return ErrUnknownState{automaton: a, ID: to}
	}

	t := Transition{From: from, To: to, Symbol: symbol}
	a.transitions = append(a.transitions, t)
	a.outgoing[from] = append(a.outgoing[from], t)

	if symbol != Epsilon {
		if _, has := a.alphabet[symbol]; !has {
			a.alphabet[symbol] = struct{}{}
			a.symbols = append(a.symbols, symbol)
		}
	}
	return nil
}

// Len returns the number of states.
func (a *Automaton) Len() int {
	if a == nil {
		return 0
	}
	return len(a.order)
}

// Start returns the start state, if one is flagged.
func (a *Automaton) Start() (ID, bool) {
	return a.start, a.hasStart
}

// States returns all states in registration order.
func (a *Automaton) States() []State {
	states := make([]State, 0, len(a.order))
	for _, id := range a.order {
		states = append(states, a.states[id])
	}
	return states
}

// Transitions returns all transitions in registration order.
func (a *Automaton) Transitions() []Transition {
	transitions := make([]Transition, len(a.transitions))
	copy(transitions, a.transitions)
	return transitions
}

// Alphabet returns the distinct non-epsilon symbols used by transitions,
// in first-use order.
func (a *Automaton) Alphabet() []Symbol {
	symbols := make([]Symbol, len(a.symbols))
	copy(symbols, a.symbols)
	return symbols
}

// Accepting returns the set of accepting states.
func (a *Automaton) Accepting() *StateSet {
	accepting := NewStateSet()
	for _, id := range a.order {
		if a.states[id].Accepting {
			accepting.Add(id)
		}
	}
	return accepting
}

// IsAccepting returns true if id is a registered accepting state.
func (a *Automaton) IsAccepting(id ID) bool {
	return a.states[id].Accepting
}

// String renders the automaton for debugging.
func (a *Automaton) String() string {
	buff := &strings.Builder{}
	fmt.Fprintf(buff, "states=%d start=", a.Len())
	if a.hasStart {
		buff.WriteString(a.stateName(a.start))
	} else {
		buff.WriteString("none")
	}
	fmt.Fprintf(buff, " accepting=%v\n", a.Accepting())
	for _, t := range a.transitions {
		fmt.Fprintf(buff, "%v --%v--> %v\n", a.stateName(t.From), a.symbolName(t.Symbol), a.stateName(t.To))
	}
	return buff.String()
}

// stateName returns the friendly name of the state, if defined
func (a *Automaton) stateName(id ID) (name string) {
	name = fmt.Sprintf("%v", id)
	if a == nil {
		return
	}
	if a.StateNames == nil {
		return
	}
	if v, has := a.StateNames[id]; has {
		name = v
	}
	return
}

// symbolName returns the friendly name of the symbol, if defined
func (a *Automaton) symbolName(symbol Symbol) (name string) {
	name = fmt.Sprintf("%q", rune(symbol))
	if symbol == Epsilon {
		name = "ε"
	}
	if a == nil {
		return
	}
	if a.SymbolNames == nil {
		return
	}
	if v, has := a.SymbolNames[symbol]; has {
		name = v
	}
	return
}

// logger never returns nil
func (a *Automaton) logger() Logger {
	if a.Logger == nil {
		return &nilLogger{}
	}
	return a.Logger
}
