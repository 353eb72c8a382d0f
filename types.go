package fsa // import "github.com/orkestr8/fsa"

// ID is the identifier of a state in an automaton.  It's unique in that
// automaton and carries no meaning beyond identity.
type ID int

// Symbol is an input symbol consumed by a transition.
type Symbol rune

// Epsilon labels a transition that consumes no input.
const Epsilon Symbol = 0

// State is a state of an automaton together with its start / accepting flags.
type State struct {

	// ID is the unique key of the state
	ID ID

	// Start marks this state as the start state.  At most one per automaton.
	Start bool

	// Accepting marks this state as accepting.
	Accepting bool
}

// Transition moves the automaton from one state to another on a symbol.
// A transition labeled Epsilon consumes no input.
type Transition struct {

	// From is the state the transition leaves.
	From ID

	// To is the state the transition enters.
	To ID

	// Symbol is the input consumed, or Epsilon.
	Symbol Symbol
}

// IsEpsilon returns true if the transition consumes no input.
func (t Transition) IsEpsilon() bool {
	return t.Symbol == Epsilon
}

// DefaultOptions returns default values
func DefaultOptions() Options {
	return Options{
		Logger: &nilLogger{},
	}
}

// Options contains options for an automaton
type Options struct {

	// StateNames is the lookup table for user-friendly names of states keyed by ID
	StateNames map[ID]string

	// SymbolNames is the lookup table for user-friendly names of symbols keyed by Symbol
	SymbolNames map[Symbol]string

	// Logger is a logger that implements the logging interface
	Logger Logger
}

// Logger is the interface used by the module to log information
type Logger interface {
	Debug(string, ...interface{})
	Error(string, ...interface{})
	Info(string, ...interface{})
}
