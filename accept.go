package fsa // import "github.com/orkestr8/fsa"

// Accepts simulates the automaton over input and returns true if any
// configuration reachable after consuming all of it is accepting.  An
// automaton without a start state accepts nothing.  Symbols outside the
// alphabet have no transitions and dead-end the simulation.
func (a *Automaton) Accepts(input []Symbol) bool {
	start, has := a.Start()
	if !has {
		return false
	}

	current := a.Closure(start)

	for _, symbol := range input {
		current = a.StepSet(current, symbol)
		if current.Empty() {
			return false
		}
	}

	for _, id := range current.ids {
		if a.IsAccepting(id) {
			return true
		}
	}
	return false
}

// AcceptsString is Accepts over the runes of input.
func (a *Automaton) AcceptsString(input string) bool {
	symbols := make([]Symbol, 0, len(input))
	for _, r := range input {
		symbols = append(symbols, Symbol(r))
	}
	return a.Accepts(symbols)
}
