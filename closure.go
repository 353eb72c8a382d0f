package fsa // import "github.com/orkestr8/fsa"

// Closure returns the set of states reachable from id over zero or more
// epsilon transitions, including id itself.  Total: an unregistered id
// yields the singleton {id}.
func (a *Automaton) Closure(id ID) *StateSet {
	result := NewStateSet(id)
	stack := []ID{id}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, t := range a.outgoing[current] {
			if !t.IsEpsilon() {
				continue
			}
			if result.Add(t.To) {
				stack = append(stack, t.To)
			}
		}
	}
	return result
}

// ClosureSet returns the union of Closure over every member of states.
func (a *Automaton) ClosureSet(states *StateSet) *StateSet {
	result := NewStateSet()
	if states == nil {
		return result
	}
	for _, id := range states.ids {
		for _, member := range a.Closure(id).ids {
			result.Add(member)
		}
	}
	return result
}

// Step returns the states reachable from id by consuming symbol: the epsilon
// closure of id, then direct symbol transitions, then the closure of the
// targets.  Both closure passes are required for correctness in the presence
// of epsilon transitions.  Stepping on Epsilon consumes nothing and is the
// closure itself.
func (a *Automaton) Step(id ID, symbol Symbol) *StateSet {
	if symbol == Epsilon {
		return a.Closure(id)
	}

	targets := NewStateSet()
	for _, current := range a.Closure(id).ids {
		for _, t := range a.outgoing[current] {
			if t.Symbol == symbol {
				targets.Add(t.To)
			}
		}
	}
	return a.ClosureSet(targets)
}

// StepSet returns the union of Step over every member of states.
func (a *Automaton) StepSet(states *StateSet, symbol Symbol) *StateSet {
	result := NewStateSet()
	if states == nil {
		return result
	}
	for _, id := range states.ids {
		for _, member := range a.Step(id, symbol).ids {
			result.Add(member)
		}
	}
	return result
}
