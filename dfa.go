package fsa // import "github.com/orkestr8/fsa"

// ToDFA builds a deterministic automaton equivalent to this one via subset
// construction.  Each DFA state stands for the set of source states reachable
// under the same input prefix; states are numbered 0..k in discovery order,
// with 0 always the start state.  The result is a fresh automaton sharing
// nothing with the source.  Raises ErrNoStartState if no start state is
// flagged.
func (a *Automaton) ToDFA() (*Automaton, error) {
	start, has := a.Start()
	if !has {
		return nil, ErrNoStartState{automaton: a}
	}

	dfa := NewWithOptions(Options{Logger: a.logger()})
	alphabet := a.Alphabet()

	initial := a.Closure(start)
	catalog := []*StateSet{initial}
	worklist := []int{0}

	if err := dfa.AddState(0, true, a.acceptsAny(initial)); err != nil {
		return nil, err
	}
	a.logger().Debug("subset construction", "state", 0, "set", initial)

	for len(worklist) > 0 {
		from := worklist[0]
		worklist = worklist[1:]
		current := catalog[from]

		for _, symbol := range alphabet {
			next := a.StepSet(current, symbol)
			if next.Empty() {
				// implicit rejection on symbol from this state
				continue
			}

			to := -1
			for i, member := range catalog {
				if member.Equal(next) {
					to = i
					break
				}
			}

			if to < 0 {
				to = len(catalog)
				catalog = append(catalog, next)
				worklist = append(worklist, to)

				if err := dfa.AddState(ID(to), false, a.acceptsAny(next)); err != nil {
					return nil, err
				}
				a.logger().Debug("subset construction", "state", to, "set", next)
			}

			if err := dfa.AddTransition(ID(from), ID(to), symbol); err != nil {
				return nil, err
			}
		}
	}

	a.logger().Info("subset construction done", "states", dfa.Len(), "transitions", len(dfa.transitions))
	return dfa, nil
}

// acceptsAny returns true if any member of states is accepting.
func (a *Automaton) acceptsAny(states *StateSet) bool {
	for _, id := range states.ids {
		if a.IsAccepting(id) {
			return true
		}
	}
	return false
}
