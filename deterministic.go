package fsa // import "github.com/orkestr8/fsa"

type transitionKey struct {
	from   ID
	symbol Symbol
}

// Deterministic returns true if the automaton has no epsilon transitions and
// no two transitions leave the same state on the same symbol.  The check is
// structural only: states missing a transition for some alphabet symbol are
// allowed and represent implicit rejection.
func (a *Automaton) Deterministic() bool {
	seen := map[transitionKey]struct{}{}

	for _, t := range a.transitions {
		if t.IsEpsilon() {
			return false
		}

		key := transitionKey{from: t.From, symbol: t.Symbol}
		if _, has := seen[key]; has {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
