package fsa // import "github.com/orkestr8/fsa"

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildABB returns the epsilon-NFA for (a|b)*abb: states 0-10, start 0,
// accepting {10}.
func buildABB(t *testing.T) *Automaton {

	a := New()

	for id := 0; id <= 10; id++ {
		require.NoError(t, a.AddState(ID(id), id == 0, id == 10))
	}

	for _, tr := range []Transition{
		{From: 0, To: 1, Symbol: Epsilon},
		{From: 0, To: 7, Symbol: Epsilon},
		{From: 1, To: 2, Symbol: Epsilon},
		{From: 1, To: 4, Symbol: Epsilon},
		{From: 2, To: 3, Symbol: 'a'},
		{From: 3, To: 6, Symbol: Epsilon},
		{From: 4, To: 5, Symbol: 'b'},
		{From: 5, To: 6, Symbol: Epsilon},
		{From: 6, To: 1, Symbol: Epsilon},
		{From: 6, To: 7, Symbol: Epsilon},
		{From: 7, To: 8, Symbol: 'a'},
		{From: 8, To: 9, Symbol: 'b'},
		{From: 9, To: 10, Symbol: 'b'},
	} {
		require.NoError(t, a.AddTransition(tr.From, tr.To, tr.Symbol))
	}

	return a
}

func TestAddState(t *testing.T) {

	a := New()

	require.NoError(t, a.AddState(0, true, false))
	require.NoError(t, a.AddState(1, false, true))

	// identical flags merge as a no-op
	require.NoError(t, a.AddState(1, false, true))
	require.Equal(t, 2, a.Len())

	// conflicting flags are rejected
	err := a.AddState(1, false, false)
	require.Error(t, err)
	require.IsType(t, ErrDuplicateState{}, err)

	// a second start state is rejected
	err = a.AddState(2, true, false)
	require.Error(t, err)
	require.IsType(t, ErrMultipleStart{}, err)
	require.Equal(t, 2, a.Len())

	start, has := a.Start()
	require.True(t, has)
	require.Equal(t, ID(0), start)
}

func TestAddTransition(t *testing.T) {

	a := New()
	require.NoError(t, a.AddState(0, true, false))
	require.NoError(t, a.AddState(1, false, true))

	require.NoError(t, a.AddTransition(0, 1, 'a'))
	require.NoError(t, a.AddTransition(0, 0, Epsilon))

	err := a.AddTransition(0, 9, 'a')
	require.Error(t, err)
	require.IsType(t, ErrUnknownState{}, err)

	err = a.AddTransition(9, 0, 'a')
	require.Error(t, err)

	// duplicates are redundant but legal
	require.NoError(t, a.AddTransition(0, 1, 'a'))
	require.Equal(t, 3, len(a.Transitions()))
}

func TestEnumeration(t *testing.T) {

	a := buildABB(t)

	require.Equal(t, 11, a.Len())

	states := a.States()
	for i, st := range states {
		require.Equal(t, ID(i), st.ID)
	}
	require.True(t, states[0].Start)
	require.True(t, states[10].Accepting)

	require.True(t, a.Accepting().Equal(NewStateSet(10)))
	require.True(t, a.IsAccepting(10))
	require.False(t, a.IsAccepting(0))

	// alphabet in first-use order, epsilon excluded
	require.Equal(t, []Symbol{'a', 'b'}, a.Alphabet())
}

func TestStringRendering(t *testing.T) {

	a := NewWithOptions(Options{
		StateNames: map[ID]string{
			0: "off",
			1: "on",
		},
		SymbolNames: map[Symbol]string{
			'p': "press",
		},
	})
	require.NoError(t, a.AddState(0, true, false))
	require.NoError(t, a.AddState(1, false, true))
	require.NoError(t, a.AddTransition(0, 1, 'p'))

	rendered := a.String()
	require.Contains(t, rendered, "off --press--> on")
	t.Log(rendered)
	t.Log(buildABB(t))
}

func TestDeterministic(t *testing.T) {

	require.False(t, buildABB(t).Deterministic())

	a := New()
	require.NoError(t, a.AddState(0, true, false))
	require.NoError(t, a.AddState(1, false, true))
	require.NoError(t, a.AddTransition(0, 1, 'a'))
	require.NoError(t, a.AddTransition(1, 0, 'b'))
	require.True(t, a.Deterministic())

	// same (from, symbol) pair, different target
	require.NoError(t, a.AddTransition(0, 0, 'a'))
	require.False(t, a.Deterministic())

	// a single epsilon transition is enough
	b := New()
	require.NoError(t, b.AddState(0, true, true))
	require.NoError(t, b.AddTransition(0, 0, Epsilon))
	require.False(t, b.Deterministic())

	// no transitions at all is vacuously deterministic
	require.True(t, New().Deterministic())
}
