package fsa // import "github.com/orkestr8/fsa"

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccepts(t *testing.T) {

	a := buildABB(t)

	require.True(t, a.AcceptsString("abb"))
	require.True(t, a.AcceptsString("aabb"))
	require.True(t, a.AcceptsString("babb"))
	require.False(t, a.AcceptsString("ab"))
	require.False(t, a.AcceptsString("abba"))
	require.False(t, a.AcceptsString(""))

	require.True(t, a.Accepts([]Symbol{'a', 'b', 'b'}))
	require.False(t, a.Accepts(nil))
}

func TestAcceptsEmptyInput(t *testing.T) {

	// start state reaches an accepting state over epsilon alone
	a := New()
	require.NoError(t, a.AddState(0, true, false))
	require.NoError(t, a.AddState(1, false, true))
	require.NoError(t, a.AddTransition(0, 1, Epsilon))

	require.True(t, a.AcceptsString(""))
	require.False(t, a.AcceptsString("a"))
}

func TestAcceptsUnknownSymbol(t *testing.T) {

	a := buildABB(t)

	// symbols outside the alphabet dead-end the simulation
	require.False(t, a.AcceptsString("abz"))
	require.False(t, a.AcceptsString("zabb"))
}

func TestAcceptsNoStartState(t *testing.T) {

	a := New()
	require.NoError(t, a.AddState(0, false, true))

	require.False(t, a.AcceptsString(""))
	require.False(t, a.AcceptsString("a"))

	require.False(t, New().AcceptsString(""))
}
