package monolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monolog-lang/monolog/engine"
)

func TestSolutionsCloseStopsExploringFurtherClauses(t *testing.T) {
	i := New()
	for _, a := range []engine.Atom{"a", "b", "c"} {
		i.Assert(engine.NewFact("p", a))
	}

	var exits int
	i.SetHooks(&engine.Hooks{OnExit: func(engine.Term, *engine.Env) { exits++ }})

	sol := i.Query(&engine.Compound{Functor: "p", Args: []engine.Term{engine.NewVar("X")}})
	_, ok := sol.Next()
	require.True(t, ok)
	sol.Close()

	assert.Equal(t, 1, exits, "closing after the first answer must not explore b or c")
}

func TestSolutionsNegationScenario(t *testing.T) {
	i := New()
	i.Assert(engine.NewFact("p", engine.Atom("a")))
	i.Assert(engine.NewFact("p", engine.Atom("b")))
	i.Assert(engine.NewFact("q", engine.Atom("b")))

	xv := engine.NewVar("X")
	goal := engine.Conjunction{
		Left:  &engine.Compound{Functor: "p", Args: []engine.Term{xv}},
		Right: engine.Negation{Inner: &engine.Compound{Functor: "q", Args: []engine.Term{xv}}},
	}
	sol := i.Query(goal)
	defer sol.Close()

	bindings, ok := sol.Next()
	require.True(t, ok)
	require.Len(t, bindings, 1)
	assert.Equal(t, engine.Atom("a"), bindings[0].Term)

	_, ok = sol.Next()
	assert.False(t, ok)
}
