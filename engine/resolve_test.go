package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func z() Term       { return Atom("z") }
func s(t Term) Term { return &Compound{Functor: "s", Args: []Term{t}} }

func plusKB() *KnowledgeBase {
	kb := NewKnowledgeBase()
	n, m, r := NewVar("N"), NewVar("M"), NewVar("R")
	kb.Assert(NewFact("plus", z(), n, n))
	kb.Assert(NewRule("plus", []Term{s(n), m, s(r)}, &Compound{Functor: "plus", Args: []Term{n, m, r}}))
	return kb
}

// factorialKB builds plus, times (by repeated addition), and fact on
// top of plusKB, matching spec §8.3's "plus and times as in the
// README" KB whose README is not part of this pack; times/fact are
// reconstructed from the standard Peano-arithmetic definitions the
// scenario's expected answers imply.
func factorialKB() *KnowledgeBase {
	kb := plusKB()

	n, m, r := NewVar("N"), NewVar("M"), NewVar("R")
	r1 := NewVar("R1")
	kb.Assert(NewFact("times", z(), m, z()))
	kb.Assert(NewRule("times", []Term{s(n), m, r},
		Conjunction{
			Left:  &Compound{Functor: "times", Args: []Term{n, m, r1}},
			Right: &Compound{Functor: "plus", Args: []Term{m, r1, r}},
		}))

	n2, pr := NewVar("N"), NewVar("PR")
	kb.Assert(NewFact("fact", z(), s(z())))
	kb.Assert(NewRule("fact", []Term{s(n2), r},
		Conjunction{
			Left:  &Compound{Functor: "fact", Args: []Term{n2, pr}},
			Right: &Compound{Functor: "times", Args: []Term{s(n2), pr, r}},
		}))
	return kb
}

func peano(k int) Term {
	t := z()
	for i := 0; i < k; i++ {
		t = s(t)
	}
	return t
}

// Scenario 1 (spec §8.1): plus(s(s(z)), s(z), R) -> R = s(s(s(z))), exhausted.
func TestResolveScenario1Plus(t *testing.T) {
	occ := false
	r := NewResolver(plusKB(), &occ)

	rv := NewVar("R")
	goal := &Compound{Functor: "plus", Args: []Term{s(s(z())), s(z()), rv}}
	stream := r.Solve(goal, nil)
	defer stream.Close()

	env, ok := stream.Next()
	require.True(t, ok)
	assert.Equal(t, s(s(s(z()))), Resolve(rv, env))

	_, ok = stream.Next()
	assert.False(t, ok, "exactly one answer")
	assert.NoError(t, stream.Err())
}

// Scenario 2 (spec §8.2): plus(A, B, B) with occurs check on gives one
// bounded answer then runs away; with it off, a second answer exists.
func TestResolveScenario2PlusSelfReferential(t *testing.T) {
	t.Run("occurs check on bounds the runaway branch", func(t *testing.T) {
		occ := true
		r := NewResolver(plusKB(), &occ)
		r.MaxDepth = 2000 // keep the test fast; see Resolver.MaxDepth doc.

		av, bv := NewVar("A"), NewVar("B")
		goal := &Compound{Functor: "plus", Args: []Term{av, bv, bv}}
		stream := r.Solve(goal, nil)
		defer stream.Close()

		env, ok := stream.Next()
		require.True(t, ok)
		assert.Equal(t, Atom("z"), Resolve(av, env))

		_, ok = stream.Next()
		assert.False(t, ok)
		assert.ErrorIs(t, stream.Err(), ErrStackOverflow)
	})

	t.Run("occurs check off admits a second, cyclic answer", func(t *testing.T) {
		occ := false
		r := NewResolver(plusKB(), &occ)

		av, bv := NewVar("A"), NewVar("B")
		goal := &Compound{Functor: "plus", Args: []Term{av, bv, bv}}
		stream := r.Solve(goal, nil)
		defer stream.Close()

		_, ok := stream.Next()
		require.True(t, ok)

		env, ok := stream.Next()
		require.True(t, ok, "without occurs check a second answer exists")

		// The second answer's B is self-referential; Resolve must render
		// it as a finite, cycle-safe term rather than recursing until the
		// Go stack overflows.
		resolved := Resolve(bv, env)
		assert.NotNil(t, resolved)
	})
}

// Scenario 3 (spec §8.3): fact(s(s(z)), R) -> R = s(s(z)), exhausted.
func TestResolveScenario3Factorial(t *testing.T) {
	occ := false
	r := NewResolver(factorialKB(), &occ)

	rv := NewVar("R")
	goal := &Compound{Functor: "fact", Args: []Term{peano(2), rv}}
	stream := r.Solve(goal, nil)
	defer stream.Close()

	env, ok := stream.Next()
	require.True(t, ok)
	assert.Equal(t, peano(2), Resolve(rv, env))

	_, ok = stream.Next()
	assert.False(t, ok, "exactly one answer")
}

// Scenario 4 (spec §8.4): fact(A, A) -> A = s(z), then A = s(s(z)),
// then further answers (or nontermination) on continued demand. Only
// the first two documented answers are asserted; beyond that the
// scenario itself says behavior is open-ended.
func TestResolveScenario4FactorialFixedPoints(t *testing.T) {
	occ := false
	r := NewResolver(factorialKB(), &occ)
	r.MaxDepth = 5000

	av := NewVar("A")
	goal := &Compound{Functor: "fact", Args: []Term{av, av}}
	stream := r.Solve(goal, nil)
	defer stream.Close()

	env, ok := stream.Next()
	require.True(t, ok)
	assert.Equal(t, peano(1), Resolve(av, env))

	env, ok = stream.Next()
	require.True(t, ok)
	assert.Equal(t, peano(2), Resolve(av, env))
}

// Scenario 5 (spec §8.5): one(X, s(X)); query one(A, A).
func TestResolveScenario5Occurs(t *testing.T) {
	kb := NewKnowledgeBase()
	x := NewVar("X")
	kb.Assert(NewFact("one", x, s(x)))

	t.Run("occurs check on: no answers", func(t *testing.T) {
		occ := true
		r := NewResolver(kb, &occ)
		av := NewVar("A")
		goal := &Compound{Functor: "one", Args: []Term{av, av}}
		stream := r.Solve(goal, nil)
		defer stream.Close()
		_, ok := stream.Next()
		assert.False(t, ok)
	})

	t.Run("occurs check off: A = s(A)", func(t *testing.T) {
		occ := false
		r := NewResolver(kb, &occ)
		av := NewVar("A")
		goal := &Compound{Functor: "one", Args: []Term{av, av}}
		stream := r.Solve(goal, nil)
		defer stream.Close()
		env, ok := stream.Next()
		require.True(t, ok)

		// A is bound to the renamed clause variable, not to itself by
		// name, so the cyclic structure surfaces as s(_) for whatever
		// variable A's chain actually bottoms out at — Resolve must stop
		// there instead of expanding it again.
		resolved := Resolve(av, env)
		outer, ok := resolved.(*Compound)
		require.True(t, ok, "A resolves to a compound, not bare")
		require.Equal(t, Atom("s"), outer.Functor)
		require.Len(t, outer.Args, 1)

		inner, ok := outer.Args[0].(Var)
		require.True(t, ok, "the cyclic occurrence surfaces as the unexpanded variable, not an infinite s(s(s(...)))")
		assert.Equal(t, outer, Walk(inner, env), "inner is bound back to a compound equal to the one Resolve produced: a genuine cycle")
	})
}

// Scenario 6 (spec §8.6): p(a). p(b). q(b). Query: p(X), \+ q(X).
func TestResolveScenario6Negation(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.Assert(NewFact("p", Atom("a")))
	kb.Assert(NewFact("p", Atom("b")))
	kb.Assert(NewFact("q", Atom("b")))

	occ := false
	r := NewResolver(kb, &occ)

	xv := NewVar("X")
	goal := Conjunction{
		Left:  &Compound{Functor: "p", Args: []Term{xv}},
		Right: Negation{Inner: &Compound{Functor: "q", Args: []Term{xv}}},
	}
	stream := r.Solve(goal, nil)
	defer stream.Close()

	env, ok := stream.Next()
	require.True(t, ok)
	assert.Equal(t, Atom("a"), Resolve(xv, env))

	_, ok = stream.Next()
	assert.False(t, ok, "b is ruled out by \\+ q(X); exhausted after one answer")
}

func TestResolveDisjunction(t *testing.T) {
	kb := NewKnowledgeBase()
	occ := false
	r := NewResolver(kb, &occ)

	goal := Disjunction{Left: Atom("true_left"), Right: Atom("true_right")}
	// Neither disjunct is a known predicate, so both fail, but the
	// point of this test is ordering: left is tried before right.
	var order []string
	r.Hooks = &Hooks{OnCall: func(g Term, env *Env) { order = append(order, g.String()) }}
	stream := r.Solve(goal, nil)
	defer stream.Close()
	_, ok := stream.Next()
	assert.False(t, ok)
	assert.Equal(t, []string{"true_left", "true_right"}, order)
}

func TestResolveEarlyStopReleasesChoicePoints(t *testing.T) {
	kb := NewKnowledgeBase()
	for _, a := range []Atom{"a", "b", "c"} {
		kb.Assert(NewFact("p", a))
	}
	occ := false
	r := NewResolver(kb, &occ)

	var called []Term
	r.Hooks = &Hooks{OnExit: func(g Term, env *Env) { called = append(called, Resolve(g, env)) }}

	xv := NewVar("X")
	goal := &Compound{Functor: "p", Args: []Term{xv}}
	stream := r.Solve(goal, nil)
	_, ok := stream.Next()
	require.True(t, ok)
	stream.Close()

	assert.Len(t, called, 1, "closing after the first answer must not explore b or c")
}

func TestResolveVariableAsGoal(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.Assert(NewFact("p", Atom("a")))
	occ := false
	r := NewResolver(kb, &occ)

	// V is bound to p(a) before being used as a goal.
	v := NewVar("V")
	env, ok := Unify(v, &Compound{Functor: "p", Args: []Term{Atom("a")}}, false, nil)
	require.True(t, ok)

	stream := r.Solve(v, env)
	defer stream.Close()
	_, ok = stream.Next()
	assert.True(t, ok)
}

func TestResolveUnboundVariableAsGoalFails(t *testing.T) {
	kb := NewKnowledgeBase()
	occ := false
	r := NewResolver(kb, &occ)

	v := NewVar("V")
	stream := r.Solve(v, nil)
	defer stream.Close()
	_, ok := stream.Next()
	assert.False(t, ok, "an unbound variable goal fails, it does not crash")
}

// run(G) :- G. queried as run(foo) with a nullary fact foo. must fail:
// spec §4.4/§9 dispatch a variable goal as a predicate only when it
// resolves to a Compound, never when it resolves to a bare Atom, even
// though a directly-written atom goal (foo. itself) is callable.
func TestResolveVariableBoundToAtomIsNotCallable(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.Assert(NewFact("foo"))
	occ := false
	r := NewResolver(kb, &occ)

	v := NewVar("V")
	env, ok := Unify(v, Atom("foo"), false, nil)
	require.True(t, ok)

	stream := r.Solve(v, env)
	defer stream.Close()
	_, ok = stream.Next()
	assert.False(t, ok, "a variable bound to an atom is not callable, even though the atom itself is a fact")
}
