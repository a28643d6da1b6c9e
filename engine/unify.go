package engine

// Unify attempts to unify a and b modulo env, returning the extended
// substitution on success. occursCheck, when true, rejects a binding
// that would make a variable occur within its own value (spec §4.2).
// It panics if either operand is a goal connective (Negation,
// Conjunction, Disjunction) — those are never valid unification
// operands (spec §4.2: "attempting to unify them is a programmer
// error").
func Unify(a, b Term, occursCheck bool, env *Env) (*Env, bool) {
	a = Walk(a, env)
	b = Walk(b, env)

	switch a.(type) {
	case Negation, Conjunction, Disjunction:
		panic("engine: cannot unify a goal connective")
	}
	switch b.(type) {
	case Negation, Conjunction, Disjunction:
		panic("engine: cannot unify a goal connective")
	}

	// Wildcards bind to nothing and unify with anything (step 4).
	if _, ok := a.(Wildcard); ok {
		return env, true
	}
	if _, ok := b.(Wildcard); ok {
		return env, true
	}

	av, aVar := a.(Var)
	bv, bVar := b.(Var)

	// Two identical variables: no-op (step 2).
	if aVar && bVar && av == bv {
		return env, true
	}

	// One side a variable: bind it, subject to the occurs check
	// (step 3).
	if aVar {
		return bindVar(av, b, occursCheck, env)
	}
	if bVar {
		return bindVar(bv, a, occursCheck, env)
	}

	// Two ground literals or atoms (step 5).
	switch at := a.(type) {
	case Atom:
		bt, ok := b.(Atom)
		return env, ok && at == bt
	case NumLit:
		bt, ok := b.(NumLit)
		return env, ok && at == bt
	case TextLit:
		bt, ok := b.(TextLit)
		return env, ok && at == bt
	}

	// Two compounds of equal name and arity: unify args pairwise
	// (step 6).
	ac, aComp := a.(*Compound)
	bc, bComp := b.(*Compound)
	if aComp && bComp {
		if ac.Functor != bc.Functor || len(ac.Args) != len(bc.Args) {
			return env, false
		}
		for i := range ac.Args {
			var ok bool
			env, ok = Unify(ac.Args[i], bc.Args[i], occursCheck, env)
			if !ok {
				return env, false
			}
		}
		return env, true
	}

	// Otherwise, fail (step 7).
	return env, false
}

func bindVar(v Var, t Term, occursCheck bool, env *Env) (*Env, bool) {
	if occursCheck && occursIn(v, t, env) {
		return env, false
	}
	return env.Bind(v, t), true
}
