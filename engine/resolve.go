package engine

// Cont is a success continuation: the resolver calls it once per
// answer with the substitution that produced it. It returns true if
// the search should keep looking for further answers ("next" was
// demanded), or false to stop — spec §5: "the consumer signaling
// 'done' causes the producer to release all choice points on its
// next step." solve itself mirrors that return value: it returns
// true if every alternative was tried to exhaustion, or false as soon
// as some Cont call asked to stop, so the stop request propagates up
// through every enclosing Conjunction/Disjunction/predicate loop
// without any of them doing more work.
type Cont func(env *Env) bool

// Hooks are optional, side-effect-only observers of resolution steps
// (the supplemented tracing feature of SPEC_FULL.md, grounded on the
// teacher's cmd/1pl/main.go OnCall/OnExit/OnFail/OnRedo). A nil Hooks
// disables tracing entirely; any non-nil field is called at the
// matching step. Hooks never influence search order or results —
// spec §8's answer-ordering-determinism holds regardless of whether
// hooks are installed.
type Hooks struct {
	OnCall func(goal Term, env *Env)
	OnExit func(goal Term, env *Env)
	OnFail func(goal Term, env *Env)
	OnRedo func(goal Term, env *Env)
}

func (h *Hooks) call(goal Term, env *Env) {
	if h != nil && h.OnCall != nil {
		h.OnCall(goal, env)
	}
}
func (h *Hooks) exit(goal Term, env *Env) {
	if h != nil && h.OnExit != nil {
		h.OnExit(goal, env)
	}
}
func (h *Hooks) fail(goal Term, env *Env) {
	if h != nil && h.OnFail != nil {
		h.OnFail(goal, env)
	}
}
func (h *Hooks) redo(goal Term, env *Env) {
	if h != nil && h.OnRedo != nil {
		h.OnRedo(goal, env)
	}
}

// Resolver performs SLD-resolution with chronological backtracking
// over a KnowledgeBase (spec §4.4). It owns the renamer that keeps
// clause instantiations disjoint (spec §4.3) and reads OccursCheck at
// every unification, never capturing it (spec §4.2: "the occurs-check
// flag is a process-wide setting toggled between queries; it is read
// at unify time, not captured at KB load").
type Resolver struct {
	KB      *KnowledgeBase
	Renamer *Renamer
	Hooks   *Hooks

	// OccursCheck points at the process-wide flag. Resolve reads
	// *OccursCheck immediately before every Unify call.
	OccursCheck *bool

	// MaxDepth bounds recursion depth. The spec documents unbounded
	// recursion as an accepted *StackOverflow* outcome (§7) and
	// explicitly permits converting it into a reported error instead
	// of process termination; a literal Go stack overflow is a fatal
	// runtime error that recover cannot catch, so this resolver
	// counts recursive solve steps and fails the search with
	// ErrStackOverflow (via AnswerStream.Err) before the host stack
	// is actually exhausted, rather than relying on recover. Zero
	// means use defaultMaxDepth.
	MaxDepth int
}

const defaultMaxDepth = 1_000_000

// NewResolver returns a Resolver over kb. occursCheck is the
// process-wide flag cell the resolver will read at every unify call;
// callers keep a pointer to the same bool to toggle it between
// queries (spec §4.2, §6 `:o`/`:occurs`).
func NewResolver(kb *KnowledgeBase, occursCheck *bool) *Resolver {
	return &Resolver{KB: kb, Renamer: NewRenamer(), OccursCheck: occursCheck}
}

func (r *Resolver) maxDepth() int {
	if r.MaxDepth > 0 {
		return r.MaxDepth
	}
	return defaultMaxDepth
}

// depthOverflow is the panic value solve raises past MaxDepth. It is
// only ever recovered inside this package (AnswerStream's producer
// goroutine), never propagated to callers as a panic.
type depthOverflow struct{}

// Solve proves goal under env, calling k once per answer in
// depth-first, left-to-right order (spec §4.4). It returns true if
// every alternative was exhausted, or false if some Cont call asked
// to stop.
func (r *Resolver) Solve(goal Term, env *Env) *AnswerStream {
	return newAnswerStream(r, goal, env)
}

// solve is the structural recursion of spec §4.4, used directly by
// AnswerStream's producer goroutine and recursively by itself.
func (r *Resolver) solve(goal Term, env *Env, k Cont) bool {
	return r.solveAt(goal, env, k, 0)
}

func (r *Resolver) solveAt(goal Term, env *Env, k Cont, depth int) bool {
	if depth > r.maxDepth() {
		panic(depthOverflow{})
	}

	switch g := goal.(type) {
	case Conjunction:
		return r.solveAt(g.Left, env, func(env1 *Env) bool {
			return r.solveAt(g.Right, env1, k, depth+1)
		}, depth+1)

	case Disjunction:
		if !r.solveAt(g.Left, env, k, depth+1) {
			return false
		}
		return r.solveAt(g.Right, env, k, depth+1)

	case Negation:
		found := false
		r.solveAt(g.Inner, env, func(*Env) bool {
			found = true
			return false // one answer is enough to know Negation fails.
		}, depth+1)
		if found {
			return true // Negation(G) fails: zero yields, search continues.
		}
		return k(env) // G had no answers: Negation succeeds once, σ unchanged.

	case *Compound:
		return r.solvePredicate(g.Functor, g.Args, g, env, k, depth+1)

	case Atom:
		return r.solvePredicate(g, nil, g, env, k, depth+1)

	case Var:
		// Spec §4.4/§9 "Variable as goal": dispatches as a predicate
		// goal only if it resolves to a Compound; any other resolved
		// form — including an Atom, which would otherwise look like a
		// valid nullary predicate — fails instead of succeeding.
		w, ok := Walk(g, env).(*Compound)
		if !ok {
			r.Hooks.fail(goal, env)
			return true
		}
		return r.solvePredicate(w.Functor, w.Args, w, env, k, depth+1)

	default:
		// NumLit, TextLit, Wildcard: never callable.
		r.Hooks.fail(goal, env)
		return true
	}
}

// solvePredicate is spec §4.4's "Predicate goal" case: try every
// clause matching name/arity, in insertion order, renaming each
// apart before unifying.
func (r *Resolver) solvePredicate(name Atom, args []Term, goal Term, env *Env, k Cont, depth int) bool {
	r.Hooks.call(goal, env)

	clauses := r.KB.Iter(string(name), len(args))
	redo := false
	for _, c := range clauses {
		if redo {
			r.Hooks.redo(goal, env)
		}
		redo = true

		scope := r.Renamer.Fresh()
		renamed := r.Renamer.Rename(c, scope)

		env1, ok := Unify(goal, renamed.Head(), r.occursCheck(), env)
		if !ok {
			continue
		}

		body := renamed.Body()
		if body == nil {
			// Fact: the unified substitution is the one answer.
			r.Hooks.exit(goal, env1)
			if !k(env1) {
				return false
			}
			continue
		}

		if !r.solveAt(body, env1, k, depth+1) {
			return false
		}
	}

	r.Hooks.fail(goal, env)
	return true
}

func (r *Resolver) occursCheck() bool {
	return r.OccursCheck != nil && *r.OccursCheck
}
