package engine

import "sync/atomic"

// Renamer allocates fresh scope-ids and produces clause copies with
// every variable rewritten to carry that scope — "renaming apart"
// (spec §4.3, §9). A clause as stored in the knowledge base has all
// of its own variables at scope 0, the same convention the query
// uses; renaming to a scope ≥ 1 is what keeps a recursive clause's
// variables from colliding across activations.
//
// The zero value is not usable; use NewRenamer. A Renamer is not
// safe for concurrent use — resolution is single-threaded (spec §5).
type Renamer struct {
	next int64
}

// NewRenamer returns a Renamer whose first allocated scope is 1,
// leaving scope 0 reserved for the query.
func NewRenamer() *Renamer { return &Renamer{next: 0} }

// Fresh allocates a new scope-id, unique within this Renamer's
// lifetime.
func (r *Renamer) Fresh() Scope {
	return Scope(atomic.AddInt64(&r.next, 1))
}

// Rename returns a copy of c in which every variable has been
// rewritten to scope, and every wildcard has been replaced by a
// freshly-scoped, independently-identified wildcard (spec §4.3). It
// does not mutate c.
func (r *Renamer) Rename(c Clause, scope Scope) Clause {
	head := renameTerm(c.Head(), scope)
	body := c.Body()
	if body == nil {
		return Fact{head: head}
	}
	return Rule{head: head, body: renameTerm(body, scope)}
}

var wildcardCounter int64

func freshWildcard() Wildcard {
	return Wildcard{ID: atomic.AddInt64(&wildcardCounter, 1)}
}

func renameCompound(c *Compound, scope Scope) *Compound {
	args := make([]Term, len(c.Args))
	for i, a := range c.Args {
		args[i] = renameTerm(a, scope)
	}
	return &Compound{Functor: c.Functor, Args: args}
}

// renameTerm rewrites every Var in t to carry scope and every
// Wildcard to a fresh, independent one. It recurses into goal
// connectives too, since a rule's Body is a Term built from them.
func renameTerm(t Term, scope Scope) Term {
	switch t := t.(type) {
	case Var:
		return Var{Name: t.Name, Scope: scope}
	case Wildcard:
		return freshWildcard()
	case *Compound:
		return renameCompound(t, scope)
	case Negation:
		return Negation{Inner: renameTerm(t.Inner, scope)}
	case Conjunction:
		return Conjunction{Left: renameTerm(t.Left, scope), Right: renameTerm(t.Right, scope)}
	case Disjunction:
		return Disjunction{Left: renameTerm(t.Left, scope), Right: renameTerm(t.Right, scope)}
	default:
		// Atoms and literals carry no variables.
		return t
	}
}
