package engine

import "fmt"

// Scope identifies one clause instantiation during resolution. The
// query itself is scope 0; every renamed clause copy gets its own,
// monotonically increasing scope so its variables cannot collide with
// the query's or with any other instantiation of the same clause.
type Scope int64

// Var is a logic variable. Its identity is the pair (Name, Scope), so
// that two variables written with the same name in the source text
// are the same variable only if they also share a scope.
type Var struct {
	Name  string
	Scope Scope
}

// NewVar returns the query-scope variable with the given name.
// Renamed copies are produced by a Renamer, never by calling this
// directly with a non-zero scope from outside package engine.
func NewVar(name string) Var { return Var{Name: name, Scope: 0} }

func (v Var) String() string {
	if v.Scope == 0 {
		return v.Name
	}
	return fmt.Sprintf("_%s#%d", v.Name, v.Scope)
}

// Wildcard is the anonymous `_` pattern. Every textual occurrence is
// a distinct Wildcard value (see ID) so that two wildcards in the
// same clause never behave as the same variable; unifying a wildcard
// against anything succeeds without recording a binding, and a
// wildcard never appears in a result substitution.
type Wildcard struct {
	// ID distinguishes syntactically distinct `_` occurrences. It
	// plays no role in unification (every Wildcard unifies freely
	// regardless of ID) — it exists only so renaming can tell two
	// wildcards apart when producing fresh ones.
	ID int64
}

func (w Wildcard) String() string { return "_" }
