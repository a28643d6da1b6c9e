package engine

import "fmt"

// Negation, Conjunction, and Disjunction are goal-form connectives
// (spec §3). They satisfy Term so they can sit in a Rule's Body field
// alongside Compound and Var, but they are never valid data and never
// valid unification operands — Unify on them panics, the same
// "programmer error" the spec assigns to unifying a connective (§4.2:
// "attempting to unify them is a programmer error").

// Negation is "not provable": negation as failure over Inner.
type Negation struct{ Inner Term }

func (n Negation) String() string { return fmt.Sprintf("\\+%s", n.Inner) }

// Conjunction is the goal "Left, then Right".
type Conjunction struct{ Left, Right Term }

func (c Conjunction) String() string { return fmt.Sprintf("%s,%s", c.Left, c.Right) }

// Disjunction is the goal "Left, or else Right".
type Disjunction struct{ Left, Right Term }

func (d Disjunction) String() string { return fmt.Sprintf("%s;%s", d.Left, d.Right) }
