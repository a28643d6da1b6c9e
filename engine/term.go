// Package engine implements Monolog's core: the term model, the
// unifier, the clause renamer, the resolver, and the knowledge base.
// It has no dependency beyond the standard library — the REPL,
// parser, and logging live in outer layers that import this package,
// never the other way around.
package engine

import "fmt"

// Term is any Monolog term: an atom, a numeric or text literal, a
// variable, a wildcard, or a compound. Goal connectives (Negation,
// Conjunction, Disjunction) also satisfy Term so they can travel
// through the same fields as data terms, but unifying one is a
// programmer error — see Unify.
type Term interface {
	fmt.Stringer
}

// Atom is an interned symbolic constant, conventionally lowercase.
type Atom string

func (a Atom) String() string { return string(a) }

// NumLit is a ground integer literal.
type NumLit int64

func (n NumLit) String() string { return fmt.Sprintf("%d", int64(n)) }

// TextLit is a ground double-quoted string literal.
type TextLit string

func (s TextLit) String() string { return fmt.Sprintf("%q", string(s)) }
