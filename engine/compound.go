package engine

import "strings"

// Compound is a functor application with fixed arity len(Args).
// Conventional list cells use functor "." with arity 2 and the empty
// list is the atom "[]" — ordinary compounds, unified structurally
// like any other.
type Compound struct {
	Functor Atom
	Args    []Term
}

// NewCompound builds a compound, or the bare atom if args is empty —
// mirroring Prolog's functor(Name, 0) collapsing to an atom.
func NewCompound(functor string, args ...Term) Term {
	if len(args) == 0 {
		return Atom(functor)
	}
	return &Compound{Functor: Atom(functor), Args: args}
}

func (c *Compound) String() string {
	if c.Functor == "." && len(c.Args) == 2 {
		return stringifyList(c)
	}
	var sb strings.Builder
	sb.WriteString(string(c.Functor))
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Cons builds the list cell [car|cdr].
func Cons(car, cdr Term) Term { return &Compound{Functor: ".", Args: []Term{car, cdr}} }

// Nil is the empty list atom.
const Nil = Atom("[]")

// List builds a proper list of ts.
func List(ts ...Term) Term {
	l := Term(Nil)
	for i := len(ts) - 1; i >= 0; i-- {
		l = Cons(ts[i], l)
	}
	return l
}

// stringifyList renders a list cell structurally. It has no env to
// walk: callers that want the display-facing form call Resolve first
// (as Solutions.Next does) so String only ever has to print already-
// dereferenced terms.
func stringifyList(c *Compound) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	var t Term = c
	for {
		cell, ok := t.(*Compound)
		if !ok || cell.Functor != "." || len(cell.Args) != 2 {
			if t != Nil {
				sb.WriteByte('|')
				sb.WriteString(t.String())
			}
			break
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(cell.Args[0].String())
		t = cell.Args[1]
	}
	sb.WriteByte(']')
	return sb.String()
}
