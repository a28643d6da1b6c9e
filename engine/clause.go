package engine

import "fmt"

// Clause is a stored fact or rule. Both cases carry a head — an Atom
// for a nullary predicate, otherwise a *Compound; a Fact's body is
// implicitly `true`.
type Clause interface {
	fmt.Stringer
	Head() Term
	// Body returns the clause's goal, or nil for a fact.
	Body() Term
}

func makeHead(name string, args []Term) Term {
	if len(args) == 0 {
		return Atom(name)
	}
	return &Compound{Functor: Atom(name), Args: args}
}

// Fact is a clause with no body.
type Fact struct {
	head Term
}

// NewFact builds a fact with the given functor name and arguments,
// matching the input AST contract `Fact(name, args)` of spec §6.
func NewFact(name string, args ...Term) Fact {
	return Fact{head: makeHead(name, args)}
}

func (f Fact) Head() Term { return f.head }
func (f Fact) Body() Term { return nil }

func (f Fact) String() string { return f.head.String() + "." }

// Rule is a clause with a non-trivial body.
type Rule struct {
	head Term
	body Term
}

// NewRule builds a rule with the given functor name, arguments, and
// body, matching the input AST contract `Rule(name, args, body)` of
// spec §6.
func NewRule(name string, args []Term, body Term) Rule {
	return Rule{head: makeHead(name, args), body: body}
}

func (r Rule) Head() Term { return r.head }
func (r Rule) Body() Term { return r.body }

func (r Rule) String() string { return r.head.String() + " :- " + r.body.String() }
