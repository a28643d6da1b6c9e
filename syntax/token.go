// Package syntax is the external collaborator spec §1 carves out of
// the core: a lexer and recursive-descent parser for Monolog's
// surface syntax (a strict subset of Prolog), producing the
// engine.Clause / engine.Term values the core's input AST contract
// (spec §6) consumes. Grounded on the teacher's lexer.go (the
// state-function lexer design) and parser.go, both drastically cut
// down from ISO Prolog's operator-table grammar to the spec's fixed
// set of connectives.
package syntax

// TokenKind classifies a lexed token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenAtom
	TokenVariable
	TokenWildcard
	TokenInt
	TokenString
	TokenPunct
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "eof"
	case TokenAtom:
		return "atom"
	case TokenVariable:
		return "variable"
	case TokenWildcard:
		return "wildcard"
	case TokenInt:
		return "int"
	case TokenString:
		return "string"
	case TokenPunct:
		return "punct"
	default:
		return "unknown"
	}
}

// Token is one lexical unit. Val carries the literal text for
// atoms/variables/ints/strings, and the exact punctuation spelling
// (e.g. ":-", "\+", ",", ";", "(", ")", "[", "]", "|", ".") for
// TokenPunct.
type Token struct {
	Kind TokenKind
	Val  string
}
