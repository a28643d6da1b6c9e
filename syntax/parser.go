package syntax

import (
	"fmt"
	"io"
	"strconv"

	"github.com/monolog-lang/monolog/engine"
)

// ParseError wraps a malformed-input failure (spec §7's *ParseError*):
// it is raised here and never reaches engine.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return "syntax: " + e.msg }

func parseErrorf(format string, args ...any) error {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

// Parser turns Monolog source text into engine.Clause and engine.Term
// values, one clause or one query goal at a time. Grounded on
// parser.go's recursive-descent structure, with ISO's full operator
// table collapsed to the fixed connective set spec §3/§4 names:
// ':-', ',', ';', '\+', plus list sugar.
type Parser struct {
	lex  *Lexer
	cur  Token
	vars map[string]engine.Var
	wc   int64
}

// NewParser returns a Parser reading clauses and goals from r.
func NewParser(r io.Reader) *Parser {
	p := &Parser{lex: NewLexer(r)}
	p.advance()
	return p
}

func (p *Parser) advance() { p.cur = p.lex.Next() }

func (p *Parser) is(val string) bool {
	return p.cur.Kind == TokenPunct && p.cur.Val == val
}

func (p *Parser) expect(val string) error {
	if !p.is(val) {
		return parseErrorf("expected %q, got %q", val, p.cur.Val)
	}
	p.advance()
	return nil
}

// ParseClause parses one fact or rule of the form `head.` or
// `head :- body.`. It returns io.EOF once the input is exhausted.
func (p *Parser) ParseClause() (engine.Clause, error) {
	if err := p.lex.Err(); err != nil {
		return nil, err
	}
	if p.cur.Kind == TokenEOF {
		return nil, io.EOF
	}
	p.vars = map[string]engine.Var{}

	head, err := p.term()
	if err != nil {
		return nil, err
	}
	name, args, err := asHead(head)
	if err != nil {
		return nil, err
	}

	var body engine.Term
	if p.is(":-") {
		p.advance()
		if body, err = p.goal(); err != nil {
			return nil, err
		}
	}
	if err := p.expect("."); err != nil {
		return nil, err
	}

	if body == nil {
		return engine.NewFact(name, args...), nil
	}
	return engine.NewRule(name, args, body), nil
}

// ParseGoal parses one query goal terminated by '.'. It returns
// io.EOF once the input is exhausted.
func (p *Parser) ParseGoal() (engine.Term, error) {
	if err := p.lex.Err(); err != nil {
		return nil, err
	}
	if p.cur.Kind == TokenEOF {
		return nil, io.EOF
	}
	p.vars = map[string]engine.Var{}

	g, err := p.goal()
	if err != nil {
		return nil, err
	}
	if err := p.expect("."); err != nil {
		return nil, err
	}
	return g, nil
}

func asHead(t engine.Term) (string, []engine.Term, error) {
	switch h := t.(type) {
	case engine.Atom:
		return string(h), nil, nil
	case *engine.Compound:
		return string(h.Functor), h.Args, nil
	default:
		return "", nil, parseErrorf("clause head must be an atom or compound, got %s", t)
	}
}

// goal / disjunction / conjunction / negation implement the fixed
// precedence of spec §3's goal connectives, loosest to tightest:
// ';' binds looser than ',', which binds looser than '\+'.
func (p *Parser) goal() (engine.Term, error) { return p.disjunction() }

func (p *Parser) disjunction() (engine.Term, error) {
	left, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	for p.is(";") {
		p.advance()
		right, err := p.conjunction()
		if err != nil {
			return nil, err
		}
		left = engine.Disjunction{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) conjunction() (engine.Term, error) {
	left, err := p.negation()
	if err != nil {
		return nil, err
	}
	for p.is(",") {
		p.advance()
		right, err := p.negation()
		if err != nil {
			return nil, err
		}
		left = engine.Conjunction{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) negation() (engine.Term, error) {
	if p.is("\\+") {
		p.advance()
		inner, err := p.negation()
		if err != nil {
			return nil, err
		}
		return engine.Negation{Inner: inner}, nil
	}
	return p.goalPrimary()
}

// goalPrimary admits a parenthesized sub-goal (so `(a ; b), c` can
// group the disjunction) or falls through to an ordinary data term
// used in goal position — a bare compound/atom/variable (spec §9's
// "variable as goal").
func (p *Parser) goalPrimary() (engine.Term, error) {
	if p.is("(") {
		p.advance()
		g, err := p.goal()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return g, nil
	}
	return p.term()
}

// term parses one data term: atom, compound, variable, wildcard,
// integer, string, or list. Connectives never appear here — data
// position and goal position are syntactically distinct, matching
// spec §4.2's rule that connectives are not valid unification
// operands.
func (p *Parser) term() (engine.Term, error) {
	switch p.cur.Kind {
	case TokenAtom:
		name := p.cur.Val
		p.advance()
		if p.is("(") {
			p.advance()
			args, err := p.argList(")")
			if err != nil {
				return nil, err
			}
			return &engine.Compound{Functor: engine.Atom(name), Args: args}, nil
		}
		return engine.Atom(name), nil

	case TokenVariable:
		name := p.cur.Val
		p.advance()
		if v, ok := p.vars[name]; ok {
			return v, nil
		}
		v := engine.NewVar(name)
		p.vars[name] = v
		return v, nil

	case TokenWildcard:
		p.advance()
		p.wc++
		return engine.Wildcard{ID: p.wc}, nil

	case TokenInt:
		n, err := strconv.ParseInt(p.cur.Val, 10, 64)
		if err != nil {
			return nil, parseErrorf("invalid integer %q", p.cur.Val)
		}
		p.advance()
		return engine.NumLit(n), nil

	case TokenString:
		s := p.cur.Val
		p.advance()
		return engine.TextLit(s), nil

	case TokenPunct:
		if p.is("[") {
			return p.list()
		}
		return nil, parseErrorf("unexpected %q", p.cur.Val)

	default:
		return nil, parseErrorf("unexpected token")
	}
}

func (p *Parser) argList(closing string) ([]engine.Term, error) {
	var args []engine.Term
	if p.is(closing) {
		p.advance()
		return args, nil
	}
	for {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		if p.is(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expect(closing); err != nil {
		return nil, err
	}
	return args, nil
}

// list parses `[a,b,c]`, `[]`, or `[H|T]` list sugar into nested
// Cons/Nil compounds (spec §3).
func (p *Parser) list() (engine.Term, error) {
	p.advance() // consume '['
	if p.is("]") {
		p.advance()
		return engine.Nil, nil
	}

	var items []engine.Term
	for {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		items = append(items, t)
		if p.is(",") {
			p.advance()
			continue
		}
		break
	}

	tail := engine.Term(engine.Nil)
	if p.is("|") {
		p.advance()
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		tail = t
	}
	if err := p.expect("]"); err != nil {
		return nil, err
	}

	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = engine.Cons(items[i], result)
	}
	return result, nil
}
