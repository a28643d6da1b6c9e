package monolog

import "github.com/monolog-lang/monolog/engine"

// Binding is one `Name = term` pair of spec §6's output contract.
type Binding struct {
	Name string
	Term engine.Term
}

// Solutions is the lazy answer stream of a single query, matching
// spec §5's lazy-producer model: each Next call drives the resolver
// forward until it finds a new answer or exhausts the search.
// Grounded on the teacher's root-level solutions.go, whose Solutions
// type wraps the same goroutine-driven producer behind a Next/Close
// pair; here the wrapping only adds the query's top-level variable
// names on top of engine.AnswerStream.
type Solutions struct {
	stream *engine.AnswerStream
	vars   []engine.Var
}

// Next demands the next answer (`:n`/`:next`). It reports false once
// the stream is exhausted or a prior Close has been called; callers
// should then check Err.
func (s *Solutions) Next() ([]Binding, bool) {
	env, ok := s.stream.Next()
	if !ok {
		return nil, false
	}
	bindings := make([]Binding, len(s.vars))
	for idx, v := range s.vars {
		bindings[idx] = Binding{Name: v.Name, Term: engine.Resolve(v, env)}
	}
	return bindings, true
}

// Close terminates the stream (`:d`/`:done`), releasing the
// resolver's choice points without exploring further alternatives.
// Safe to call more than once and safe to skip once Next has reported
// exhaustion.
func (s *Solutions) Close() {
	s.stream.Close()
}

// Err reports the terminal error, if any. A query that simply runs
// out of answers reports nil; only an unbounded-recursion abort
// (spec §7's *StackOverflow*) is surfaced here.
func (s *Solutions) Err() error {
	return s.stream.Err()
}
