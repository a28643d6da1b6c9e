// Package monolog is the embeddable facade over engine: it owns a
// knowledge base, the process-wide occurs-check flag, and a renamer
// shared across queries, and exposes the REPL-shaped operations of
// spec §4.5 and §6 (assert, clear, snapshot, query, occurs-check
// toggle) without exposing engine's internals to callers that just
// want to run a session.
package monolog

import (
	"sync"

	"github.com/monolog-lang/monolog/engine"
)

// Interpreter is a single Prolog session: one knowledge base, one
// occurs-check flag, one renamer whose scope counter is shared by
// every query issued against it so that clause instantiations from
// different queries never collide (spec §4.3).
type Interpreter struct {
	mu          sync.Mutex
	kb          *engine.KnowledgeBase
	renamer     *engine.Renamer
	occursCheck bool
	hooks       *engine.Hooks
	maxDepth    int
}

// New returns an empty session with the occurs check off, matching
// the reference default (spec §9 forbids toggling mid-query but says
// nothing about the starting value; off is the permissive default
// that lets scenario 2's cyclic second answer through unless the
// caller opts in).
func New() *Interpreter {
	return &Interpreter{
		kb:      engine.NewKnowledgeBase(),
		renamer: engine.NewRenamer(),
	}
}

// SetOccursCheck flips the process-wide flag (`:o`/`:occurs`). Per
// spec §9's Open Question resolution, callers must not call this
// while a Solutions from this Interpreter is still open; doing so is
// undefined the same way the source leaves it undefined.
func (i *Interpreter) SetOccursCheck(on bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.occursCheck = on
}

// OccursCheck reports the current flag value.
func (i *Interpreter) OccursCheck() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.occursCheck
}

// SetHooks installs resolution tracing hooks (the supplemented
// tracing feature; see internal/trace) used by every query issued
// after this call. A nil argument disables tracing.
func (i *Interpreter) SetHooks(h *engine.Hooks) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.hooks = h
}

// SetMaxDepth overrides the resolver's recursion bound (see
// engine.Resolver.MaxDepth). Zero restores the default.
func (i *Interpreter) SetMaxDepth(n int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.maxDepth = n
}

// Assert appends clause to the knowledge base (spec §4.5 `assert`).
func (i *Interpreter) Assert(c engine.Clause) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.kb.Assert(c)
}

// Clear empties the knowledge base (`:clear`).
func (i *Interpreter) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.kb.Clear()
}

// Snapshot renders the knowledge base, optionally filtered to one
// predicate indicator, for `:show`.
func (i *Interpreter) Snapshot(filter *engine.PredicateIndicator) string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.kb.Snapshot(filter)
}

// Query starts resolving goal and returns a lazy Solutions over it.
// goal is always evaluated at scope 0, the query's own scope; the
// top-level variables the caller can read back out of each answer are
// those that occur, unwalked, in goal itself (spec §6's output
// contract: "each top-level variable appearing in the original
// query").
func (i *Interpreter) Query(goal engine.Term) *Solutions {
	i.mu.Lock()
	r := &engine.Resolver{
		KB:          i.kb,
		Renamer:     i.renamer,
		Hooks:       i.hooks,
		OccursCheck: &i.occursCheck,
		MaxDepth:    i.maxDepth,
	}
	i.mu.Unlock()

	vars := queryVars(goal)
	stream := r.Solve(goal, nil)
	return &Solutions{stream: stream, vars: vars}
}

// queryVars collects the distinct variables occurring in goal, in
// first-occurrence, depth-first, left-to-right order, skipping
// wildcards (spec §6: "excluding wildcards and variables introduced
// by renaming" — goal is unresolved and unrenamed at this point, so
// every Var found here is, by construction, one the caller wrote).
func queryVars(goal engine.Term) []engine.Var {
	var vars []engine.Var
	seen := make(map[engine.Var]bool)
	var walk func(t engine.Term)
	walk = func(t engine.Term) {
		switch v := t.(type) {
		case engine.Var:
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		case *engine.Compound:
			for _, a := range v.Args {
				walk(a)
			}
		case engine.Conjunction:
			walk(v.Left)
			walk(v.Right)
		case engine.Disjunction:
			walk(v.Left)
			walk(v.Right)
		case engine.Negation:
			walk(v.Inner)
		}
	}
	walk(goal)
	return vars
}
