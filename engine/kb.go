package engine

import "strings"

// PredicateIndicator names a procedure by functor and arity, the
// secondary index spec §3 allows a knowledge base to maintain.
type PredicateIndicator struct {
	Name  string
	Arity int
}

func (pi PredicateIndicator) String() string {
	return pi.Name + "/" + itoa(pi.Arity)
}

func itoa(n int) string {
	// Arities are small and non-negative; avoid importing strconv
	// for a one-liner used only in diagnostics.
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func indicatorOf(c Clause) PredicateIndicator {
	switch h := c.Head().(type) {
	case Atom:
		return PredicateIndicator{Name: string(h), Arity: 0}
	case *Compound:
		return PredicateIndicator{Name: string(h.Functor), Arity: len(h.Args)}
	default:
		panic("engine: clause head is neither Atom nor *Compound")
	}
}

// KnowledgeBase is an ordered, append-only (until Clear) sequence of
// clauses, secondarily indexed by predicate indicator so Iter doesn't
// have to scan the whole sequence for an unrelated predicate. Spec
// §4.5: "insertion order is the search order ... preserve insertion
// order within each bucket."
type KnowledgeBase struct {
	clauses []Clause
	index   map[PredicateIndicator][]Clause
}

// NewKnowledgeBase returns an empty knowledge base.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{index: map[PredicateIndicator][]Clause{}}
}

// Assert appends clause to the knowledge base. There is no duplicate
// detection (spec §4.5).
func (kb *KnowledgeBase) Assert(c Clause) {
	kb.clauses = append(kb.clauses, c)
	pi := indicatorOf(c)
	kb.index[pi] = append(kb.index[pi], c)
}

// Clear empties the knowledge base.
func (kb *KnowledgeBase) Clear() {
	kb.clauses = nil
	kb.index = map[PredicateIndicator][]Clause{}
}

// Iter returns the clauses matching name/arity, in insertion order.
// The returned slice must not be mutated by the caller.
func (kb *KnowledgeBase) Iter(name string, arity int) []Clause {
	return kb.index[PredicateIndicator{Name: name, Arity: arity}]
}

// Snapshot renders every clause, one per line, in insertion order —
// the text `:show` displays (spec §4.5). When filter is non-nil, only
// clauses matching that predicate indicator are rendered (the
// supplemented filtered form of §4.5 in SPEC_FULL.md).
func (kb *KnowledgeBase) Snapshot(filter *PredicateIndicator) string {
	var sb strings.Builder
	for _, c := range kb.clauses {
		if filter != nil && indicatorOf(c) != *filter {
			continue
		}
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Snapshot, when called without a filter as kb.Snapshot(nil), is
// spec §4.5's unfiltered snapshot() operation.
