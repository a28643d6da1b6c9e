package engine

import "errors"

// ErrStackOverflow marks a resolution that was aborted for unbounded
// recursion — spec §7 *StackOverflow*, documented as possible (the
// scenario 2 example: "plus(A, B, B) on second answer with strict
// occurs check") and explicitly allowed to become a reported error
// rather than process termination. A genuine Go stack overflow is a
// fatal runtime error recover cannot catch, so Resolver.solveAt counts
// depth and panics a package-private depthOverflow well before the
// real stack would be exhausted; AnswerStream's producer goroutine is
// the only place that panic is recovered, and it surfaces here as
// this sentinel via AnswerStream.Err.
var ErrStackOverflow = errors.New("engine: recursion exceeded the configured depth limit")
