package engine

// AnswerStream is a lazy, pull-driven sequence of substitutions
// produced by a Resolver — the external contract of spec §6: each
// pull is a "next" signal, and Close is "done". It is grounded on the
// teacher's solutions.go/interpreter.go QueryContext: a producer
// goroutine drives the recursive solve forward exactly one step past
// the last demanded answer, synchronizing with the consumer over a
// pair of channels so there is never more than one goroutine running
// at a time — the single-threaded, cooperative model of spec §5.
type AnswerStream struct {
	more chan bool
	next chan *Env
	done bool
	err  error
}

func newAnswerStream(r *Resolver, goal Term, env *Env) *AnswerStream {
	s := &AnswerStream{
		more: make(chan bool),
		next: make(chan *Env),
	}

	go func() {
		defer close(s.next)
		defer func() {
			if rec := recover(); rec != nil {
				if _, ok := rec.(depthOverflow); ok {
					s.err = ErrStackOverflow
					return
				}
				panic(rec) // not ours to handle.
			}
		}()
		if !<-s.more {
			return // Close was called before the first Next.
		}
		r.solve(goal, env, func(env1 *Env) bool {
			s.next <- env1
			return <-s.more
		})
	}()

	return s
}

// Err returns the error that ended the search early, if any — in
// practice only ErrStackOverflow (spec §7 *StackOverflow*). It is nil
// while the stream is still producing answers, and nil if the search
// simply exhausted or was Closed.
func (s *AnswerStream) Err() error { return s.err }

// Next demands the next answer. It returns false when the search is
// exhausted or the stream has been closed; otherwise the new
// substitution is available via Env.
func (s *AnswerStream) Next() (*Env, bool) {
	if s.done {
		return nil, false
	}
	s.more <- true
	env, ok := <-s.next
	if !ok {
		s.done = true
		return nil, false
	}
	return env, true
}

// Close releases every pending choice point without taking another
// answer — the "done" signal of spec §6. It is safe to call Close
// more than once, and safe to skip it once Next has returned false.
func (s *AnswerStream) Close() {
	if s.done {
		return
	}
	s.done = true
	close(s.more)
	<-s.next // drain so the producer goroutine can exit.
}
