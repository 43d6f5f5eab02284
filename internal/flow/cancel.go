package flow

import "sync/atomic"

// Source issues cancellation tokens. Cancel invalidates every token issued so
// far; tokens issued afterwards are live again.
type Source struct {
	gen atomic.Uint64
}

// Token returns a token bound to the current generation.
func (s *Source) Token() Token {
	return Token{src: s, gen: s.gen.Load()}
}

// Cancel invalidates all outstanding tokens.
func (s *Source) Cancel() {
	s.gen.Add(1)
}

// Generation returns the current generation counter.
func (s *Source) Generation() uint64 {
	return s.gen.Load()
}

// Token observes cancellation of the Source it came from.
// The zero Token is never cancelled.
type Token struct {
	src *Source
	gen uint64
}

// Cancelled reports whether the source was cancelled after the token was issued.
func (t Token) Cancelled() bool {
	if t.src == nil {
		return false
	}
	return t.src.gen.Load() != t.gen
}
