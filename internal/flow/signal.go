// Package flow provides the cooperative sequencing primitives used by
// cutscenes, attacks and death sequences: single-use completion signals,
// generation-based cancellation and a per-frame chain runner.
package flow

import "sync"

// Signal is a single-use completion event. Firing it more than once is a
// no-op. It is safe to use from multiple goroutines, although the game itself
// only fires signals from the frame loop.
type Signal struct {
	once sync.Once
	done chan struct{}
}

// NewSignal returns an unfired signal.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Completed returns a signal that has already fired.
func Completed() *Signal {
	s := NewSignal()
	s.Fire()
	return s
}

// Fire marks the signal as completed.
func (s *Signal) Fire() {
	s.once.Do(func() { close(s.done) })
}

// Fired reports whether the signal has completed. It never blocks.
func (s *Signal) Fired() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed when the signal fires.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}
