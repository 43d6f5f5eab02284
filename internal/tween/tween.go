// Package tween interpolates values over time.
//
// A tween is armed with a start value, an end value and a duration, then
// advanced by Process with the frame delta. Value reads the interpolated value
// at the current point in time.
package tween

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/borker-run/internal/core"
)

// ErrInvalidMode is the panic value used when a tween has an unknown mode.
var ErrInvalidMode = errors.New("tween: invalid mode")

// Mode selects the interpolation function.
type Mode int

const (
	// Linear interpolates continuously between start and end.
	Linear Mode = iota
	// Step holds start for the first half of the tween and end for the rest.
	Step
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Step:
		return "step"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Linear || m == Step
}

// Interpolator blends two values at normalized progress t in [0, 1].
type Interpolator[T any] func(a, b T, t float64) T

// Tween interpolates a value of type T between two endpoints.
// The zero value is not usable; construct one with New, Number or Vector.
type Tween[T any] struct {
	mode     Mode
	lerp     Interpolator[T]
	start    T
	end      T
	duration time.Duration
	elapsed  time.Duration
	active   bool
	onEnd    func()
}

// New creates a tween with the given mode and interpolator.
// Panics with ErrInvalidMode if mode is unknown.
func New[T any](mode Mode, lerp Interpolator[T]) *Tween[T] {
	if !mode.Valid() {
		panic(fmt.Errorf("%w: %s", ErrInvalidMode, mode))
	}
	return &Tween[T]{mode: mode, lerp: lerp}
}

// Number creates a scalar tween.
func Number(mode Mode) *Tween[float64] {
	return New(mode, Lerp)
}

// Vector creates a tween over world-space vectors.
func Vector(mode Mode) *Tween[core.Vec3] {
	return New(mode, LerpVec)
}

// Tween arms the tween. Elapsed time resets to zero and any tween already in
// flight is overwritten, including its completion callback. onComplete may be
// nil. A non-positive duration completes immediately.
func (tw *Tween[T]) Tween(start, end T, duration time.Duration, onComplete func()) {
	tw.start = start
	tw.end = end
	tw.duration = duration
	tw.elapsed = 0
	tw.onEnd = onComplete
	tw.active = true
	if duration <= 0 {
		tw.finish()
	}
}

// Process advances the tween by delta. When the elapsed time reaches the
// duration the tween stops and the completion callback fires exactly once.
func (tw *Tween[T]) Process(delta time.Duration) {
	if !tw.active {
		return
	}
	tw.elapsed += delta
	if tw.elapsed >= tw.duration {
		tw.finish()
	}
}

func (tw *Tween[T]) finish() {
	tw.elapsed = tw.duration
	tw.active = false
	if cb := tw.onEnd; cb != nil {
		tw.onEnd = nil
		cb()
	}
}

// Value returns the interpolated value at the current progress.
// Before the first Tween call it returns the zero value of T.
func (tw *Tween[T]) Value() T {
	t := tw.Progress()
	switch tw.mode {
	case Linear:
		return tw.lerp(tw.start, tw.end, t)
	case Step:
		if t < 0.5 {
			return tw.start
		}
		return tw.end
	default:
		panic(fmt.Errorf("%w: %s", ErrInvalidMode, tw.mode))
	}
}

// Progress returns the normalized progress in [0, 1].
// A zero duration reports full progress.
func (tw *Tween[T]) Progress() float64 {
	if tw.duration <= 0 {
		return 1
	}
	return float64(tw.elapsed) / float64(tw.duration)
}

// Tweening reports whether the tween is still running.
func (tw *Tween[T]) Tweening() bool {
	return tw.active
}

// Mode returns the interpolation mode.
func (tw *Tween[T]) Mode() Mode {
	return tw.mode
}

// SetMode changes the interpolation mode. Panics with ErrInvalidMode if mode
// is unknown.
func (tw *Tween[T]) SetMode(mode Mode) {
	if !mode.Valid() {
		panic(fmt.Errorf("%w: %s", ErrInvalidMode, mode))
	}
	tw.mode = mode
}

// End returns the value the tween is heading towards.
func (tw *Tween[T]) End() T {
	return tw.end
}
