package borker

import (
	"time"

	"github.com/vovakirdan/borker-run/internal/anim"
	"github.com/vovakirdan/borker-run/internal/flow"
)

// Machine holds a discrete state with enter and exit hooks.
type Machine[S comparable] struct {
	state   S
	onEnter func(S)
	onExit  func(S)
}

// NewMachine creates a machine in initial. The hooks may be nil; the enter
// hook is not run for the initial state.
func NewMachine[S comparable](initial S, onEnter, onExit func(S)) Machine[S] {
	return Machine[S]{state: initial, onEnter: onEnter, onExit: onExit}
}

// State returns the current state.
func (m *Machine[S]) State() S { return m.state }

// Set runs exit(old), stores next, then runs enter(next). It does so even
// when next equals the current state.
func (m *Machine[S]) Set(next S) {
	if m.onExit != nil {
		m.onExit(m.state)
	}
	m.state = next
	if m.onEnter != nil {
		m.onEnter(next)
	}
}

// entity is a lane-bound object with a state machine and an animator.
type entity[S comparable] struct {
	sceneObject
	fsm      Machine[S]
	animator *anim.Animator
	// clipDone is the finish signal of the clip started by the last state
	// change.
	clipDone *flow.Signal
}

// State returns the entity's current state.
func (e *entity[S]) State() S { return e.fsm.State() }

// SetState changes the entity's state, running the hooks.
func (e *entity[S]) SetState(s S) { e.fsm.Set(s) }

// play starts a clip if the animator exists. Before the model is loaded there
// is nothing to animate and the returned signal has already fired.
func (e *entity[S]) play(name string, opts anim.PlayOptions) {
	if e.animator == nil {
		e.clipDone = flow.Completed()
		return
	}
	e.clipDone = e.animator.Play(name, opts)
}

// Animator returns the entity's animator, or nil before attach.
func (e *entity[S]) Animator() *anim.Animator { return e.animator }

// processEntity advances the animator and the lane.
func (e *entity[S]) processEntity(delta time.Duration) {
	if e.animator != nil {
		e.animator.Update(delta)
	}
	e.sceneObject.Process(delta)
}
