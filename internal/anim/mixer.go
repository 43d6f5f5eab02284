// Package anim plays named animation clips with cross-fading.
//
// The mixer only tracks clip time and blend weights; front ends read the
// active clip and its phase to pick a sprite frame.
package anim

import (
	"time"

	"github.com/vovakirdan/borker-run/internal/flow"
)

// Clip is a named animation of fixed length.
type Clip struct {
	Name     string
	Duration time.Duration
	Frames   int
}

// Loop controls what happens when an action reaches the end of its clip.
type Loop int

const (
	LoopRepeat Loop = iota
	LoopOnce
)

type fade struct {
	from, to float64
	dur      time.Duration
	elapsed  time.Duration
}

func (f *fade) active() bool {
	return f.dur > 0 && f.elapsed < f.dur
}

func (f *fade) value() float64 {
	if f.dur <= 0 {
		return f.to
	}
	t := float64(f.elapsed) / float64(f.dur)
	if t > 1 {
		t = 1
	}
	return f.from + (f.to-f.from)*t
}

// Action is the playback state of one clip inside a mixer.
type Action struct {
	clip      Clip
	loop      Loop
	clamp     bool
	time      time.Duration
	timeScale float64
	weight    float64
	fade      fade
	playing   bool
	finished  *flow.Signal
}

func newAction(c Clip) *Action {
	return &Action{clip: c, timeScale: 1, finished: flow.NewSignal()}
}

// Clip returns the clip this action plays.
func (a *Action) Clip() Clip { return a.clip }

// SetLoop configures the loop mode. With clamp set a finished once-clip holds
// its last frame instead of stopping.
func (a *Action) SetLoop(l Loop, clamp bool) *Action {
	a.loop = l
	a.clamp = clamp
	return a
}

// Reset rewinds the action and arms a fresh finish signal.
func (a *Action) Reset() *Action {
	a.time = 0
	a.playing = false
	a.finished = flow.NewSignal()
	return a
}

// SetTimeScale sets the playback speed multiplier.
func (a *Action) SetTimeScale(s float64) *Action {
	a.timeScale = s
	return a
}

// SetWeight sets the blend weight and cancels any fade.
func (a *Action) SetWeight(w float64) *Action {
	a.weight = w
	a.fade = fade{}
	return a
}

// FadeIn ramps the weight from 0 to 1 over d.
func (a *Action) FadeIn(d time.Duration) *Action {
	a.fade = fade{from: 0, to: 1, dur: d}
	a.weight = a.fade.value()
	return a
}

// FadeOut ramps the weight from its current value to 0 over d.
func (a *Action) FadeOut(d time.Duration) *Action {
	a.fade = fade{from: a.weight, to: 0, dur: d}
	return a
}

// Play starts the action.
func (a *Action) Play() *Action {
	a.playing = true
	return a
}

// Playing reports whether the action is advancing.
func (a *Action) Playing() bool { return a.playing }

// Weight returns the current blend weight.
func (a *Action) Weight() float64 { return a.weight }

// Time returns the playback position within the clip.
func (a *Action) Time() time.Duration { return a.time }

// Phase returns the playback position as a fraction of the clip length.
func (a *Action) Phase() float64 {
	if a.clip.Duration <= 0 {
		return 0
	}
	return float64(a.time) / float64(a.clip.Duration)
}

// Frame returns the sprite frame index for the current phase.
func (a *Action) Frame() int {
	if a.clip.Frames <= 1 {
		return 0
	}
	f := int(a.Phase() * float64(a.clip.Frames))
	if f >= a.clip.Frames {
		f = a.clip.Frames - 1
	}
	return f
}

// Finished returns the signal fired when a once-clip reaches its end.
// Looping clips never fire it.
func (a *Action) Finished() *flow.Signal { return a.finished }

func (a *Action) update(delta time.Duration) {
	if a.fade.active() {
		a.fade.elapsed += delta
		a.weight = a.fade.value()
		if a.weight == 0 && a.fade.to == 0 {
			a.playing = false
		}
	}
	if !a.playing {
		return
	}
	a.time += time.Duration(float64(delta) * a.timeScale)
	d := a.clip.Duration
	if d <= 0 {
		if a.loop == LoopOnce {
			a.finish()
		}
		return
	}
	if a.time < d {
		return
	}
	if a.loop == LoopRepeat {
		a.time %= d
		return
	}
	a.time = d
	a.finish()
}

func (a *Action) finish() {
	if !a.clamp {
		a.playing = false
		a.weight = 0
	}
	a.finished.Fire()
}

// Mixer owns the actions of one model.
type Mixer struct {
	actions map[string]*Action
	order   []*Action
}

// NewMixer creates an empty mixer.
func NewMixer() *Mixer {
	return &Mixer{actions: make(map[string]*Action)}
}

// ClipAction returns the action for c, creating it on first use.
func (m *Mixer) ClipAction(c Clip) *Action {
	if a, ok := m.actions[c.Name]; ok {
		return a
	}
	a := newAction(c)
	m.actions[c.Name] = a
	m.order = append(m.order, a)
	return a
}

// Update advances every action by delta.
func (m *Mixer) Update(delta time.Duration) {
	for _, a := range m.order {
		a.update(delta)
	}
}

// Dominant returns the playing action with the largest weight, or nil.
func (m *Mixer) Dominant() *Action {
	var best *Action
	for _, a := range m.order {
		if !a.playing {
			continue
		}
		if best == nil || a.weight > best.weight {
			best = a
		}
	}
	return best
}
