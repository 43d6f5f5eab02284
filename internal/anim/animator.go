package anim

import (
	"fmt"
	"time"

	"github.com/vovakirdan/borker-run/internal/flow"
)

// DefaultFade is the cross-fade length used when PlayOptions.Fade is zero.
const DefaultFade = 500 * time.Millisecond

// ClipSource resolves clip names to clips.
type ClipSource interface {
	CloneAnimation(name string) (Clip, error)
}

// PlayOptions configures a single Play call.
type PlayOptions struct {
	Once      bool
	TimeScale float64
	Fade      time.Duration
}

// Animator plays one clip at a time on a mixer, cross-fading from the
// previously played clip.
type Animator struct {
	src    ClipSource
	mixer  *Mixer
	cache  map[string]*Action
	last   string
	played int
}

// NewAnimator creates an animator drawing clips from src.
func NewAnimator(src ClipSource) *Animator {
	return &Animator{
		src:   src,
		mixer: NewMixer(),
		cache: make(map[string]*Action),
	}
}

// Play makes name the active clip and returns a signal that fires when a
// once-clip finishes. The signal of a looping clip never fires.
// Panics if the clip name is unknown.
func (an *Animator) Play(name string, opts PlayOptions) *flow.Signal {
	action, ok := an.cache[name]
	if !ok {
		clip, err := an.src.CloneAnimation(name)
		if err != nil {
			panic(fmt.Errorf("anim: play %q: %w", name, err))
		}
		action = an.mixer.ClipAction(clip)
		an.cache[name] = action
	}

	if opts.Once {
		action.SetLoop(LoopOnce, true)
	} else {
		action.SetLoop(LoopRepeat, false)
	}

	fadeDur := opts.Fade
	if fadeDur <= 0 {
		fadeDur = DefaultFade
	}
	if an.last != "" && an.last != name {
		an.cache[an.last].FadeOut(fadeDur)
	}

	scale := opts.TimeScale
	if scale == 0 {
		scale = 1
	}
	an.last = name
	an.played++
	action.Reset().SetTimeScale(scale).SetWeight(1).FadeIn(fadeDur).Play()
	return action.Finished()
}

// Update advances the underlying mixer.
func (an *Animator) Update(delta time.Duration) {
	an.mixer.Update(delta)
}

// Last returns the name of the last played clip.
func (an *Animator) Last() string {
	return an.last
}

// Current returns the last played action, or nil if nothing played yet.
func (an *Animator) Current() *Action {
	if an.last == "" {
		return nil
	}
	return an.cache[an.last]
}

// Plays returns how many times Play was called.
func (an *Animator) Plays() int {
	return an.played
}

// Mixer exposes the underlying mixer for renderers.
func (an *Animator) Mixer() *Mixer {
	return an.mixer
}
