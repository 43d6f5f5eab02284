// Package audio plays the game's music tracks.
//
// Tracks are synthesized at runtime from short note sequences, so the binary
// carries no audio files. Only one track plays at a time.
package audio

import (
	"errors"
	"fmt"
)

// ErrUnknownTrack is returned when a track name is not defined.
var ErrUnknownTrack = errors.New("audio: unknown track")

// Player starts music tracks by name.
type Player interface {
	// Play stops the current track and starts name, looping it if loop is set.
	Play(name string, loop bool) error
}

// Nop validates track names but produces no sound.
// It is used for SSH sessions, tests and --mute.
type Nop struct{}

// Play implements Player.
func (Nop) Play(name string, _ bool) error {
	if _, ok := Tracks[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}
	return nil
}

// Recorder is a Player that remembers what was requested.
type Recorder struct {
	Played []string
	Looped []bool
}

// Play implements Player.
func (r *Recorder) Play(name string, loop bool) error {
	if err := (Nop{}).Play(name, loop); err != nil {
		return err
	}
	r.Played = append(r.Played, name)
	r.Looped = append(r.Looped, loop)
	return nil
}

// Current returns the last requested track, or "".
func (r *Recorder) Current() string {
	if len(r.Played) == 0 {
		return ""
	}
	return r.Played[len(r.Played)-1]
}
