package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays tracks on the default output device.
type Speaker struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	current *beep.Ctrl
	name    string
	volume  float64
	logger  *log.Logger
}

// NewSpeaker initializes the output device. volume is a linear gain in (0, 1].
func NewSpeaker(volume float64, logger *log.Logger) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open output device: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger.WithPrefix("borker-audio"),
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play implements Player.
func (s *Speaker) Play(name string, loop bool) error {
	track, ok := Tracks[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}

	var stream beep.Streamer
	if loop {
		stream = newRepeater(track)
	} else {
		stream = NewMelody(track, sampleRate)
	}
	ctrl := &beep.Ctrl{Streamer: s.withVolume(stream)}

	speaker.Lock()
	s.mu.Lock()
	if s.current != nil {
		s.current.Paused = true
	}
	s.mixer.Clear()
	s.mixer.Add(ctrl)
	s.current = ctrl
	s.name = name
	s.mu.Unlock()
	speaker.Unlock()

	s.logger.Debug("playing track", "name", name, "loop", loop)
	return nil
}

// Current returns the name of the playing track.
func (s *Speaker) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mu.Lock()
	s.mixer.Clear()
	s.current = nil
	s.mu.Unlock()
	speaker.Unlock()
	speaker.Close()
}

func (s *Speaker) withVolume(st beep.Streamer) beep.Streamer {
	if s.volume <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	if s.volume >= 1 {
		return st
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(s.volume)}
}

// repeater restarts the melody whenever it runs out, so a looping track never
// ends the stream.
type repeater struct {
	track Track
	cur   beep.Streamer
}

func newRepeater(t Track) *repeater {
	return &repeater{track: t, cur: NewMelody(t, sampleRate)}
}

func (r *repeater) Stream(samples [][2]float64) (int, bool) {
	if len(r.track.Notes) == 0 {
		clear(samples)
		return len(samples), true
	}
	filled := 0
	for filled < len(samples) {
		n, ok := r.cur.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			r.cur = NewMelody(r.track, sampleRate)
		}
	}
	return filled, true
}

func (r *repeater) Err() error { return nil }
