package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// attack and release ramp each note to avoid clicks.
const envelope = 8 * time.Millisecond

// melody streams one pass over a track's notes.
type melody struct {
	track Track
	rate  beep.SampleRate
	note  int
	pos   int // sample inside the current note
	len   int // samples in the current note
	phase float64
}

// NewMelody returns a streamer that plays track once.
func NewMelody(track Track, rate beep.SampleRate) beep.Streamer {
	m := &melody{track: track, rate: rate}
	m.startNote()
	return m
}

func (m *melody) beat() time.Duration {
	bpm := m.track.BPM
	if bpm <= 0 {
		bpm = 120
	}
	return time.Duration(float64(time.Minute) / bpm)
}

func (m *melody) startNote() {
	m.pos = 0
	m.phase = 0
	if m.note < len(m.track.Notes) {
		beats := m.track.Notes[m.note].Beats
		m.len = m.rate.N(time.Duration(beats * float64(m.beat())))
	}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	edge := m.rate.N(envelope)
	for i := range samples {
		if m.note >= len(m.track.Notes) {
			return i, i > 0
		}
		note := m.track.Notes[m.note]

		var val float64
		if note.Hz > 0 {
			switch m.track.Wave {
			case WaveSine:
				val = math.Sin(2 * math.Pi * m.phase)
			case WaveSquare:
				if m.phase < 0.5 {
					val = 1
				} else {
					val = -1
				}
			case WaveSaw:
				val = 2 * (m.phase - 0.5)
			}
			amp := m.track.Gain
			if m.pos < edge {
				amp *= float64(m.pos) / float64(edge)
			} else if rem := m.len - m.pos; rem < edge {
				amp *= float64(rem) / float64(edge)
			}
			val *= amp
			m.phase += note.Hz / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		m.pos++
		if m.pos >= m.len {
			m.note++
			m.startNote()
		}
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// Length returns the duration of one pass over the track.
func (t Track) Length() time.Duration {
	var beats float64
	for _, n := range t.Notes {
		beats += n.Beats
	}
	bpm := t.BPM
	if bpm <= 0 {
		bpm = 120
	}
	return time.Duration(beats * float64(time.Minute) / bpm)
}
