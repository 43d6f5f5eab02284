package audio

// Note is a pitch held for a number of beats. A zero pitch is a rest.
type Note struct {
	Hz    float64
	Beats float64
}

// Track is a short looping melody.
type Track struct {
	BPM   float64
	Wave  WaveType
	Gain  float64
	Notes []Note
}

const (
	rest = 0.0
	c4   = 261.63
	d4   = 293.66
	e4   = 329.63
	f4   = 349.23
	g4   = 392.00
	a4   = 440.00
	bb4  = 466.16
	b4   = 493.88
	c5   = 523.25
	d5   = 587.33
	e5   = 659.25
	g3   = 196.00
	a3   = 220.00
	e3   = 164.81
	d3   = 146.83
)

// Tracks holds every track the game can play, keyed by name.
var Tracks = map[string]Track{
	"dance": {
		BPM: 132, Wave: WaveSquare, Gain: 0.12,
		Notes: []Note{
			{c4, 0.5}, {e4, 0.5}, {g4, 0.5}, {e4, 0.5},
			{f4, 0.5}, {a4, 0.5}, {c5, 1},
			{g4, 0.5}, {e4, 0.5}, {d4, 0.5}, {e4, 0.5}, {c4, 1}, {rest, 1},
		},
	},
	"whatIsLove": {
		BPM: 124, Wave: WaveSaw, Gain: 0.1,
		Notes: []Note{
			{a3, 0.5}, {a3, 0.5}, {c4, 0.5}, {a3, 0.5},
			{g3, 1}, {e3, 1},
			{a3, 0.5}, {c4, 0.5}, {d4, 0.5}, {e4, 0.5}, {d4, 1}, {rest, 1},
		},
	},
	"bossTheme": {
		BPM: 150, Wave: WaveSquare, Gain: 0.12,
		Notes: []Note{
			{d3, 0.25}, {d3, 0.25}, {d4, 0.5}, {a3, 0.5}, {rest, 0.25}, {bb4, 0.25},
			{a4, 0.5}, {g4, 0.5}, {f4, 0.5}, {d4, 0.25}, {f4, 0.25}, {g4, 1},
		},
	},
	"dialogueTheme": {
		BPM: 90, Wave: WaveSine, Gain: 0.15,
		Notes: []Note{
			{e4, 1}, {g4, 1}, {b4, 1}, {a4, 1},
			{g4, 1}, {e4, 1}, {d4, 2},
		},
	},
	"death": {
		BPM: 80, Wave: WaveSine, Gain: 0.15,
		Notes: []Note{
			{e5, 0.5}, {d5, 0.5}, {c5, 0.5}, {b4, 0.5}, {a4, 2}, {rest, 2},
		},
	},
}
