package borker

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/borker-run/internal/assets"
	"github.com/vovakirdan/borker-run/internal/audio"
	"github.com/vovakirdan/borker-run/internal/config"
	"github.com/vovakirdan/borker-run/internal/flow"
	"github.com/vovakirdan/borker-run/internal/progress"
)

const frame = 16 * time.Millisecond

// scriptedUI resolves every dialogue line immediately.
type scriptedUI struct {
	lines    []Line
	banners  []Banner
	menus    []HomeMenu
	progress float64
	clears   int
}

func (u *scriptedUI) ShowHome(m HomeMenu)   { u.menus = append(u.menus, m) }
func (u *scriptedUI) ShowProgress(b Banner) { u.banners = append(u.banners, b) }
func (u *scriptedUI) SetProgress(p float64) { u.progress = p }
func (u *scriptedUI) Clear()                { u.clears++ }
func (u *scriptedUI) ClearDialogue()        {}
func (u *scriptedUI) DialogueOpen() bool    { return false }
func (u *scriptedUI) Dismiss()              {}

func (u *scriptedUI) Say(l Line) *flow.Signal {
	u.lines = append(u.lines, l)
	return flow.Completed()
}

func (u *scriptedUI) said(text string) bool {
	for _, l := range u.lines {
		if l.Text == text {
			return true
		}
	}
	return false
}

// heldUI keeps every dialogue line open until release is called.
type heldUI struct {
	scriptedUI
	pending []*flow.Signal
}

func (u *heldUI) Say(l Line) *flow.Signal {
	u.lines = append(u.lines, l)
	sig := flow.NewSignal()
	u.pending = append(u.pending, sig)
	return sig
}

func (u *heldUI) release() {
	for _, sig := range u.pending {
		sig.Fire()
	}
	u.pending = nil
}

// newHeldScene builds a scene whose dialogue waits for release.
func newHeldScene(t *testing.T, cfg config.BorkerConfig) (*Scene, *heldUI) {
	t.Helper()
	ui := &heldUI{}
	s := NewScene(cfg, 42, Deps{
		Assets:   assets.MustDefault(),
		Audio:    &audio.Recorder{},
		UI:       ui,
		Progress: progress.NewMemory(progress.Progress{}),
		Logger:   log.New(io.Discard),
	})
	return s, ui
}

// runScene processes s for d in fixed frames.
func runScene(s *Scene, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		s.Process(frame)
	}
}

type testScene struct {
	*Scene
	ui    *scriptedUI
	audio *audio.Recorder
	store *progress.Memory
}

func newTestScene(t *testing.T, cfg config.BorkerConfig) *testScene {
	t.Helper()
	ts := &testScene{
		ui:    &scriptedUI{},
		audio: &audio.Recorder{},
		store: progress.NewMemory(progress.Progress{}),
	}
	ts.Scene = NewScene(cfg, 42, Deps{
		Assets:   assets.MustDefault(),
		Audio:    ts.audio,
		UI:       ts.ui,
		Progress: ts.store,
		Logger:   log.New(io.Discard),
	})
	return ts
}

// run processes the scene for d in fixed frames.
func (ts *testScene) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		ts.Process(frame)
	}
}

// saved loads what the scene persisted.
func (ts *testScene) saved(t *testing.T) progress.Progress {
	t.Helper()
	p, err := ts.store.Load()
	require.NoError(t, err)
	return p
}

func defaultTestConfig() config.BorkerConfig {
	return config.DefaultBorkerConfig()
}

func defaultSpec() assets.ModelSpec {
	return mustModel(assets.MustDefault(), "mrborker")
}
