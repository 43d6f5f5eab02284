package borker

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/progress"
	"github.com/vovakirdan/borker-run/internal/registry"
	"github.com/vovakirdan/borker-run/internal/storage"
)

type runLog struct {
	runs []storage.Run
	err  error
}

func (r *runLog) SaveRun(run storage.Run) (int64, error) {
	r.runs = append(r.runs, run)
	return int64(len(r.runs)), r.err
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g := New(opts)
	rc := core.DefaultConfig()
	rc.Seed = 7
	g.Reset(rc)
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(frameWith(actions...), frame)
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists(ID))
	g, err := registry.Create(ID)
	require.NoError(t, err)
	assert.Equal(t, "Borker Run", g.Title())
}

func TestGameIntroThenPlay(t *testing.T) {
	store := progress.NewMemory(progress.Progress{})
	g := newTestGame(t, Options{Progress: store})

	hud := g.HUD()
	assert.Equal(t, "Borker Run", hud.Title)
	assert.Equal(t, "*Bork bork*", hud.Dialogue)
	assert.Equal(t, SpeakerBorker, hud.Speaker)

	for i := 0; i < len(introDialogue); i++ {
		step(g, core.ActionConfirm)
	}
	assert.False(t, g.HUD().DialogueOpen())
	p, err := store.Load()
	require.NoError(t, err)
	assert.True(t, p.IntroShown)

	step(g, core.ActionConfirm)
	_, ok := g.Scene().State().(*RunnerState)
	require.True(t, ok)
	assert.Equal(t, "Progress", g.HUD().Banner)

	for i := 0; i < 60; i++ {
		step(g)
	}
	assert.Greater(t, g.State().Score, 0)
}

func TestGameSkipsIntroWhenShown(t *testing.T) {
	store := progress.NewMemory(progress.Progress{IntroShown: true, CheckpointReached: true})
	g := newTestGame(t, Options{Progress: store})
	assert.False(t, g.HUD().DialogueOpen())

	step(g, core.ActionConfirm)

	_, ok := g.Scene().State().(*BattleState)
	require.True(t, ok)
	assert.Equal(t, "It's over Doggo!! You will never get the letter back!", g.HUD().Dialogue)
}

func TestGameMenuNavigation(t *testing.T) {
	store := progress.NewMemory(progress.Progress{IntroShown: true, CheckpointReached: true})
	g := newTestGame(t, Options{Progress: store})

	step(g, core.ActionDown)
	assert.True(t, g.HUD().Menu[1].Selected)
	step(g, core.ActionConfirm)

	p, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, progress.Progress{}, p)
	_, home := g.Scene().State().(*HomeState)
	assert.True(t, home)
}

func TestGamePause(t *testing.T) {
	store := progress.NewMemory(progress.Progress{IntroShown: true})
	g := newTestGame(t, Options{Progress: store})
	step(g, core.ActionConfirm)
	step(g)
	pos := g.Scene().Player.Position()

	res := step(g, core.ActionPause)
	assert.True(t, res.State.Paused)
	step(g)
	assert.Equal(t, pos, g.Scene().Player.Position())

	res = step(g, core.ActionPause)
	assert.False(t, res.State.Paused)
	assert.Greater(t, g.Scene().Player.Position(), pos)
}

func TestGameCompleteRecordsRun(t *testing.T) {
	runs := &runLog{err: errors.New("disk full")}
	store := progress.NewMemory(progress.Progress{IntroShown: true})
	g := newTestGame(t, Options{Runs: runs, Profile: "alice", Progress: store})
	g.played = 90 * time.Second

	g.onGameComplete()

	require.Len(t, runs.runs, 1)
	assert.Equal(t, "alice", runs.runs[0].Profile)
	assert.True(t, runs.runs[0].Won)
	assert.Equal(t, 90*time.Second, runs.runs[0].Duration)
	assert.Equal(t, "You won!", g.HUD().Dialogue)

	step(g, core.ActionConfirm)
	step(g, core.ActionConfirm)
	assert.True(t, g.State().GameOver)
	assert.True(t, g.State().Won)
}

func TestGameRender(t *testing.T) {
	store := progress.NewMemory(progress.Progress{IntroShown: true})
	g := newTestGame(t, Options{Progress: store})
	step(g, core.ActionConfirm)
	for i := 0; i < 30; i++ {
		step(g)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	assert.NotEmpty(t, strings.TrimSpace(out))
	assert.Contains(t, out, "=o.o=", "the player sprite is drawn")
}

func TestGameRenderPaused(t *testing.T) {
	store := progress.NewMemory(progress.Progress{IntroShown: true})
	g := newTestGame(t, Options{Progress: store})
	step(g, core.ActionConfirm)
	step(g)
	step(g, core.ActionPause)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	assert.Contains(t, scr.Row(11), "PAUSED")
	assert.Contains(t, scr.Row(10), "┌")
}

func TestSpriteBounds(t *testing.T) {
	r := spriteBounds([]string{" ^ ", "=o.o=", "/ \\"}, 10, 20)
	assert.Equal(t, core.NewRect(8, 18, 5, 3), r)
}

func TestViewOrdersFarToNear(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	ts.SetState(NewRunnerState(ts.Scene))
	ts.Process(frame)

	v := ts.View()
	require.NotEmpty(t, v.Drawables)
	for i := 1; i < len(v.Drawables); i++ {
		assert.GreaterOrEqual(t, v.Drawables[i-1].Depth, v.Drawables[i].Depth)
	}
	assert.NotEmpty(t, v.Tiles)
}
