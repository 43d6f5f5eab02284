package borker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/borker-run/internal/flow"
)

// nilModel is an object whose LoadModel forgets to build a model.
type nilModel struct{ Object }

func (*nilModel) LoadModel(Assets) *Model { return nil }
func (*nilModel) OnEnter(*Scene)          {}
func (*nilModel) OnExit(*Scene)           {}
func (*nilModel) Process(time.Duration)   {}

// recordingState logs the hooks the scene runs.
type recordingState struct {
	name  string
	calls *[]string
}

func (r *recordingState) Name() string              { return r.name }
func (r *recordingState) OnEnter()                  { *r.calls = append(*r.calls, r.name+".enter") }
func (r *recordingState) OnExit()                   { *r.calls = append(*r.calls, r.name+".exit") }
func (r *recordingState) Reset()                    { *r.calls = append(*r.calls, r.name+".reset") }
func (r *recordingState) AfterReset()               { *r.calls = append(*r.calls, r.name+".afterReset") }
func (r *recordingState) Process(time.Duration)     {}
func (r *recordingState) OnPlayerInput(PlayerInput) {}

func TestAddObjectWithoutModelPanics(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	assert.PanicsWithValue(t, ErrNoModel, func() { ts.AddObject(&nilModel{}) })
}

func TestRemoveObjectIsIdempotent(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	c := NewCactus(3)
	ts.AddObject(c)
	require.Len(t, ts.Obstacles(), 1)

	ts.RemoveObject(c)
	ts.RemoveObject(c)

	assert.False(t, c.Live())
	assert.Nil(t, c.Scene())
	assert.Empty(t, ts.Obstacles())
	assert.Len(t, ts.Objects(), 1, "only the player remains")
}

func TestCheckCollision(t *testing.T) {
	tests := []struct {
		name  string
		pos   float64
		row   int
		setup func(ts *testScene)
		want  bool
	}{
		{"touching ranges", 2, 1, nil, true},
		{"overlapping", 1, 1, nil, true},
		{"gap", 2.01, 1, nil, false},
		{"other row", 1, 0, nil, false},
		{"player in the air", 1, 1, func(ts *testScene) { ts.Player.Lane().Floor = FloorAir }, false},
		{"player dead", 1, 1, func(ts *testScene) { ts.Player.SetState(PlayerDeath) }, false},
		{"game completed", 1, 1, func(ts *testScene) { ts.Completed = true }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestScene(t, defaultTestConfig())
			c := NewCactus(3)
			ts.AddObject(c)
			c.Lane().SetRow(tt.row, nil)
			c.SetPosition(tt.pos)
			if tt.setup != nil {
				tt.setup(ts)
			}

			assert.Equal(t, tt.want, ts.CheckCollision())
		})
	}
}

func TestSetStateOrder(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	var calls []string

	ts.SetState(&recordingState{name: "a", calls: &calls})
	ts.SetState(&recordingState{name: "b", calls: &calls})

	assert.Equal(t, []string{"a.enter", "a.exit", "a.reset", "a.afterReset", "b.enter"}, calls)
}

func TestResetReplacesObjectsAndCancelsChains(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	old := ts.Player
	ts.AddObject(NewCactus(3))
	ts.AddObject(NewCloud())

	gate := flow.NewSignal()
	ran := false
	ts.Go(
		func() *flow.Signal { return gate },
		func() *flow.Signal { ran = true; return nil },
	)

	ts.Reset()
	gate.Fire()
	ts.Process(frame)

	assert.False(t, ran, "a chain from before the reset must not resume")
	assert.NotSame(t, old, ts.Player)
	assert.False(t, old.Live())
	assert.Len(t, ts.Objects(), 1)
	assert.Empty(t, ts.Obstacles())
}

func TestProcessSkipsObjectsRemovedMidFrame(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	a := NewCactus(3)
	b := NewCactus(3)
	ts.AddObject(a)
	ts.AddObject(b)
	a.SetPosition(-100)
	b.SetPosition(-100)

	ts.Process(frame)

	assert.Empty(t, ts.Obstacles())
	assert.Len(t, ts.Objects(), 1)
}

func TestRunnerReachesBattleExactlyOnce(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Runner.GameLength = 500
	// Keep the track empty so the run cannot fail.
	cfg.Obstacles.SpawnAhead = 10000
	ts := newTestScene(t, cfg)

	runner := NewRunnerState(ts.Scene)
	ts.SetState(runner)
	require.Equal(t, PlayerMoving, ts.Player.State())

	battles := make(map[*BattleState]bool)
	for i := 0; i < 1500; i++ {
		ts.Process(frame)
		if b, ok := ts.State().(*BattleState); ok {
			battles[b] = true
		}
	}

	assert.Len(t, battles, 1)
	assert.True(t, runner.Finished())
	assert.True(t, ts.saved(t).CheckpointReached)
	assert.True(t, ts.ui.said("You are TOAST now!!!"))
	assert.True(t, ts.ui.said("Not if we stop you Sandwitch!!"))
	assert.Contains(t, ts.audio.Played, "dialogueTheme")
	assert.Contains(t, ts.audio.Played, "bossTheme")
}

func TestRunnerDeathShortensTrack(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	runner := NewRunnerState(ts.Scene)
	ts.SetState(runner)

	c := NewCactus(3)
	ts.AddObject(c)
	c.Lane().SetRow(ts.Player.Row(), nil)
	c.SetPosition(ts.Player.Position() + 1)
	first := ts.Player

	ts.Process(frame)
	assert.Equal(t, PlayerDeath, first.State())
	assert.Equal(t, "death", ts.audio.Current())

	ts.run(2 * time.Second)

	assert.Equal(t, 1, ts.Deaths())
	assert.True(t, ts.ui.said("Don't give up!! Let's keep going Tashawasha!!"))
	assert.Equal(t, 5500.0, runner.GameLength)
	assert.NotSame(t, first, ts.Player, "the scene was reset")
	assert.Equal(t, PlayerMoving, ts.Player.State())
	assert.Equal(t, "whatIsLove", ts.audio.Current())
}

func TestRunnerDeathPenaltyFloor(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	runner := NewRunnerState(ts.Scene)
	runner.GameLength = 2200
	ts.SetState(runner)

	runner.die()
	ts.run(2 * time.Second)

	assert.Equal(t, 2000.0, runner.GameLength)
}

func TestBattleVictory(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Battle.Length = time.Second
	ts := newTestScene(t, cfg)
	completed := 0
	ts.onComplete = func() { completed++ }

	battle := NewBattleState(ts.Scene)
	ts.SetState(battle)
	require.NotNil(t, battle.Boss())
	assert.False(t, battle.InDialogue(), "scripted dialogue resolves at once")
	assert.False(t, battle.Boss().Paused)

	// Keep the player out of the boss's way.
	battle.Boss().Paused = true
	ts.run(1100 * time.Millisecond)
	assert.True(t, ts.Completed)

	ts.run(1100 * time.Millisecond)
	assert.Equal(t, 1, completed)
	assert.True(t, ts.ui.said("We did it Tashawasha!!"))
	assert.Equal(t, 0.0, battle.Boss().Model().Scale.X)
}

func TestBattleTimerFrozenInDialogue(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	battle := NewBattleState(ts.Scene)
	ts.SetState(battle)
	battle.inDialogue = true

	ts.run(time.Second)

	assert.Zero(t, battle.Elapsed())
}

func TestBattleDeathShortensFight(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	battle := NewBattleState(ts.Scene)
	ts.SetState(battle)
	battle.Boss().Paused = true
	ts.run(time.Second)
	require.NotZero(t, battle.Elapsed())

	battle.die()
	ts.run(2 * time.Second)

	assert.Equal(t, 90*time.Second, battle.Length)
	assert.True(t, ts.ui.said("Don't give up Tashawasha!! We can beat him!!"))
	assert.Less(t, battle.Elapsed(), time.Second, "the timer restarts after a reset")
}

func TestHomePlayRoutesOnCheckpoint(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	home := NewHomeState(ts.Scene)
	ts.SetState(home)
	assert.Equal(t, PlayerHappy, ts.Player.State())
	assert.True(t, ts.Progress().IntroShown, "intro is marked as shown")
	assert.Equal(t, "dance", ts.audio.Current())

	home.Play()
	_, ok := ts.State().(*RunnerState)
	assert.True(t, ok)

	p := ts.Progress()
	p.CheckpointReached = true
	ts.saveProgress(p)
	home = NewHomeState(ts.Scene)
	ts.SetState(home)
	home.Play()
	_, ok = ts.State().(*BattleState)
	assert.True(t, ok)

	home = NewHomeState(ts.Scene)
	ts.SetState(home)
	home.ResetProgress()
	assert.False(t, ts.Progress().CheckpointReached)
	assert.False(t, ts.saved(t).IntroShown)
}

func TestRunnerIgnoresCollisionsAfterFinish(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Runner.GameLength = 100
	s, ui := newHeldScene(t, cfg)
	runner := NewRunnerState(s)
	s.SetState(runner)

	s.Player.SetPosition(runner.GameLength)
	s.Process(frame)
	require.True(t, runner.Finished())
	require.Equal(t, PlayerIdle, s.Player.State())

	c := NewCactus(3)
	s.AddObject(c)
	c.Lane().SetRow(s.Player.Row(), nil)
	c.SetPosition(s.Player.Position())
	runScene(s, time.Second)

	assert.Zero(t, s.Deaths())
	assert.Equal(t, PlayerIdle, s.Player.State())

	for i := 0; i < 50; i++ {
		if _, ok := s.State().(*BattleState); ok {
			break
		}
		ui.release()
		s.Process(frame)
	}
	_, ok := s.State().(*BattleState)
	assert.True(t, ok, "the boss conversation leads to the battle")
}

func TestRunnerResetClearsFinish(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Runner.GameLength = 100
	s, _ := newHeldScene(t, cfg)
	runner := NewRunnerState(s)
	s.SetState(runner)

	s.Player.SetPosition(runner.GameLength)
	s.Process(frame)
	require.True(t, runner.Finished())

	s.Reset()
	assert.False(t, runner.Finished())
	assert.Equal(t, PlayerMoving, s.Player.State())
}

func TestRunnerFinishLandsAirbornePlayer(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Runner.GameLength = 100
	s, _ := newHeldScene(t, cfg)
	runner := NewRunnerState(s)
	s.SetState(runner)

	s.Player.Jump()
	runScene(s, 400*time.Millisecond)
	require.Equal(t, PlayerAirborne, s.Player.State())
	require.Positive(t, s.Player.Height())

	s.Player.SetPosition(runner.GameLength)
	s.Process(frame)

	require.True(t, runner.Finished())
	assert.Equal(t, PlayerIdle, s.Player.State())
	assert.Zero(t, s.Player.Height())
	assert.Equal(t, FloorGround, s.Player.Lane().Floor)
}

func TestBattleSidestepIntoObstacleDiesOnce(t *testing.T) {
	s, _ := newHeldScene(t, defaultTestConfig())
	battle := NewBattleState(s)
	s.SetState(battle)
	battle.Boss().Paused = true
	require.Equal(t, PlayerIdle, s.Player.State())
	require.Equal(t, 1, s.Player.Row())

	c := NewCactus(3)
	s.AddObject(c)
	c.Lane().SetRow(0, nil)
	c.SetPosition(s.Player.Position())

	s.Player.Move(DirectionRight)
	runScene(s, 2*time.Second)

	assert.Equal(t, 1, s.Deaths())
	assert.Equal(t, PlayerDeath, s.Player.State())
}

func TestHomeMenuDrivenByState(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	p := ts.Progress()
	p.IntroShown = true
	p.CheckpointReached = true
	ts.saveProgress(p)
	home := NewHomeState(ts.Scene)
	ts.SetState(home)
	require.Equal(t, MenuPlay, home.Selected())

	ts.Navigate(1)
	assert.Equal(t, MenuResetProgress, home.Selected())
	require.NotEmpty(t, ts.ui.menus)
	assert.Equal(t, 1, ts.ui.menus[len(ts.ui.menus)-1].Selected)

	ts.Confirm()
	assert.False(t, ts.Progress().CheckpointReached)
	assert.Same(t, home, ts.State())

	ts.Navigate(1)
	assert.Equal(t, MenuPlay, home.Selected(), "the cursor wraps around")
	ts.Navigate(-1)
	assert.Equal(t, MenuResetProgress, home.Selected())
}
