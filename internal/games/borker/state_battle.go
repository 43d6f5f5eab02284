package borker

import (
	"math"
	"time"

	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/flow"
)

// BattleState is the boss fight: survive until the timer runs out.
type BattleState struct {
	scene *Scene
	// Length is how long the player must survive. It shrinks with every
	// death.
	Length time.Duration

	elapsed    time.Duration
	boss       *Sandwitch
	floor      *BattleFloor
	inDialogue bool
}

// NewBattleState creates the boss fight with the configured length.
func NewBattleState(s *Scene) *BattleState {
	return &BattleState{
		scene:  s,
		Length: s.cfg.Battle.Length,
		floor:  NewBattleFloor(s.cfg.Battle.FloorPadding),
	}
}

func (b *BattleState) Name() string { return "battle" }

// Boss returns the current boss.
func (b *BattleState) Boss() *Sandwitch { return b.boss }

// Elapsed returns the survived time.
func (b *BattleState) Elapsed() time.Duration { return b.elapsed }

// InDialogue reports whether the opening conversation runs.
func (b *BattleState) InDialogue() bool { return b.inDialogue }

func (b *BattleState) OnEnter() {
	b.scene.ui.ShowProgress(Banner{Text: "Sandwitch", Color: core.ColorRed})
	b.initScene()
}

func (b *BattleState) initScene() {
	s := b.scene
	cfg := s.cfg.Battle
	p := s.Player
	p.SetState(PlayerIdle)
	s.Camera.Follow(cameraOffset(cfg.Camera.Offset), cfg.Camera.Ahead, CameraExact)

	b.boss = NewSandwitch(s.cfg.Boss)
	s.AddObject(b.boss)
	b.boss.Lane().SetRow(p.Row(), nil)
	b.boss.SetPosition(p.Position() + cfg.BossDistance)
	b.boss.Model().Rotation.Y = math.Pi

	b.floor.Generate(s.Rows, p.Position(), b.boss.Position())
	s.SetFloor(b.floor)
	s.ui.SetProgress(1)
	s.playMusic("bossTheme", true)

	b.boss.Paused = true
	b.inDialogue = true
	steps := Converse(s.ui, battleOpeningDialogue)
	steps = append(steps, func() *flow.Signal {
		s.ui.ClearDialogue()
		b.boss.Paused = false
		b.inDialogue = false
		return nil
	})
	s.Go(steps...)
}

func (b *BattleState) OnExit() {
	b.scene.ui.Clear()
}

func (b *BattleState) Reset() {
	b.elapsed = 0
	b.inDialogue = false
}

func (b *BattleState) AfterReset() { b.initScene() }

func (b *BattleState) OnPlayerInput(in PlayerInput) {
	if b.inDialogue {
		return
	}
	p := b.scene.Player
	if in.Move != nil {
		p.Move(*in.Move)
	}
	if in.Jump {
		p.Jump()
	}
}

func (b *BattleState) Process(delta time.Duration) {
	s := b.scene
	p := s.Player
	s.Camera.Process(delta, p.Model())

	if p.State() != PlayerDeath && !b.inDialogue && !s.Completed {
		b.elapsed = min(b.elapsed+delta, b.Length)
	}
	if b.Length > 0 {
		s.ui.SetProgress(float64(b.Length-b.elapsed) / float64(b.Length))
	}

	if b.elapsed >= b.Length && !s.Completed {
		b.win()
		return
	}
	if s.CheckCollision() {
		b.die()
	}
}

func (b *BattleState) win() {
	s := b.scene
	s.Completed = true
	s.logger.Debug("boss defeated", "deaths", s.deaths)
	steps := []flow.Step{b.boss.Die}
	steps = append(steps, Converse(s.ui, endingDialogue)...)
	steps = append(steps, func() *flow.Signal {
		s.ui.ClearDialogue()
		s.complete()
		return nil
	})
	s.Go(steps...)
}

func (b *BattleState) die() {
	s := b.scene
	s.playMusic("death", true)
	s.died()
	s.Go(
		s.Player.Die,
		func() *flow.Signal { return s.ui.Say(battleDeathLine) },
		func() *flow.Signal {
			cfg := s.cfg.Battle
			b.Length = max(b.Length-cfg.DeathPenalty, cfg.MinLength)
			s.ui.ClearDialogue()
			s.Reset()
			return nil
		},
	)
}
