package borker

import (
	"math"
	"time"

	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/flow"
)

// RunnerState is the endless runner leading up to the boss.
type RunnerState struct {
	scene *Scene
	// GameLength is the distance to run. It shrinks with every death.
	GameLength float64

	obstacles *ObstacleGenerator
	clouds    *CloudGenerator
	floor     *Floor
	finished  bool
}

// NewRunnerState creates the runner with the configured game length.
func NewRunnerState(s *Scene) *RunnerState {
	cfg := s.cfg
	return &RunnerState{
		scene:      s,
		GameLength: cfg.Runner.GameLength,
		obstacles:  NewObstacleGenerator(cfg, cfg.Runner.GameLength),
		clouds:     NewCloudGenerator(cfg.Clouds),
		floor:      NewFloor(s.Rows, s.TileLength, s.RenderDistance),
	}
}

func (r *RunnerState) Name() string { return "runner" }

// Finished reports whether the player reached the end of the track.
func (r *RunnerState) Finished() bool { return r.finished }

// Obstacles returns the obstacle generator.
func (r *RunnerState) Obstacles() *ObstacleGenerator { return r.obstacles }

func (r *RunnerState) OnEnter() {
	s := r.scene
	cam := s.cfg.Runner.Camera
	s.Camera.Follow(cameraOffset(cam.Offset), cam.Ahead, CameraTween)
	s.ui.ShowProgress(Banner{Text: "Progress", Color: core.ColorYellow})
	r.initScene()
}

func (r *RunnerState) initScene() {
	s := r.scene
	s.Player.SetState(PlayerMoving)
	s.SetFloor(r.floor)
	r.floor.Process(s.Player.Position())
	r.clouds.GenerateToLimit(s)
	s.playMusic("whatIsLove", true)
}

func (r *RunnerState) OnExit() {
	r.scene.ui.Clear()
}

func (r *RunnerState) Reset() {
	r.finished = false
	r.obstacles.Reset()
	r.clouds.Reset()
	r.floor.Reset()
}

func (r *RunnerState) AfterReset() { r.initScene() }

func (r *RunnerState) OnPlayerInput(in PlayerInput) {
	p := r.scene.Player
	if in.Move != nil {
		p.Move(*in.Move)
	}
	if in.Jump {
		p.Jump()
	}
}

func (r *RunnerState) Process(delta time.Duration) {
	s := r.scene
	p := s.Player
	s.Camera.Process(delta, p.Model())
	if !r.finished {
		r.obstacles.Process(s, delta)
	}
	r.clouds.Process(s)
	r.floor.Process(p.Position())

	if r.GameLength > 0 {
		s.ui.SetProgress(math.Min(1, p.Position()/r.GameLength))
	}

	if p.Position() >= r.GameLength && !r.finished {
		r.finish()
		return
	}
	if !r.finished && s.CheckCollision() {
		r.die()
	}
}

func (r *RunnerState) finish() {
	s := r.scene
	r.finished = true
	s.Player.Stop()
	s.playMusic("dialogueTheme", true)

	p := s.progress
	p.CheckpointReached = true
	s.saveProgress(p)
	s.logger.Debug("checkpoint reached", "length", r.GameLength)

	steps := Converse(s.ui, bossFightDialogue)
	steps = append(steps, func() *flow.Signal {
		s.ui.ClearDialogue()
		s.SetState(NewBattleState(s))
		return nil
	})
	s.Go(steps...)
}

func (r *RunnerState) die() {
	s := r.scene
	s.playMusic("death", true)
	s.died()
	s.Go(
		s.Player.Die,
		func() *flow.Signal { return s.ui.Say(runnerDeathLine) },
		func() *flow.Signal {
			cfg := s.cfg.Runner
			r.GameLength = math.Max(r.GameLength-cfg.DeathPenalty, cfg.MinGameLength)
			r.obstacles.GameLength = r.GameLength
			s.ui.ClearDialogue()
			s.Reset()
			return nil
		},
	)
}
