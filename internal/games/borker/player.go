package borker

import (
	"time"

	"github.com/vovakirdan/borker-run/internal/anim"
	"github.com/vovakirdan/borker-run/internal/config"
	"github.com/vovakirdan/borker-run/internal/flow"
)

// PlayerState is the state of Mr Borker.
type PlayerState int

const (
	PlayerMoving PlayerState = iota
	PlayerIdle
	PlayerAirborne
	PlayerHappy
	PlayerMovingRight
	PlayerMovingLeft
	PlayerDeath
)

var playerStateNames = [...]string{
	PlayerMoving:      "moving",
	PlayerIdle:        "idle",
	PlayerAirborne:    "airborne",
	PlayerHappy:       "happy",
	PlayerMovingRight: "moving-right",
	PlayerMovingLeft:  "moving-left",
	PlayerDeath:       "death",
}

func (s PlayerState) String() string {
	if s < 0 || int(s) >= len(playerStateNames) {
		return "unknown"
	}
	return playerStateNames[s]
}

type clipSpec struct {
	name string
	opts anim.PlayOptions
}

var playerClips = [...]clipSpec{
	PlayerMoving:      {"playerRunAnim", anim.PlayOptions{TimeScale: 1.3}},
	PlayerIdle:        {"playerIdleAnim", anim.PlayOptions{}},
	PlayerAirborne:    {"playerAirborneAnim", anim.PlayOptions{}},
	PlayerHappy:       {"playerHappyAnim", anim.PlayOptions{}},
	PlayerMovingRight: {"playerMoveRightAnim", anim.PlayOptions{}},
	PlayerMovingLeft:  {"playerMoveLeftAnim", anim.PlayOptions{}},
	PlayerDeath:       {"playerDeathAnim", anim.PlayOptions{Once: true}},
}

// Direction is a lateral move request.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// Player is Mr Borker, the runner controlled by the viewer.
type Player struct {
	entity[PlayerState]

	Speed        float64 // units per second
	jumpDuration time.Duration
	jumpHeight   float64

	v0, gravity float64
	// previous is the state to return to after landing.
	previous PlayerState
	airborne time.Duration
}

// NewPlayer creates a player in the Idle state on the middle row.
func NewPlayer(cfg config.PlayerConfig) *Player {
	p := &Player{
		Speed:        cfg.Speed,
		jumpDuration: cfg.JumpDuration,
		jumpHeight:   cfg.JumpHeight,
	}
	p.initLane(cfg.Size)
	p.lane.RowChangeDelay = cfg.RowChangeDelay
	p.lane.Floor = FloorGround
	p.fsm = NewMachine(PlayerIdle, p.onStateEnter, nil)

	T := cfg.JumpDuration.Seconds()
	if T > 0 {
		p.v0 = 4 * cfg.JumpHeight / T
		p.gravity = 8 * cfg.JumpHeight / (T * T)
	}
	return p
}

// LoadModel implements GameObject.
func (p *Player) LoadModel(a Assets) *Model {
	m := NewModel(mustModel(a, "mrborker"))
	p.animator = anim.NewAnimator(a)
	m.Animator = p.animator
	return m
}

// OnEnter starts the clip of the current state and re-applies the row.
func (p *Player) OnEnter(s *Scene) {
	p.onStateEnter(p.State())
	p.sceneObject.OnEnter(s)
}

func (p *Player) onStateEnter(s PlayerState) {
	c := playerClips[s]
	p.play(c.name, c.opts)
}

// Height returns the current height above the floor.
func (p *Player) Height() float64 {
	if p.model == nil {
		return 0
	}
	return p.model.Position.Y
}

// Jump starts a jump. It only has an effect while Moving or Idle.
func (p *Player) Jump() {
	switch p.State() {
	case PlayerMoving, PlayerIdle:
	default:
		return
	}
	p.previous = p.State()
	p.airborne = 0
	p.SetState(PlayerAirborne)
}

// Move changes row by one in dir. While Moving the player keeps running;
// while Idle it plays a sidestep clip and returns to Idle afterwards.
// Right lowers the row index, left raises it.
func (p *Player) Move(dir Direction) {
	delta := 1
	if dir == DirectionRight {
		delta = -1
	}
	switch p.State() {
	case PlayerMoving:
		p.lane.SetRow(p.Row()+delta, nil)
	case PlayerIdle:
		if p.lane.Tweening() {
			return
		}
		if dir == DirectionRight {
			p.SetState(PlayerMovingRight)
		} else {
			p.SetState(PlayerMovingLeft)
		}
		p.lane.SetRow(p.Row()+delta, func() {
			if st := p.State(); st == PlayerMovingRight || st == PlayerMovingLeft {
				p.SetState(PlayerIdle)
			}
		})
	}
}

// Stop lands the player and leaves it Idle on the ground.
func (p *Player) Stop() {
	if p.model != nil {
		p.model.Position.Y = 0
	}
	p.lane.Floor = FloorGround
	p.SetState(PlayerIdle)
}

// Die enters the Death state. The returned signal fires when the death clip
// finishes.
func (p *Player) Die() *flow.Signal {
	p.SetState(PlayerDeath)
	return p.clipDone
}

// Process implements Updatable.
func (p *Player) Process(delta time.Duration) {
	switch p.State() {
	case PlayerMoving:
		p.SetPosition(p.Position() + p.Speed*delta.Seconds())
	case PlayerAirborne:
		p.processAirborne(delta)
	}
	p.processEntity(delta)
}

func (p *Player) processAirborne(delta time.Duration) {
	if p.previous == PlayerMoving {
		p.SetPosition(p.Position() + p.Speed*delta.Seconds())
	}
	p.airborne += delta

	T := p.jumpDuration
	if p.airborne >= T {
		p.model.Position.Y = 0
		p.lane.Floor = FloorGround
		p.SetState(p.previous)
		return
	}
	p.model.Position.Y = jumpHeightAt(p.v0, p.gravity, p.airborne.Seconds())
	if p.airborne > T/4 && p.airborne < T*5/6 {
		p.lane.Floor = FloorAir
	} else {
		p.lane.Floor = FloorGround
	}
}

// jumpHeightAt is the ballistic height after t seconds.
func jumpHeightAt(v0, g, t float64) float64 {
	return v0*t - g*t*t/2
}
