package borker

import (
	"time"

	"github.com/vovakirdan/borker-run/internal/anim"
	"github.com/vovakirdan/borker-run/internal/config"
	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/flow"
	"github.com/vovakirdan/borker-run/internal/tween"
)

// BossState is the state of the Sandwitch.
type BossState int

const (
	BossIdle BossState = iota
	BossJumpAttack
	BossLaugh
	BossThrow
)

var bossStateNames = [...]string{
	BossIdle:       "idle",
	BossJumpAttack: "jump-attack",
	BossLaugh:      "laugh",
	BossThrow:      "throw",
}

func (s BossState) String() string {
	if s < 0 || int(s) >= len(bossStateNames) {
		return "unknown"
	}
	return bossStateNames[s]
}

var bossClips = [...]clipSpec{
	BossIdle:       {"sandwitchIdleAnim", anim.PlayOptions{}},
	BossJumpAttack: {"sandwitchJumpAttackAnim", anim.PlayOptions{Once: true}},
	BossLaugh:      {"sandwitchLaughAnim", anim.PlayOptions{Once: true}},
	BossThrow:      {"sandwitchThrowAnim", anim.PlayOptions{Once: true}},
}

const bossDefeatDuration = time.Second

// Sandwitch is the boss. While not paused it starts a random attack every
// time its cooldown runs out and no attack is in progress.
type Sandwitch struct {
	entity[BossState]

	// Paused stops attacks and the cooldown.
	Paused bool

	cfg      config.BossConfig
	attack   *Attack
	cooldown time.Duration
	shrink   *tween.Tween[core.Vec3]
	defeated *flow.Signal
}

// NewSandwitch creates an idle boss whose first attack starts on the first
// unpaused frame.
func NewSandwitch(cfg config.BossConfig) *Sandwitch {
	b := &Sandwitch{
		cfg:    cfg,
		shrink: tween.Vector(tween.Linear),
	}
	b.initLane(1)
	b.lane.Floor = FloorNone
	b.fsm = NewMachine(BossIdle, b.onStateEnter, nil)
	return b
}

// LoadModel implements GameObject.
func (b *Sandwitch) LoadModel(a Assets) *Model {
	m := NewModel(mustModel(a, "sandwitch"))
	b.animator = anim.NewAnimator(a)
	m.Animator = b.animator
	return m
}

// OnEnter starts the clip of the current state and re-applies the row.
func (b *Sandwitch) OnEnter(s *Scene) {
	b.onStateEnter(b.State())
	b.sceneObject.OnEnter(s)
}

func (b *Sandwitch) onStateEnter(s BossState) {
	c := bossClips[s]
	b.play(c.name, c.opts)
}

// Attack returns the attack in progress, or nil.
func (b *Sandwitch) Attack() *Attack { return b.attack }

// StartAttack begins an attack of the given kind, replacing any attack in
// progress.
func (b *Sandwitch) StartAttack(kind AttackKind) *Attack {
	s := b.scene
	if s == nil {
		panic(ErrNotInScene)
	}
	b.attack = newAttack(kind, b, s.rng.Perm(s.Rows))
	s.logger.Debug("boss attack", "kind", kind)
	return b.attack
}

// Die stops attacking and shrinks the boss away. The returned signal fires
// when the model has vanished.
func (b *Sandwitch) Die() *flow.Signal {
	if b.defeated != nil {
		return b.defeated
	}
	b.Paused = true
	b.attack = nil
	b.defeated = flow.NewSignal()
	b.SetState(BossIdle)
	b.shrink.Tween(b.model.Scale, core.Vec3{}, bossDefeatDuration, b.defeated.Fire)
	return b.defeated
}

// Process implements Updatable.
func (b *Sandwitch) Process(delta time.Duration) {
	if !b.Paused {
		if b.attack != nil {
			b.attack.process(delta)
			if b.attack.Done.Fired() {
				b.scene.logger.Debug("boss attack finished", "kind", b.attack.Kind)
				b.attack = nil
				b.cooldown = b.cfg.Cooldown
			}
		}
		b.cooldown -= delta
		if b.cooldown <= 0 && b.attack == nil {
			b.StartAttack(AttackKind(b.scene.rng.Intn(attackKinds)))
		}
	}
	if b.shrink.Tweening() {
		b.shrink.Process(delta)
		b.model.Scale = b.shrink.Value()
	}
	b.processEntity(delta)
}
