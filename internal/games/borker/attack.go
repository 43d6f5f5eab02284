package borker

import (
	"time"

	"github.com/vovakirdan/borker-run/internal/flow"
)

// AttackKind selects one of the boss attacks.
type AttackKind int

const (
	// AttackBoulder throws boulders into random rows.
	AttackBoulder AttackKind = iota
	// AttackJump drops waves of boulders covering all rows but one.
	AttackJump
	// AttackMissile fires a guided licorice missile into every row once.
	AttackMissile

	attackKinds = 3
)

var attackKindNames = [...]string{
	AttackBoulder: "boulder",
	AttackJump:    "jump",
	AttackMissile: "missile",
}

func (k AttackKind) String() string {
	if k < 0 || int(k) >= len(attackKindNames) {
		return "unknown"
	}
	return attackKindNames[k]
}

// attackWindups is the boss state entered before spawning starts.
var attackWindups = [...]BossState{
	AttackBoulder: BossThrow,
	AttackJump:    BossJumpAttack,
	AttackMissile: BossLaugh,
}

// attackSpawns spawns one round of an attack.
var attackSpawns = [...]func(a *Attack){
	AttackBoulder: spawnThrownBoulder,
	AttackJump:    spawnBoulderWave,
	AttackMissile: spawnMissile,
}

// Attack is one boss attack in progress. Spawning starts after the windup
// clip finished and repeats every interval until remaining reaches zero.
type Attack struct {
	Kind AttackKind
	// Done fires once every round was spawned.
	Done *flow.Signal

	boss      *Sandwitch
	windup    *flow.Signal
	spawning  bool
	remaining int
	interval  time.Duration
	elapsed   time.Duration
	// lanes holds the rows not yet targeted by a missile attack.
	lanes []int
}

func newAttack(kind AttackKind, boss *Sandwitch, shuffled []int) *Attack {
	cfg := boss.cfg
	a := &Attack{Kind: kind, Done: flow.NewSignal(), boss: boss}
	switch kind {
	case AttackBoulder:
		a.remaining = cfg.BoulderCount
		a.interval = cfg.BoulderInterval
		a.elapsed = cfg.BoulderInterval
	case AttackJump:
		a.remaining = cfg.JumpWaves
		a.interval = cfg.JumpInterval
		a.elapsed = cfg.JumpInterval
	case AttackMissile:
		a.lanes = shuffled
		a.remaining = len(shuffled)
		a.interval = cfg.MissileInterval
	}
	boss.SetState(attackWindups[kind])
	a.windup = boss.clipDone
	return a
}

// Remaining returns how many rounds are left to spawn.
func (a *Attack) Remaining() int { return a.remaining }

func (a *Attack) process(delta time.Duration) {
	if !a.spawning {
		if !a.windup.Fired() {
			return
		}
		a.spawning = true
		a.boss.SetState(BossIdle)
	}
	if a.remaining <= 0 {
		a.Done.Fire()
		return
	}
	if a.elapsed >= a.interval {
		attackSpawns[a.Kind](a)
		a.remaining--
		a.elapsed = 0
	}
	a.elapsed += delta
	if a.remaining <= 0 {
		a.Done.Fire()
	}
}

func spawnThrownBoulder(a *Attack) {
	s := a.boss.scene
	b := NewBoulder(s.cfg.Obstacles.BoulderSize)
	s.AddObject(b)
	b.Lane().SetRow(s.rng.Intn(s.Rows), nil)
	b.SetPosition(a.boss.Position() - a.boss.cfg.ThrowOffset)
}

func spawnBoulderWave(a *Attack) {
	s := a.boss.scene
	safe := s.rng.Intn(s.Rows)
	for row := 0; row < s.Rows; row++ {
		if row == safe {
			continue
		}
		b := NewBoulder(s.cfg.Obstacles.BoulderSize)
		s.AddObject(b)
		b.Lane().SetRow(row, nil)
		b.SetPosition(a.boss.Position() - a.boss.cfg.ThrowOffset)
	}
}

func spawnMissile(a *Attack) {
	s := a.boss.scene
	last := len(a.lanes) - 1
	row := a.lanes[last]
	a.lanes = a.lanes[:last]

	cfg := a.boss.cfg
	m := NewMissile(cfg.MissileSize, cfg.MissileDelay)
	s.AddObject(m)
	m.Lane().SetRow(row, nil)
	m.SetPosition(s.Player.Position())
}
