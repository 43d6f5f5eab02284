package borker

import (
	"math"
	"time"

	"github.com/vovakirdan/borker-run/internal/config"
)

// ObstacleGenerator places obstacles ahead of the player during the runner.
// The gap between obstacles shrinks and boulders become more likely as the
// run goes on. Once the next spawn would land beyond the game length it
// places the boss, paused, as a silhouette at the end of the track.
type ObstacleGenerator struct {
	cfg  config.ObstacleConfig
	diff *config.DifficultyManager
	// GameLength is the distance at which the runner ends.
	GameLength  float64
	UnloadSizes float64
	boss        config.BossConfig

	next        float64
	hasNext     bool
	spawnedBoss bool
}

// NewObstacleGenerator creates a generator for a track of gameLength.
func NewObstacleGenerator(cfg config.BorkerConfig, gameLength float64) *ObstacleGenerator {
	return &ObstacleGenerator{
		cfg:         cfg.Obstacles,
		diff:        config.NewDifficultyManager(cfg.Obstacles),
		GameLength:  gameLength,
		UnloadSizes: cfg.Runner.UnloadSizes,
		boss:        cfg.Boss,
	}
}

// Reset restores the starting difficulty and forgets the pending spawn.
func (g *ObstacleGenerator) Reset() {
	g.diff.Reset()
	g.hasNext = false
	g.next = 0
	g.spawnedBoss = false
}

// Difficulty exposes the ramp state.
func (g *ObstacleGenerator) Difficulty() *config.DifficultyManager { return g.diff }

// SpawnedBoss reports whether the boss silhouette was placed.
func (g *ObstacleGenerator) SpawnedBoss() bool { return g.spawnedBoss }

// Process ramps the difficulty and spawns what the player is about to see.
func (g *ObstacleGenerator) Process(s *Scene, delta time.Duration) {
	if g.diff.IsEnabled() {
		g.diff.Advance(delta)
	}

	player := s.Player.Position()
	if !g.hasNext {
		gap := g.diff.MinGap() + s.rng.Float64()*(g.diff.MaxGap()-g.diff.MinGap())
		g.next = player + g.cfg.SpawnAhead + gap
		g.hasNext = true
	}
	if player+g.cfg.SpawnAhead < g.next {
		return
	}
	if g.next >= g.GameLength {
		g.spawnBoss(s)
		return
	}
	g.spawnObstacle(s, g.next)
	g.hasNext = false
}

func (g *ObstacleGenerator) spawnObstacle(s *Scene, pos float64) {
	var o *Obstacle
	if s.rng.Float64() < g.diff.BoulderRate() {
		o = NewBoulder(g.cfg.BoulderSize)
	} else {
		o = NewCactus(g.cfg.CactusSize)
	}
	if g.UnloadSizes > 0 {
		o.UnloadSizes = g.UnloadSizes
	}
	s.AddObject(o)
	o.Lane().SetRow(s.rng.Intn(s.Rows), nil)
	o.SetPosition(pos)
	s.logger.Debug("obstacle spawned", "kind", o.Kind, "pos", pos, "level", g.diff.Level())
}

func (g *ObstacleGenerator) spawnBoss(s *Scene) {
	if g.spawnedBoss {
		return
	}
	g.spawnedBoss = true

	b := NewSandwitch(g.boss)
	b.Paused = true
	s.AddObject(b)
	b.SetPosition(g.next + g.cfg.BossOffset)
	m := b.Model()
	m.Rotation.Y = math.Pi
	m.Scale = m.Scale.Scale(0.1)
	s.logger.Debug("boss silhouette placed", "at", b.Position())
}

// CloudGenerator scatters clouds ahead of the player.
type CloudGenerator struct {
	cfg     config.CloudConfig
	next    float64
	hasNext bool
}

// NewCloudGenerator creates a cloud generator.
func NewCloudGenerator(cfg config.CloudConfig) *CloudGenerator {
	return &CloudGenerator{cfg: cfg}
}

// Reset forgets the pending spawn.
func (g *CloudGenerator) Reset() {
	g.hasNext = false
	g.next = 0
}

// GenerateToLimit fills the sky from the player up to the spawn horizon.
func (g *CloudGenerator) GenerateToLimit(s *Scene) {
	player := s.Player.Position()
	limit := player + g.cfg.SpawnAhead
	pos := player
	for {
		step := g.gap(s)
		if step <= 0 {
			return
		}
		pos += step
		if pos >= limit {
			return
		}
		g.spawn(s, pos)
	}
}

// Process spawns clouds at the horizon.
func (g *CloudGenerator) Process(s *Scene) {
	player := s.Player.Position()
	if !g.hasNext {
		g.next = player + g.cfg.SpawnAhead + g.gap(s)
		g.hasNext = true
	}
	if player+g.cfg.SpawnAhead < g.next {
		return
	}
	g.spawn(s, g.next)
	g.hasNext = false
}

func (g *CloudGenerator) gap(s *Scene) float64 {
	return g.cfg.MinGap + s.rng.Float64()*(g.cfg.MaxGap-g.cfg.MinGap)
}

func (g *CloudGenerator) spawn(s *Scene, pos float64) {
	c := NewCloud()
	s.AddObject(c)
	m := c.Model()
	m.Position.X = s.rng.Float64()*2*g.cfg.Lateral - g.cfg.Lateral
	m.Position.Y = g.cfg.MinHeight + s.rng.Float64()*(g.cfg.MaxHeight-g.cfg.MinHeight)
	m.Position.Z = pos
}
