package borker

import (
	"math"
	"time"

	"github.com/vovakirdan/borker-run/internal/core"
)

// ObstacleKind selects the obstacle variant.
type ObstacleKind int

const (
	ObstacleCactus ObstacleKind = iota
	ObstacleBoulder
	ObstacleMissile
)

var obstacleKindNames = [...]string{
	ObstacleCactus:  "cactus",
	ObstacleBoulder: "boulder",
	ObstacleMissile: "missile",
}

func (k ObstacleKind) String() string {
	if k < 0 || int(k) >= len(obstacleKindNames) {
		return "unknown"
	}
	return obstacleKindNames[k]
}

// Boulder motion.
const (
	boulderSpeed   = 70.0 // units per second, toward the player
	boulderBounce  = 15.0 // initial vertical velocity of a bounce
	boulderGravity = 30.0
)

// Missile motion.
const (
	missileSpawnDistance = 200.0
	missileSpawnHeight   = 100.0
	missileBodyHeight    = 10.0
	missileStayOnGround  = 100 * time.Millisecond
	alertBlinkPeriod     = 100 * time.Millisecond
)

// DefaultUnloadSizes is how many of its own sizes an obstacle or cloud may
// fall behind the player before it is removed.
const DefaultUnloadSizes = 4.0

// Obstacle is anything the player can crash into.
type Obstacle struct {
	sceneObject
	Kind ObstacleKind
	// UnloadSizes is the unload threshold in multiples of Size.
	UnloadSizes float64

	// boulder
	vy float64

	// missile
	elapsed      time.Duration
	landingDelay time.Duration
	landed       bool
}

var obstacleModels = [...]string{
	ObstacleCactus:  "cactus",
	ObstacleBoulder: "boulder",
	ObstacleMissile: "licorice",
}

// obstacleUpdates advances the kind-specific motion.
// It returns false when the obstacle removed itself.
var obstacleUpdates = [...]func(o *Obstacle, delta time.Duration) bool{
	ObstacleCactus:  func(*Obstacle, time.Duration) bool { return true },
	ObstacleBoulder: (*Obstacle).rollBoulder,
	ObstacleMissile: (*Obstacle).guideMissile,
}

func newObstacle(kind ObstacleKind, size float64) *Obstacle {
	o := &Obstacle{Kind: kind, UnloadSizes: DefaultUnloadSizes}
	o.initLane(size)
	o.lane.Floor = FloorGround
	return o
}

// NewCactus creates a static obstacle.
func NewCactus(size float64) *Obstacle {
	return newObstacle(ObstacleCactus, size)
}

// NewBoulder creates a bouncing boulder rolling toward the player.
func NewBoulder(size float64) *Obstacle {
	return newObstacle(ObstacleBoulder, size)
}

// NewMissile creates a guided licorice missile that follows the player and
// lands after landingDelay. It cannot be hit before it lands.
func NewMissile(size float64, landingDelay time.Duration) *Obstacle {
	o := newObstacle(ObstacleMissile, size)
	o.lane.Floor = FloorNone
	o.landingDelay = landingDelay
	return o
}

// LoadModel implements GameObject.
func (o *Obstacle) LoadModel(a Assets) *Model {
	switch o.Kind {
	case ObstacleBoulder:
		m := NewModel(mustModel(a, obstacleModels[o.Kind]))
		m.Position.Y = o.lane.Size
		return m
	case ObstacleMissile:
		m := NewModel(mustModel(a, "licorice"))
		m.Spec.Sprite = nil
		alert, err := a.CloneTexture("alert")
		if err != nil {
			panic(err)
		}
		m.Parts = []*Part{
			{
				Name:    "body",
				Local:   core.V3(0, missileSpawnHeight, missileSpawnDistance),
				Visible: true,
				Alpha:   1,
				Spec:    mustModel(a, "licorice"),
			},
			{
				Name:    "alert",
				Visible: true,
				Alpha:   1,
				Glyph:   alert.Glyph,
				Color:   alert.Color,
			},
		}
		return m
	default:
		return NewModel(mustModel(a, obstacleModels[o.Kind]))
	}
}

// OnEnter registers the obstacle for collision.
func (o *Obstacle) OnEnter(s *Scene) {
	s.trackObstacle(o)
	o.sceneObject.OnEnter(s)
}

// OnExit removes the obstacle from collision.
func (o *Obstacle) OnExit(s *Scene) {
	s.untrackObstacle(o)
}

// Landed reports whether a missile reached the ground.
func (o *Obstacle) Landed() bool { return o.landed }

// Process implements Updatable.
func (o *Obstacle) Process(delta time.Duration) {
	s := o.scene
	if o.Position()-s.Player.Position() < -o.UnloadSizes*o.lane.Size {
		s.RemoveObject(o)
		return
	}
	if !obstacleUpdates[o.Kind](o, delta) {
		return
	}
	o.sceneObject.Process(delta)
}

func (o *Obstacle) rollBoulder(delta time.Duration) bool {
	dt := delta.Seconds()
	m := o.model
	m.Position.Z -= boulderSpeed * dt

	rest := o.lane.Size
	if m.Position.Y <= rest {
		o.vy = boulderBounce
	}
	m.Position.Y = math.Max(m.Position.Y+o.vy*dt, rest)
	o.vy -= boulderGravity * dt
	return true
}

func (o *Obstacle) guideMissile(delta time.Duration) bool {
	s := o.scene
	ratio := 1.0
	if o.landingDelay > 0 {
		ratio = float64(o.elapsed) / float64(o.landingDelay)
	}
	body := o.model.Part("body")
	body.Local.Y = math.Max(missileSpawnHeight-ratio*missileSpawnHeight, missileBodyHeight/2)
	body.Local.Z = math.Max(missileSpawnDistance-ratio*missileSpawnDistance, 0)

	alert := o.model.Part("alert")
	alert.Alpha = 0.75 + math.Cos(float64(o.elapsed)/float64(alertBlinkPeriod))*0.25

	o.landed = o.elapsed >= o.landingDelay
	if o.landed {
		o.lane.Floor = FloorGround
		alert.Visible = false
	} else {
		o.SetPosition(s.Player.Position())
	}

	o.elapsed += delta
	if o.elapsed-o.landingDelay >= missileStayOnGround {
		s.RemoveObject(o)
		return false
	}
	return true
}
