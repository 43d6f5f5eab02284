package borker

import (
	"time"

	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/tween"
)

// CameraMode selects how the camera follows lateral movement.
type CameraMode int

const (
	// CameraTween glides to the player's row once a row change settles.
	CameraTween CameraMode = iota
	// CameraExact copies the player's lateral position every frame.
	CameraExact
)

const cameraSettle = 100 * time.Millisecond

// Camera follows the player from behind.
type Camera struct {
	Position core.Vec3
	LookAt   core.Vec3
	Offset   core.Vec3
	Ahead    float64
	Mode     CameraMode
	// Focus is the point drawn at the lower part of the viewport.
	Focus core.Vec3

	tw         *tween.Tween[float64]
	hasLast    bool
	lastX      float64
	stationary float64
	moving     bool
}

// NewCamera creates a camera in Tween mode.
func NewCamera() *Camera {
	return &Camera{tw: tween.Number(tween.Linear)}
}

// Follow sets the offset from the player and the look-ahead distance.
func (c *Camera) Follow(offset core.Vec3, ahead float64, mode CameraMode) {
	c.Offset = offset
	c.Ahead = ahead
	c.Mode = mode
}

// Place puts the camera at a fixed position.
func (c *Camera) Place(pos, lookAt core.Vec3) {
	c.Position = pos
	c.LookAt = lookAt
	c.Focus = lookAt
}

// Process moves the camera after the target model.
func (c *Camera) Process(delta time.Duration, target *Model) {
	p := target.Position
	x := p.X
	if c.Mode == CameraTween {
		x = c.followX(delta, p.X)
	}
	base := core.V3(x, p.Y, p.Z)
	c.Position = base.Add(c.Offset)
	c.LookAt = core.V3(x, p.Y, p.Z+c.Ahead)
	c.Focus = base
}

func (c *Camera) followX(delta time.Duration, x float64) float64 {
	if !c.hasLast {
		c.hasLast = true
		c.lastX = x
		c.stationary = x
	}
	if x != c.lastX {
		c.moving = true
	} else if c.moving && !c.tw.Tweening() {
		// The target settled: glide from where the camera rests.
		c.moving = false
		c.tw.Tween(c.stationary, x, cameraSettle, nil)
		c.stationary = x
	}
	c.lastX = x

	if c.tw.Tweening() {
		c.tw.Process(delta)
		return c.tw.Value()
	}
	return c.stationary
}

// Facing returns +1 when the camera looks along the travel axis and -1 when
// it looks back toward the origin.
func (c *Camera) Facing() float64 {
	if c.LookAt.Z < c.Position.Z {
		return -1
	}
	return 1
}

// Viewport layout: the horizon and the focus point as fractions of the
// viewport height.
const (
	horizonLine = 0.3
	focusLine   = 0.75
)

// Project maps a world point onto a w×h viewport whose cells are aspect
// times taller than wide. scale is the vertical size of one world unit at the
// point's depth. ok is false for points behind the camera.
func (c *Camera) Project(p core.Vec3, w, h, aspect float64) (sx, sy, scale float64, ok bool) {
	f := c.Facing()
	depth := (p.Z - c.Position.Z) * f
	if depth < 1 {
		return 0, 0, 0, false
	}
	focal := h
	d0 := (c.Focus.Z - c.Position.Z) * f
	dy := c.Position.Y - c.Focus.Y
	if d0 > 0 && dy > 0 {
		focal = (focusLine - horizonLine) * h * d0 / dy
	}
	scale = focal / depth
	// +X points left when looking down the travel axis.
	sx = w/2 - (p.X-c.Position.X)*scale*aspect*f
	sy = horizonLine*h + (c.Position.Y-p.Y)*scale
	return sx, sy, scale, true
}
