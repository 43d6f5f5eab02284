package borker

import "github.com/vovakirdan/borker-run/internal/core"

// PlayerInput is the player intent sampled for one frame.
type PlayerInput struct {
	Move *Direction
	Jump bool
}

// Empty reports whether no field is set.
func (in PlayerInput) Empty() bool {
	return in.Move == nil && !in.Jump
}

type touchPoint struct {
	x, y float64
}

// Controller turns raw key and touch input into PlayerInput.
type Controller struct {
	// SwipeThreshold is the horizontal distance of a move swipe.
	SwipeThreshold float64
	// JumpThreshold is the upward distance of a jump swipe.
	JumpThreshold float64

	keys       map[core.Action]bool
	touchStart *touchPoint
	touchEnd   *touchPoint
	confirm    bool
}

// NewController creates a controller with the given swipe thresholds.
func NewController(swipe, jump float64) *Controller {
	return &Controller{
		SwipeThreshold: swipe,
		JumpThreshold:  jump,
		keys:           make(map[core.Action]bool),
	}
}

// Feed records the raw input of a frame. Touch positions are in screen units
// with y growing downward.
func (c *Controller) Feed(in core.InputFrame) {
	for a, on := range in.Actions {
		if on {
			c.keys[a] = true
		}
	}
	for _, t := range in.Touches {
		p := &touchPoint{t.X, t.Y}
		switch t.Phase {
		case core.TouchStart:
			c.touchStart = p
			c.touchEnd = nil
		case core.TouchEnd:
			c.touchEnd = p
		}
	}
}

// Sample returns the intent accumulated since the last sample and clears
// it. ok is false when nothing was requested.
func (c *Controller) Sample() (in PlayerInput, ok bool) {
	left, right := DirectionLeft, DirectionRight
	if c.keys[core.ActionLeft] {
		in.Move = &left
	}
	if c.keys[core.ActionRight] {
		in.Move = &right
	}
	if c.keys[core.ActionJump] || c.keys[core.ActionUp] {
		in.Jump = true
	}
	c.confirm = c.keys[core.ActionConfirm]

	if c.touchStart != nil && c.touchEnd != nil {
		dx := c.touchEnd.x - c.touchStart.x
		dy := c.touchStart.y - c.touchEnd.y
		swiped := false
		if -dx > c.SwipeThreshold {
			in.Move = &left
			swiped = true
		}
		if dx > c.SwipeThreshold {
			in.Move = &right
			swiped = true
		}
		if dy > c.JumpThreshold {
			in.Jump = true
			swiped = true
		}
		if !swiped {
			c.confirm = true
		}
		c.touchStart, c.touchEnd = nil, nil
	}

	clear(c.keys)
	return in, !in.Empty()
}

// Confirmed reports whether the last sample carried a confirm key or a tap.
func (c *Controller) Confirmed() bool { return c.confirm }
