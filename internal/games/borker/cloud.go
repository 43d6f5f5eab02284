package borker

import "time"

// Cloud is decorative scenery. It has no lane and never collides.
type Cloud struct {
	Object
	// Size is the cloud width, taken from its model.
	Size float64
	// UnloadSizes is how many sizes a cloud may fall behind the player.
	UnloadSizes float64
}

// NewCloud creates a cloud.
func NewCloud() *Cloud {
	return &Cloud{UnloadSizes: DefaultUnloadSizes}
}

// LoadModel implements GameObject.
func (c *Cloud) LoadModel(a Assets) *Model {
	spec := mustModel(a, "cloud")
	c.Size = spec.Width
	return NewModel(spec)
}

// OnEnter implements GameObject.
func (c *Cloud) OnEnter(*Scene) {}

// OnExit implements GameObject.
func (c *Cloud) OnExit(*Scene) {}

// Process implements Updatable.
func (c *Cloud) Process(time.Duration) {
	s := c.scene
	if c.Position()-s.Player.Position() < -c.UnloadSizes*c.Size {
		s.RemoveObject(c)
	}
}
