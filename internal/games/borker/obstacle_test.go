package borker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoulderRollsAndBounces(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	b := NewBoulder(4)
	ts.AddObject(b)
	b.SetPosition(500)
	require.Equal(t, 4.0, b.Model().Position.Y, "boulders rest on their size")

	b.Process(100 * time.Millisecond)

	assert.InDelta(t, 493, b.Position(), 1e-9)
	assert.Greater(t, b.Model().Position.Y, 4.0)

	for i := 0; i < 200; i++ {
		b.Process(frame)
		assert.GreaterOrEqual(t, b.Model().Position.Y, 4.0)
	}
}

func TestObstacleUnloadsBehindPlayer(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	c := NewCactus(3)
	ts.AddObject(c)

	c.SetPosition(-11.9)
	c.Process(frame)
	assert.True(t, c.Live())

	c.SetPosition(-12.1)
	c.Process(frame)
	assert.False(t, c.Live())
	assert.Empty(t, ts.Obstacles())
}

func TestMissileFollowsThenLands(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	m := NewMissile(3, 2*time.Second)
	ts.AddObject(m)
	m.SetPosition(0)
	require.Equal(t, FloorNone, m.Lane().Floor)

	ts.Player.SetPosition(40)
	m.Process(time.Second)
	assert.Equal(t, 40.0, m.Position(), "tracks the player before landing")
	assert.Equal(t, FloorNone, m.Lane().Floor)
	assert.True(t, m.Model().Part("alert").Visible)

	m.Process(time.Second)
	ts.Player.SetPosition(45)
	m.Process(frame)
	assert.True(t, m.Landed())
	assert.Equal(t, FloorGround, m.Lane().Floor)
	assert.Equal(t, 40.0, m.Position(), "stays put once landed")
	assert.False(t, m.Model().Part("alert").Visible)
	assert.Equal(t, 0.0, m.Model().Part("body").Local.Z)

	m.Process(100 * time.Millisecond)
	assert.False(t, m.Live(), "removed shortly after landing")
}

func TestMissileNotCollidableWhileFalling(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	m := NewMissile(3, 2*time.Second)
	ts.AddObject(m)
	m.Lane().SetRow(ts.Player.Row(), nil)
	m.SetPosition(ts.Player.Position())

	assert.False(t, ts.CheckCollision())

	m.Process(2 * time.Second)
	m.Process(frame)
	assert.True(t, ts.CheckCollision())
}
