package borker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetRowClamps(t *testing.T) {
	tests := []struct {
		name   string
		target int
		want   int
	}{
		{"above", 99, 2},
		{"below", -5, 0},
		{"inside", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestScene(t, defaultTestConfig())
			c := NewCactus(3)
			ts.AddObject(c)

			c.Lane().SetRow(tt.target, nil)

			assert.Equal(t, tt.want, c.Row())
			assert.Equal(t, ts.RowX(tt.want), c.Model().Position.X)
		})
	}
}

func TestSetRowInstantRunsCallback(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	c := NewCactus(3)
	ts.AddObject(c)

	called := 0
	c.Lane().SetRow(2, func() { called++ })

	assert.Equal(t, 1, called)
	assert.Equal(t, 2, c.Row())
}

func TestSetRowAnimated(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	p := ts.Player
	require.Equal(t, 1, p.Row())
	require.Equal(t, 200*time.Millisecond, p.Lane().RowChangeDelay)

	done := 0
	p.Lane().SetRow(0, func() { done++ })
	assert.True(t, p.Lane().Tweening())

	p.Lane().process(90 * time.Millisecond)
	assert.Equal(t, 1, p.Row(), "row snaps at the halfway point")
	assert.InDelta(t, 11, p.Model().Position.X, 1e-9)
	assert.Equal(t, 0, done)

	p.Lane().process(110 * time.Millisecond)
	assert.Equal(t, 0, p.Row())
	assert.InDelta(t, 0, p.Model().Position.X, 1e-9)
	assert.Equal(t, 1, done)
	assert.False(t, p.Lane().Tweening())
}

func TestSetRowIgnoredWhileTweening(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	p := ts.Player

	p.Lane().SetRow(2, nil)
	second := 0
	p.Lane().SetRow(0, func() { second++ })

	p.Lane().process(time.Second)
	assert.Equal(t, 2, p.Row())
	assert.Equal(t, 0, second)
}

func TestSetRowSameRowCompletesImmediately(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	p := ts.Player

	called := false
	p.Lane().SetRow(p.Row(), func() { called = true })

	assert.True(t, called)
	assert.False(t, p.Lane().Tweening())
}

func TestSetRowDetachedPanics(t *testing.T) {
	c := NewCactus(3)
	assert.PanicsWithValue(t, ErrNotInScene, func() { c.Lane().SetRow(1, nil) })
}

func TestPositionWithoutModelPanics(t *testing.T) {
	c := NewCactus(3)
	assert.PanicsWithValue(t, ErrNoModel, func() { _ = c.Position() })
	assert.PanicsWithValue(t, ErrNoModel, func() { c.SetPosition(1) })
}

func TestRangeCentredOnPosition(t *testing.T) {
	ts := newTestScene(t, defaultTestConfig())
	c := NewCactus(3)
	ts.AddObject(c)
	c.SetPosition(10)

	r := c.Lane().Range()
	assert.Equal(t, 8.5, r.Start)
	assert.Equal(t, 11.5, r.End)
}
