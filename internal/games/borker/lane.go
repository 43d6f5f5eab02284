package borker

import (
	"time"

	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/tween"
)

// Floor levels used for collision.
const (
	FloorNone   = -1 // not collidable
	FloorGround = 0
	FloorAir    = 1
)

// Lane gives an object a row, a vertical collision layer and an extent along
// the travel axis.
type Lane struct {
	obj   *Object
	row   int
	Floor int
	// Size is the full length of the object along the travel axis.
	Size float64
	// RowChangeDelay is the duration of an animated row change; zero
	// changes rows instantly.
	RowChangeDelay time.Duration

	rowTween    *tween.Tween[float64]
	offsetTween *tween.Tween[float64]
}

func newLane(obj *Object, size float64) Lane {
	return Lane{
		obj:         obj,
		row:         1,
		Size:        size,
		rowTween:    tween.Number(tween.Step),
		offsetTween: tween.Number(tween.Linear),
	}
}

// Row returns the current row index.
func (l *Lane) Row() int { return l.row }

// Range returns the interval the object covers along the travel axis.
func (l *Lane) Range() core.Range {
	return core.RangeAround(l.obj.Position(), l.Size)
}

// Tweening reports whether a row change is in flight.
func (l *Lane) Tweening() bool {
	return l.rowTween.Tweening() || l.offsetTween.Tweening()
}

// SetRow moves the object to target, clamped to the scene's rows. With a
// zero RowChangeDelay the move is instant and done runs synchronously.
// Otherwise the row index and the lateral offset animate together and done
// runs when both finish. A request made while a change is in flight is
// ignored. done may be nil.
func (l *Lane) SetRow(target int, done func()) {
	s := l.obj.scene
	if s == nil {
		panic(ErrNotInScene)
	}
	m := l.obj.model
	if m == nil {
		panic(ErrNoModel)
	}
	if done == nil {
		done = func() {}
	}

	end := core.Clamp(target, 0, s.Rows-1)
	endX := s.RowX(end)

	if l.RowChangeDelay == 0 {
		l.row = end
		m.Position.X = endX
		done()
		return
	}
	if l.Tweening() {
		return
	}
	if end == l.row {
		m.Position.X = endX
		done()
		return
	}
	l.offsetTween.Tween(m.Position.X, endX, l.RowChangeDelay, nil)
	l.rowTween.Tween(float64(l.row), float64(end), l.RowChangeDelay, func() {
		l.row = end
		m.Position.X = endX
		done()
	})
}

// process advances the row change tweens.
func (l *Lane) process(delta time.Duration) {
	if l.offsetTween.Tweening() {
		l.offsetTween.Process(delta)
		l.obj.model.Position.X = l.offsetTween.Value()
	}
	if l.rowTween.Tweening() {
		l.rowTween.Process(delta)
		l.row = int(l.rowTween.Value())
	}
}

// sceneObject is an Object bound to a lane.
type sceneObject struct {
	Object
	lane Lane
}

func (so *sceneObject) initLane(size float64) {
	so.lane = newLane(&so.Object, size)
}

// Lane implements Collidable.
func (so *sceneObject) Lane() *Lane { return &so.lane }

// Row is shorthand for Lane().Row().
func (so *sceneObject) Row() int { return so.lane.row }

// OnEnter re-applies the row so the lateral offset matches it.
func (so *sceneObject) OnEnter(*Scene) {
	so.lane.SetRow(so.lane.row, nil)
}

// OnExit implements GameObject.
func (so *sceneObject) OnExit(*Scene) {}

// Process advances the lane tweens. Concrete objects call it from their own
// Process.
func (so *sceneObject) Process(delta time.Duration) {
	so.lane.process(delta)
}
