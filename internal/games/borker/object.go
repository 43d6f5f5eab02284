// Package borker implements Borker Run: an endless runner that ends in a boss
// fight against the Sandwitch.
//
// The world is three lanes ("rows") running along the Z axis. Every thing in
// the world is a GameObject owned by the Scene; lane-bound objects carry a
// Lane for row changes and collision, entities add a state machine that picks
// animation clips. The active SceneState (home, runner, battle) drives the
// generators and the cutscenes.
package borker

import (
	"errors"
	"time"

	"github.com/vovakirdan/borker-run/internal/anim"
	"github.com/vovakirdan/borker-run/internal/assets"
	"github.com/vovakirdan/borker-run/internal/core"
)

var (
	// ErrNoModel is the panic value when an object's model is used before
	// the object was attached to a scene.
	ErrNoModel = errors.New("borker: game object has no model")
	// ErrNotInScene is the panic value when a lane operation needs the scene
	// of a detached object.
	ErrNotInScene = errors.New("borker: game object is not in a scene")
)

// Assets is the asset collaborator used when objects build their models.
// *assets.Catalog implements it.
type Assets interface {
	CloneModel(name string) (assets.ModelSpec, error)
	CloneAnimation(name string) (anim.Clip, error)
	CloneTexture(name string) (assets.Texture, error)
	Audio(name string) (string, bool)
}

// Part is a child of a model, positioned relative to it.
type Part struct {
	Name    string
	Local   core.Vec3
	Visible bool
	Alpha   float64
	Spec    assets.ModelSpec
	Glyph   rune // used instead of Spec when set
	Color   core.Color
}

// Model is the visual representation of a game object.
// The game mutates it; renderers only read it.
type Model struct {
	Position core.Vec3
	Rotation core.Vec3
	Scale    core.Vec3
	Visible  bool
	Spec     assets.ModelSpec
	Parts    []*Part
	Animator *anim.Animator
}

// NewModel creates a visible model of the given spec at the origin.
func NewModel(spec assets.ModelSpec) *Model {
	return &Model{
		Scale:   core.V3(1, 1, 1),
		Visible: true,
		Spec:    spec,
	}
}

// Part returns the named child part, or nil.
func (m *Model) Part(name string) *Part {
	for _, p := range m.Parts {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Object is the record shared by everything placed in the world.
type Object struct {
	model *Model
	scene *Scene
	live  bool
}

// Base returns the object record itself.
func (o *Object) Base() *Object { return o }

// Model returns the visual representation, or nil before attach.
func (o *Object) Model() *Model { return o.model }

// Scene returns the owning scene, or nil when detached.
func (o *Object) Scene() *Scene { return o.scene }

// Live reports whether the object is currently in a scene.
func (o *Object) Live() bool { return o.live }

// Position returns the forward distance along the travel axis.
// Panics with ErrNoModel before the object was attached.
func (o *Object) Position() float64 {
	if o.model == nil {
		panic(ErrNoModel)
	}
	return o.model.Position.Z
}

// SetPosition moves the object along the travel axis.
// Panics with ErrNoModel before the object was attached.
func (o *Object) SetPosition(z float64) {
	if o.model == nil {
		panic(ErrNoModel)
	}
	o.model.Position.Z = z
}

// Updatable is advanced once per frame.
type Updatable interface {
	Process(delta time.Duration)
}

// Collidable objects occupy a lane.
type Collidable interface {
	Lane() *Lane
}

// GameObject is anything the scene can own.
type GameObject interface {
	Updatable
	Base() *Object
	// LoadModel builds the visual representation. It is called exactly once,
	// when the object is added to a scene.
	LoadModel(a Assets) *Model
	OnEnter(s *Scene)
	OnExit(s *Scene)
}

// mustModel resolves a model spec or panics with the lookup error.
func mustModel(a Assets, name string) assets.ModelSpec {
	spec, err := a.CloneModel(name)
	if err != nil {
		panic(err)
	}
	return spec
}
