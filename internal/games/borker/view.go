package borker

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/borker-run/internal/assets"
	"github.com/vovakirdan/borker-run/internal/core"
)

// Drawable is one flattened model or part, in world space.
type Drawable struct {
	Position core.Vec3
	Scale    core.Vec3
	Spec     assets.ModelSpec
	Glyph    rune
	Color    core.Color
	Alpha    float64
	Frame    int
	Depth    float64
}

// View is a read-only snapshot of what the camera sees.
type View struct {
	Camera    Camera
	Tiles     []Tile
	TileWidth float64
	Drawables []Drawable // far to near
}

// RowX returns the lateral offset of a row.
func (v View) RowX(row int) float64 {
	return float64(row) * v.TileWidth
}

// View captures the scene for a renderer.
func (s *Scene) View() View {
	v := View{Camera: *s.Camera, TileWidth: s.TileWidth}
	if s.floor != nil {
		v.Tiles = slices.Clone(s.floor.Tiles())
	}
	f := s.Camera.Facing()
	for _, o := range s.objects {
		m := o.Base().model
		if !o.Base().live || m == nil || !m.Visible {
			continue
		}
		frame := 0
		if m.Animator != nil {
			if a := m.Animator.Current(); a != nil {
				frame = a.Frame()
			}
		}
		if len(m.Spec.Sprite) > 0 {
			v.Drawables = append(v.Drawables, Drawable{
				Position: m.Position,
				Scale:    m.Scale,
				Spec:     m.Spec,
				Color:    m.Spec.Color,
				Alpha:    1,
				Frame:    frame,
			})
		}
		for _, p := range m.Parts {
			if !p.Visible {
				continue
			}
			color := p.Color
			if p.Glyph == 0 {
				color = p.Spec.Color
			}
			v.Drawables = append(v.Drawables, Drawable{
				Position: m.Position.Add(p.Local),
				Scale:    m.Scale,
				Spec:     p.Spec,
				Glyph:    p.Glyph,
				Color:    color,
				Alpha:    p.Alpha,
				Frame:    frame,
			})
		}
	}
	for i := range v.Drawables {
		v.Drawables[i].Depth = (v.Drawables[i].Position.Z - s.Camera.Position.Z) * f
	}
	slices.SortStableFunc(v.Drawables, func(a, b Drawable) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return v
}
