package borker

import (
	"math"
	"strings"

	"github.com/vovakirdan/borker-run/internal/core"
)

// cellAspect is how much taller than wide a terminal cell is.
const cellAspect = 2.0

// minSpriteCells is the projected width below which a model is drawn as a
// single glyph.
const minSpriteCells = 3.0

// Render draws the world into dst. The HUD is drawn by the front end.
func (g *Game) Render(dst *core.Screen) {
	if g.scene == nil {
		return
	}
	renderView(dst, g.scene.View())
	if g.paused {
		drawPauseBox(dst)
	}
}

// drawPauseBox overlays a framed PAUSED label in the middle of dst.
func drawPauseBox(dst *core.Screen) {
	const label = "PAUSED"
	w, h := len(label)+4, 3
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	_, cy := box.Center()
	dst.DrawTextCentered(cy, label)
}

func renderView(dst *core.Screen, v View) {
	w, h := float64(dst.Width()), float64(dst.Height())
	cam := v.Camera

	dst.DrawHLine(0, int(horizonLine*h), dst.Width(), '.', core.ColorGray)

	for _, t := range v.Tiles {
		drawTile(dst, cam, v, t, w, h)
	}
	bounds := core.NewRect(0, 0, dst.Width(), dst.Height())
	for _, d := range v.Drawables {
		drawDrawable(dst, cam, d, bounds, w, h)
	}
}

func drawTile(dst *core.Screen, cam Camera, v View, t Tile, w, h float64) {
	glyph := '_'
	color := core.ColorYellow
	if t.Model == "battleFloor" {
		glyph = '='
		color = core.ColorMagenta
	}
	half := v.TileWidth / 2
	x := v.RowX(t.Row)
	start, end := t.Z-t.Length/2, t.Z+t.Length/2
	step := math.Max(t.Length/8, 1)
	for z := start; z <= end; z += step {
		lx, ly, _, ok := cam.Project(core.V3(x-half, 0, z), w, h, cellAspect)
		if !ok {
			continue
		}
		rx, _, _, _ := cam.Project(core.V3(x+half, 0, z), w, h, cellAspect)
		y := int(ly)
		if y <= int(horizonLine*h) || y >= dst.Height() {
			continue
		}
		a, b := int(math.Min(lx, rx)), int(math.Max(lx, rx))
		for cx := a + 1; cx < b; cx++ {
			if dst.Get(cx, y) == ' ' {
				dst.SetColored(cx, y, glyph, color)
			}
		}
		dst.SetColored(a, y, '|', core.ColorGray)
		dst.SetColored(b, y, '|', core.ColorGray)
	}
}

func drawDrawable(dst *core.Screen, cam Camera, d Drawable, bounds core.Rect, w, h float64) {
	if d.Scale.Length() < 0.01 {
		return
	}
	sx, sy, scale, ok := cam.Project(d.Position, w, h, cellAspect)
	if !ok {
		return
	}
	x, y := int(math.Round(sx)), int(math.Round(sy))

	if d.Glyph != 0 {
		if d.Alpha >= 0.6 && bounds.Contains(x, y) {
			dst.SetColored(x, y, d.Glyph, d.Color)
		}
		return
	}
	sprite := d.Spec.Sprite
	if len(sprite) == 0 {
		return
	}
	if d.Spec.Width*scale*cellAspect*d.Scale.X < minSpriteCells {
		if bounds.Contains(x, y) {
			dst.SetColored(x, y, firstGlyph(sprite), d.Color)
		}
		return
	}
	lines := animateSprite(sprite, d.Frame)
	if !bounds.Intersects(spriteBounds(lines, x, y)) {
		return
	}
	for i, line := range lines {
		row := y - (len(lines) - 1 - i)
		col := x - len([]rune(line))/2
		for j, r := range []rune(line) {
			if r != ' ' {
				dst.SetColored(col+j, row, r, d.Color)
			}
		}
	}
}

// spriteBounds is the cell rectangle a sprite covers when its bottom row
// is centred on (x, y).
func spriteBounds(lines []string, x, y int) core.Rect {
	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	return core.NewRect(x-w/2, y-len(lines)+1, w, len(lines))
}

// animateSprite mirrors the legs on odd frames.
func animateSprite(sprite []string, frame int) []string {
	if frame%2 == 0 || len(sprite) < 2 {
		return sprite
	}
	out := make([]string, len(sprite))
	copy(out, sprite)
	last := []rune(out[len(out)-1])
	for i, r := range last {
		switch r {
		case '/':
			last[i] = '\\'
		case '\\':
			last[i] = '/'
		}
	}
	out[len(out)-1] = string(last)
	return out
}

func firstGlyph(sprite []string) rune {
	for _, line := range sprite {
		if r := strings.TrimSpace(line); r != "" {
			return []rune(r)[0]
		}
	}
	return '*'
}
