// Package window runs Borker Run in a desktop window with Ebitengine.
// Keyboard, mouse drags and touch swipes all feed the same input frame the
// terminal front end produces.
package window

import (
	"errors"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/games/borker"
)

// errQuit ends RunGame without reporting a failure.
var errQuit = errors.New("window: quit")

// pixelAspect is the width/height ratio of a screen pixel.
const pixelAspect = 1.0

var (
	colorSky     = color.RGBA{0x8e, 0xd1, 0xfc, 0xff}
	colorGround  = color.RGBA{0xc2, 0xa8, 0x78, 0xff}
	colorEdge    = color.RGBA{0x5c, 0x4a, 0x36, 0xff}
	colorBarBack = color.RGBA{0x3c, 0x3c, 0x3c, 0xff}
	colorBarFill = color.RGBA{0xf0, 0xb5, 0x41, 0xff}
	colorPanel   = color.RGBA{0x1a, 0x1a, 0x2e, 0xe0}
)

var keyActions = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionJump},
	{[]ebiten.Key{ebiten.KeyEnter}, core.ActionConfirm},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
}

// Game implements ebiten.Game around a borker.Game.
type Game struct {
	game    *borker.Game
	config  core.RuntimeConfig
	logger  *log.Logger
	state   core.GameState
	last    time.Time
	touches []ebiten.TouchID
}

// New creates the window front end. cfg.ScreenW and cfg.ScreenH are the
// logical size in pixels.
func New(game *borker.Game, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		game:   game,
		config: cfg,
		logger: logger.WithPrefix("borker-window"),
	}
}

// Update advances the game by the wall-clock time since the previous update.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}

	now := time.Now()
	delta := g.config.FrameDuration()
	if !g.last.IsZero() {
		delta = min(now.Sub(g.last), 100*time.Millisecond)
	}
	g.last = now

	in := g.input()
	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.config.Seed = now.UnixNano()
		g.game.Reset(g.config)
		g.state = g.game.State()
		g.logger.Debug("restarted", "seed", g.config.Seed)
		return nil
	}

	g.state = g.game.Step(in, delta).State
	return nil
}

func (g *Game) input() core.InputFrame {
	in := core.NewInputFrame()
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Set(ka.action)
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.AddTouch(core.TouchStart, float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.AddTouch(core.TouchEnd, float64(x), float64(y))
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		in.AddTouch(core.TouchStart, float64(x), float64(y))
	}
	g.touches = inpututil.AppendJustReleasedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		in.AddTouch(core.TouchEnd, float64(x), float64(y))
	}
	return in
}

// Draw renders the world and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)
	scene := g.game.Scene()
	if scene == nil {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawView(screen, scene.View(), float64(w), float64(h))
	drawHUD(screen, g.game.HUD(), g.state, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.config.ScreenW, g.config.ScreenH
}

func drawView(dst *ebiten.Image, v borker.View, w, h float64) {
	cam := v.Camera
	for _, t := range v.Tiles {
		drawTile(dst, cam, v, t, w, h)
	}
	for _, d := range v.Drawables {
		drawDrawable(dst, cam, d, w, h)
	}
}

func drawTile(dst *ebiten.Image, cam borker.Camera, v borker.View, t borker.Tile, w, h float64) {
	half := v.TileWidth / 2
	x := v.RowX(t.Row)
	start, end := t.Z-t.Length/2, t.Z+t.Length/2
	step := math.Max(t.Length/32, 0.5)
	for z := start; z < end; z += step {
		lx, ly, _, ok := cam.Project(core.V3(x-half, 0, z), w, h, pixelAspect)
		if !ok {
			continue
		}
		rx, _, _, _ := cam.Project(core.V3(x+half, 0, z), w, h, pixelAspect)
		_, ny, _, ok := cam.Project(core.V3(x-half, 0, z+step), w, h, pixelAspect)
		if !ok {
			continue
		}
		left, right := math.Min(lx, rx), math.Max(lx, rx)
		top, height := math.Min(ly, ny), math.Max(math.Abs(ly-ny), 1)
		vector.DrawFilledRect(dst, float32(left), float32(top), float32(right-left), float32(height), colorGround, false)
		vector.DrawFilledRect(dst, float32(left), float32(top), 1, float32(height), colorEdge, false)
		vector.DrawFilledRect(dst, float32(right-1), float32(top), 1, float32(height), colorEdge, false)
	}
}

// spriteRect returns the bottom-anchored screen rectangle of a model of
// size (mw, mh) projected at (sx, sy) with the given scale.
func spriteRect(sx, sy, scale, mw, mh float64) (x, y, w, h float64) {
	w, h = mw*scale, mh*scale
	return sx - w/2, sy - h, w, h
}

func drawDrawable(dst *ebiten.Image, cam borker.Camera, d borker.Drawable, w, h float64) {
	if d.Scale.Length() < 0.01 {
		return
	}
	sx, sy, scale, ok := cam.Project(d.Position, w, h, pixelAspect)
	if !ok {
		return
	}
	clr := d.Color.RGBA()
	if d.Glyph != 0 {
		if d.Alpha < 0.6 {
			return
		}
		size := math.Max(scale*2, 3)
		vector.DrawFilledRect(dst, float32(sx-size/2), float32(sy-size/2), float32(size), float32(size), clr, false)
		return
	}
	rx, ry, rw, rh := spriteRect(sx, sy, scale, d.Spec.Width*d.Scale.X, d.Spec.Height*d.Scale.Y)
	vector.DrawFilledRect(dst, float32(rx), float32(ry), float32(math.Max(rw, 1)), float32(math.Max(rh, 1)), clr, false)
}

// progressWidth returns the filled width of a bar of the given width.
func progressWidth(p float64, width int) int {
	return int(core.ClampF(p, 0, 1) * float64(width))
}

func drawHUD(dst *ebiten.Image, hd core.HUD, st core.GameState, w, h int) {
	if hd.Banner != "" {
		barW := w / 2
		ebitenutil.DebugPrintAt(dst, hd.Banner, 8, 8)
		vector.DrawFilledRect(dst, 80, 10, float32(barW), 10, colorBarBack, false)
		vector.DrawFilledRect(dst, 80, 10, float32(progressWidth(hd.Progress, barW)), 10, colorBarFill, false)
	}
	switch {
	case st.Won:
		ebitenutil.DebugPrintAt(dst, "YOU WON - R to play again", w/2-75, 28)
	case st.Paused:
		ebitenutil.DebugPrintAt(dst, "PAUSED", w/2-18, 28)
	}

	switch {
	case hd.DialogueOpen():
		panelH := 56
		vector.DrawFilledRect(dst, 8, float32(h-panelH-8), float32(w-16), float32(panelH), colorPanel, false)
		ebitenutil.DebugPrintAt(dst, hd.Speaker, 16, h-panelH)
		ebitenutil.DebugPrintAt(dst, hd.Dialogue, 16, h-panelH+18)
		ebitenutil.DebugPrintAt(dst, "[enter / tap]", w-100, h-26)
	case len(hd.Menu) > 0:
		y := h/2 - 10*len(hd.Menu)
		ebitenutil.DebugPrintAt(dst, hd.Title, w/2-30, y-24)
		for i, item := range hd.Menu {
			label := "  " + item.Label
			if item.Selected {
				label = "> " + item.Label
			}
			ebitenutil.DebugPrintAt(dst, label, w/2-40, y+i*18)
		}
	}
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(game *borker.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	g := New(game, cfg, logger)
	game.Reset(g.config)

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	g.logger.Info("window opened", "width", cfg.ScreenW, "height", cfg.ScreenH)
	err := ebiten.RunGame(g)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
