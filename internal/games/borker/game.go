package borker

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/borker-run/internal/assets"
	"github.com/vovakirdan/borker-run/internal/audio"
	"github.com/vovakirdan/borker-run/internal/config"
	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/flow"
	"github.com/vovakirdan/borker-run/internal/progress"
	"github.com/vovakirdan/borker-run/internal/registry"
	"github.com/vovakirdan/borker-run/internal/storage"
)

// ID is the registry identifier of the game.
const ID = "borker"

// RunRecorder stores completed runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a game instance. Zero values pick defaults: the
// embedded catalog, silent audio, in-memory progress and no run history.
type Options struct {
	ConfigPath string
	Preset     config.DifficultyPreset
	Assets     Assets
	Audio      audio.Player
	Progress   progress.Store
	Runs       RunRecorder
	Profile    string
	Logger     *log.Logger
	// UI replaces the built-in HUD. The HUD method reports nothing then.
	UI UI
}

// Game adapts the scene to the platform: it owns the frame loop entry point,
// pause and restart, and exposes the HUD.
type Game struct {
	opts       Options
	runtime    core.RuntimeConfig
	cfg        config.BorkerConfig
	scene      *Scene
	hud        *hud
	controller *Controller

	paused   bool
	won      bool
	gameOver bool
	played   time.Duration
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(Options{})
	})
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	if opts.Assets == nil {
		opts.Assets = assets.MustDefault()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Progress == nil {
		opts.Progress = progress.NewMemory(progress.Progress{})
	}
	if opts.Profile == "" {
		opts.Profile = storage.DefaultProfile
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Borker Run"
}

// Reset loads the configuration and starts over on the home screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBorker(g.opts.ConfigPath)
	if err != nil {
		g.opts.Logger.Warn("cannot load config, using defaults", "err", err)
		cfg = config.DefaultBorkerConfig()
	}
	if g.opts.Preset != "" {
		config.ApplyPreset(&cfg, g.opts.Preset)
	}
	g.cfg = cfg

	ui := g.opts.UI
	g.hud = nil
	if ui == nil {
		g.hud = newHUD()
		ui = g.hud
	}
	g.controller = NewController(cfg.Controls.SwipeThreshold, cfg.Controls.JumpThreshold)
	g.paused = false
	g.won = false
	g.gameOver = false
	g.played = 0

	g.scene = NewScene(cfg, runtime.Seed, Deps{
		Assets:     g.opts.Assets,
		Audio:      g.opts.Audio,
		UI:         ui,
		Progress:   g.opts.Progress,
		Logger:     g.opts.Logger,
		OnComplete: g.onGameComplete,
	})
	g.scene.SetState(NewHomeState(g.scene))
}

// Scene returns the running scene.
func (g *Game) Scene() *Scene { return g.scene }

// Config returns the active configuration.
func (g *Game) Config() config.BorkerConfig { return g.cfg }

// Step advances the game by delta of wall-clock time.
func (g *Game) Step(in core.InputFrame, delta time.Duration) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.controller.Feed(in)
	if _, home := g.scene.State().(*HomeState); home {
		g.homeInput(in)
	} else if pi, ok := g.controller.Sample(); ok {
		g.scene.OnPlayerInput(pi)
	}
	if g.controller.Confirmed() {
		g.scene.Confirm()
	}

	g.played += delta
	g.scene.Process(delta)
	return core.StepResult{State: g.State()}
}

// homeInput maps directions to menu navigation on the title screen.
func (g *Game) homeInput(in core.InputFrame) {
	g.controller.Sample()
	switch {
	case in.Has(core.ActionUp), in.Has(core.ActionLeft):
		g.scene.Navigate(-1)
	case in.Has(core.ActionDown), in.Has(core.ActionRight):
		g.scene.Navigate(1)
	}
}

func (g *Game) onGameComplete() {
	s := g.scene
	if g.opts.Runs != nil {
		run := storage.Run{
			Profile:  g.opts.Profile,
			Won:      true,
			Deaths:   s.Deaths(),
			Distance: int(s.Player.Position()),
			Duration: g.played,
		}
		if _, err := g.opts.Runs.SaveRun(run); err != nil {
			g.opts.Logger.Warn("cannot save run", "err", err)
		}
	}
	s.ui.Clear()
	steps := Converse(s.ui, gameCompleteDialogue)
	steps = append(steps, func() *flow.Signal {
		g.won = true
		g.gameOver = true
		return nil
	})
	s.Go(steps...)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused,
		Won:      g.won,
	}
	if g.scene != nil {
		st.Score = int(g.scene.Player.Position())
		st.Deaths = g.scene.Deaths()
	}
	return st
}

// HUD returns the overlay for the front end.
func (g *Game) HUD() core.HUD {
	if g.hud == nil {
		return core.HUD{}
	}
	return g.hud.snapshot()
}

// Played returns the time spent outside pause.
func (g *Game) Played() time.Duration { return g.played }
