package borker

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/borker-run/internal/audio"
	"github.com/vovakirdan/borker-run/internal/config"
	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/flow"
	"github.com/vovakirdan/borker-run/internal/progress"
)

// SceneState is one phase of the game: home, runner or battle.
type SceneState interface {
	Name() string
	OnEnter()
	OnExit()
	// Reset clears state-owned data before the scene drops its objects.
	Reset()
	// AfterReset rebuilds the phase once the fresh player exists.
	AfterReset()
	Process(delta time.Duration)
	OnPlayerInput(in PlayerInput)
}

// confirmer is implemented by states that react to Confirm outside dialogue.
type confirmer interface {
	Confirm()
}

// navigator is implemented by states with a menu.
type navigator interface {
	Navigate(d int)
}

// Deps are the collaborators of a scene.
type Deps struct {
	Assets   Assets
	Audio    audio.Player
	UI       UI
	Progress progress.Store
	Logger   *log.Logger
	// OnComplete runs once the ending conversation finished.
	OnComplete func()
}

// Scene owns every live object and the active state.
type Scene struct {
	Rows           int
	TileWidth      float64
	TileLength     float64
	RenderDistance float64

	Player *Player
	Camera *Camera
	// Completed is set once the boss is beaten; collisions stop counting.
	Completed bool

	cfg       config.BorkerConfig
	objects   []GameObject
	obstacles []*Obstacle
	state     SceneState
	floor     FloorSource

	rng    *rand.Rand
	chains flow.Runner
	cancel flow.Source

	assets     Assets
	audio      audio.Player
	ui         UI
	store      progress.Store
	progress   progress.Progress
	logger     *log.Logger
	onComplete func()

	deaths int
}

// NewScene creates a scene with a fresh player and no state.
// Call SetState to start.
func NewScene(cfg config.BorkerConfig, seed int64, deps Deps) *Scene {
	s := &Scene{
		Rows:           cfg.Scene.Rows,
		TileWidth:      cfg.Scene.TileWidth,
		TileLength:     cfg.Scene.TileLength,
		RenderDistance: cfg.Scene.RenderDistance,
		Camera:         NewCamera(),
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(seed)),
		assets:         deps.Assets,
		audio:          deps.Audio,
		ui:             deps.UI,
		store:          deps.Progress,
		logger:         deps.Logger,
		onComplete:     deps.OnComplete,
	}
	if s.audio == nil {
		s.audio = audio.Nop{}
	}
	if s.ui == nil {
		s.ui = newHUD()
	}
	if s.store == nil {
		s.store = progress.NewMemory(progress.Progress{})
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	p, err := s.store.Load()
	if err != nil {
		s.logger.Warn("progress unavailable, starting fresh", "err", err)
	}
	s.progress = p
	s.addPlayer()
	return s
}

// Config returns the game configuration.
func (s *Scene) Config() config.BorkerConfig { return s.cfg }

// State returns the active state.
func (s *Scene) State() SceneState { return s.state }

// UI returns the presentation collaborator.
func (s *Scene) UI() UI { return s.ui }

// Rand returns the scene's random source.
func (s *Scene) Rand() *rand.Rand { return s.rng }

// Deaths returns how often the player died.
func (s *Scene) Deaths() int { return s.deaths }

// Objects returns the live objects in insertion order.
func (s *Scene) Objects() []GameObject {
	out := make([]GameObject, 0, len(s.objects))
	for _, o := range s.objects {
		if o.Base().live {
			out = append(out, o)
		}
	}
	return out
}

// Obstacles returns the live obstacles in insertion order.
func (s *Scene) Obstacles() []*Obstacle { return s.obstacles }

// Floor returns the floor of the active state, or nil.
func (s *Scene) Floor() FloorSource { return s.floor }

// SetFloor replaces the floor to draw.
func (s *Scene) SetFloor(f FloorSource) { s.floor = f }

// RowX returns the lateral offset of a row.
func (s *Scene) RowX(row int) float64 {
	return float64(row) * s.TileWidth
}

// AddObject attaches o: it gets the scene, builds its model and enters.
// Panics with ErrNoModel if LoadModel returns nil.
func (s *Scene) AddObject(o GameObject) {
	b := o.Base()
	b.scene = s
	m := o.LoadModel(s.assets)
	if m == nil {
		panic(ErrNoModel)
	}
	b.model = m
	b.live = true
	s.objects = append(s.objects, o)
	o.OnEnter(s)
}

// RemoveObject detaches o. Removing a detached object does nothing.
func (s *Scene) RemoveObject(o GameObject) {
	b := o.Base()
	if !b.live {
		return
	}
	o.OnExit(s)
	b.live = false
	b.model.Visible = false
	b.scene = nil
}

func (s *Scene) compact() {
	s.objects = slices.DeleteFunc(s.objects, func(o GameObject) bool {
		return !o.Base().live
	})
}

func (s *Scene) trackObstacle(o *Obstacle) {
	s.obstacles = append(s.obstacles, o)
}

func (s *Scene) untrackObstacle(o *Obstacle) {
	if i := slices.Index(s.obstacles, o); i >= 0 {
		s.obstacles = slices.Delete(s.obstacles, i, i+1)
	}
}

func (s *Scene) addPlayer() {
	s.Player = NewPlayer(s.cfg.Player)
	s.AddObject(s.Player)
}

// Reset cancels running chains, clears the state, replaces every object
// with a fresh player and lets the state rebuild.
func (s *Scene) Reset() {
	s.cancel.Cancel()
	s.chains.Clear()
	if s.state != nil {
		s.state.Reset()
	}
	for _, o := range s.objects {
		s.RemoveObject(o)
	}
	s.objects = s.objects[:0]
	s.obstacles = s.obstacles[:0]
	s.addPlayer()
	if s.state != nil {
		s.state.AfterReset()
	}
	s.logger.Debug("scene reset")
}

// SetState leaves the active state, resets the scene and enters next.
func (s *Scene) SetState(next SceneState) {
	if s.state != nil {
		s.logger.Debug("scene state", "from", s.state.Name(), "to", next.Name())
		s.state.OnExit()
		s.Reset()
	} else {
		s.logger.Debug("scene state", "to", next.Name())
	}
	s.state = next
	next.OnEnter()
}

// Go starts a chain that a later Reset cancels.
func (s *Scene) Go(steps ...flow.Step) *flow.Chain {
	return s.chains.Go(s.cancel.Token(), steps...)
}

// CheckCollision reports whether the player hits any obstacle.
func (s *Scene) CheckCollision() bool {
	p := s.Player
	if p.State() == PlayerDeath || s.Completed {
		return false
	}
	pr := p.lane.Range()
	for _, o := range s.obstacles {
		if o.lane.Row() != p.lane.Row() || o.lane.Floor != p.lane.Floor {
			continue
		}
		if o.lane.Range().Overlaps(pr) {
			return true
		}
	}
	return false
}

// OnPlayerInput forwards input to the active state.
func (s *Scene) OnPlayerInput(in PlayerInput) {
	if s.state != nil {
		s.state.OnPlayerInput(in)
	}
}

// Confirm dismisses the open dialogue box or activates the state's menu.
func (s *Scene) Confirm() {
	if s.ui.DialogueOpen() {
		s.ui.Dismiss()
		return
	}
	if c, ok := s.state.(confirmer); ok {
		c.Confirm()
	}
}

// Navigate moves a menu cursor if the active state has one.
func (s *Scene) Navigate(d int) {
	if n, ok := s.state.(navigator); ok {
		n.Navigate(d)
	}
}

// Process advances every live object, then the state, then the chains.
func (s *Scene) Process(delta time.Duration) {
	n := len(s.objects)
	for i := 0; i < n && i < len(s.objects); i++ {
		o := s.objects[i]
		if !o.Base().live {
			continue
		}
		o.Process(delta)
	}
	if s.state != nil {
		s.state.Process(delta)
	}
	s.chains.Advance()
	s.compact()
}

// Progress returns the persisted flags.
func (s *Scene) Progress() progress.Progress { return s.progress }

// saveProgress persists p, logging a failure.
func (s *Scene) saveProgress(p progress.Progress) {
	s.progress = p
	if err := s.store.Save(p); err != nil {
		s.logger.Warn("cannot save progress", "err", err)
	}
}

// clearProgress forgets the persisted flags.
func (s *Scene) clearProgress() {
	s.progress = progress.Progress{}
	if err := s.store.Clear(); err != nil {
		s.logger.Warn("cannot clear progress", "err", err)
	}
}

// playMusic starts a track. Unknown tracks are programmer errors.
func (s *Scene) playMusic(name string, loop bool) {
	track, ok := s.assets.Audio(name)
	if !ok {
		panic(fmt.Errorf("borker: unknown track %q", name))
	}
	if err := s.audio.Play(track, loop); err != nil {
		if errors.Is(err, audio.ErrUnknownTrack) {
			panic(err)
		}
		s.logger.Warn("cannot play music", "track", track, "err", err)
	}
}

// died records a player death.
func (s *Scene) died() {
	s.deaths++
	s.logger.Debug("player died", "deaths", s.deaths, "state", s.state.Name())
}

// complete runs the game-complete collaborator.
func (s *Scene) complete() {
	s.logger.Debug("game complete")
	if s.onComplete != nil {
		s.onComplete()
	}
}

// cameraOffset converts a config vector.
func cameraOffset(v config.Vec) core.Vec3 {
	return core.V3(v.X, v.Y, v.Z)
}
