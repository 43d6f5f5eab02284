package borker

import (
	"time"

	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/flow"
)

// Home menu entries.
const (
	MenuPlay          = "Play"
	MenuResetProgress = "Reset progress"
)

var homeItems = []string{MenuPlay, MenuResetProgress}

// HomeState is the title screen: Mr Borker dances while the menu is shown.
type HomeState struct {
	scene    *Scene
	selected int
}

// NewHomeState creates the title screen state.
func NewHomeState(s *Scene) *HomeState {
	return &HomeState{scene: s}
}

func (h *HomeState) Name() string { return "home" }

func (h *HomeState) OnEnter() {
	s := h.scene
	h.setup()
	h.showMenu()
	s.playMusic("dance", true)
	if !s.progress.IntroShown {
		steps := Converse(s.ui, introDialogue)
		steps = append(steps, func() *flow.Signal {
			p := s.progress
			p.IntroShown = true
			s.saveProgress(p)
			s.ui.ClearDialogue()
			return nil
		})
		s.Go(steps...)
	}
}

func (h *HomeState) showMenu() {
	h.scene.ui.ShowHome(HomeMenu{Title: "Borker Run", Items: homeItems, Selected: h.selected})
}

func (h *HomeState) setup() {
	s := h.scene
	s.Player.SetState(PlayerHappy)
	pos := s.Player.Model().Position
	s.Camera.Place(pos.Add(core.V3(0, 5, 10)), pos.Add(core.V3(0, 2.5, 0)))
}

func (h *HomeState) OnExit() {
	h.scene.ui.ClearDialogue()
	h.scene.ui.Clear()
}

func (h *HomeState) Reset() {}

func (h *HomeState) AfterReset() { h.setup() }

func (h *HomeState) Process(time.Duration) {}

// OnPlayerInput ignores gameplay input on the title screen.
func (h *HomeState) OnPlayerInput(PlayerInput) {}

// Navigate moves the menu cursor, wrapping around.
func (h *HomeState) Navigate(d int) {
	n := len(homeItems)
	h.selected = ((h.selected+d)%n + n) % n
	h.showMenu()
}

// Selected returns the menu entry under the cursor.
func (h *HomeState) Selected() string { return homeItems[h.selected] }

// Confirm activates the selected menu entry.
func (h *HomeState) Confirm() {
	switch h.Selected() {
	case MenuPlay:
		h.Play()
	case MenuResetProgress:
		h.ResetProgress()
	}
}

// Play starts the battle if the checkpoint was reached, the runner
// otherwise.
func (h *HomeState) Play() {
	s := h.scene
	if s.progress.CheckpointReached {
		s.SetState(NewBattleState(s))
		return
	}
	s.SetState(NewRunnerState(s))
}

// ResetProgress forgets the intro and the checkpoint.
func (h *HomeState) ResetProgress() {
	h.scene.clearProgress()
	h.scene.logger.Debug("progress reset")
}
