package borker

import (
	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/flow"
)

// Line is one dialogue line.
type Line struct {
	Speaker string
	Text    string
}

// Banner is the caption above the progress bar.
type Banner struct {
	Text  string
	Color core.Color
}

// HomeMenu is the title screen.
type HomeMenu struct {
	Title    string
	Items    []string
	Selected int
}

// UI is the presentation collaborator of the scene.
type UI interface {
	ShowHome(menu HomeMenu)
	ShowProgress(b Banner)
	// SetProgress sets the progress bar fill in [0, 1].
	SetProgress(pct float64)
	// Clear hides the menu and the progress bar.
	Clear()
	// Say opens a dialogue box. The signal fires when the viewer dismisses
	// it.
	Say(l Line) *flow.Signal
	ClearDialogue()
	// DialogueOpen reports whether a dialogue box waits for the viewer.
	DialogueOpen() bool
	// Dismiss closes the open dialogue box, if any.
	Dismiss()
}

// hud is the in-game UI. Front ends read it through HUD().
type hud struct {
	menu     *HomeMenu
	banner   *Banner
	progress float64
	line     *Line
	waiting  *flow.Signal
}

func newHUD() *hud { return &hud{} }

func (h *hud) ShowHome(menu HomeMenu) {
	h.menu = &menu
	h.banner = nil
}

func (h *hud) ShowProgress(b Banner) {
	h.banner = &b
	h.menu = nil
	h.progress = 0
}

func (h *hud) SetProgress(pct float64) {
	h.progress = core.ClampF(pct, 0, 1)
}

func (h *hud) Clear() {
	h.menu = nil
	h.banner = nil
}

func (h *hud) Say(l Line) *flow.Signal {
	h.Dismiss()
	h.line = &l
	h.waiting = flow.NewSignal()
	return h.waiting
}

func (h *hud) ClearDialogue() {
	h.line = nil
	h.waiting = nil
}

func (h *hud) DialogueOpen() bool { return h.line != nil && h.waiting != nil && !h.waiting.Fired() }

func (h *hud) Dismiss() {
	if h.waiting != nil {
		h.waiting.Fire()
	}
}

func (h *hud) snapshot() core.HUD {
	var out core.HUD
	if h.banner != nil {
		out.Banner = h.banner.Text
		out.Progress = h.progress
	}
	if h.line != nil {
		out.Speaker = h.line.Speaker
		out.Dialogue = h.line.Text
	}
	if h.menu != nil {
		out.Title = h.menu.Title
		for i, item := range h.menu.Items {
			out.Menu = append(out.Menu, core.MenuItem{Label: item, Selected: i == h.menu.Selected})
		}
	}
	return out
}
