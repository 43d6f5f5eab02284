package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/borker-run/internal/core"
)

// Rows reserved around the world view.
const (
	hudTopRows    = 1
	hudBottomRows = 5
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	speakerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("204"))

	dialogueStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// hudView draws the game's HUD with bubbles widgets around the world view.
type hudView struct {
	bar   progress.Model
	help  help.Model
	keys  KeyMap
	width int
}

func newHUDView(keys KeyMap, width int) hudView {
	h := hudView{
		bar:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help: help.New(),
		keys: keys,
	}
	h.resize(width)
	return h
}

func (h *hudView) resize(width int) {
	h.width = width
	h.help.Width = width
	h.bar.Width = max(width/2, 10)
}

// top renders the banner line: the progress bar and the win status.
func (h hudView) top(hd core.HUD, st core.GameState) string {
	var parts []string
	if hd.Banner != "" {
		parts = append(parts, bannerStyle.Render(hd.Banner), h.bar.ViewAs(core.ClampF(hd.Progress, 0, 1)))
	}
	if st.Won {
		parts = append(parts, statusStyle.Render("YOU WON - r to play again"))
	}
	return lipgloss.NewStyle().
		MaxWidth(h.width).
		Render(strings.Join(parts, " "))
}

// bottom renders the dialogue box, the home menu or the key help.
func (h hudView) bottom(hd core.HUD) string {
	var body string
	switch {
	case hd.DialogueOpen():
		body = h.dialogue(hd)
	case len(hd.Menu) > 0:
		body = h.menu(hd) + "\n" + helpStyle.Render(h.help.View(h.keys))
	default:
		body = helpStyle.Render(h.help.View(h.keys))
	}
	return lipgloss.NewStyle().
		Height(hudBottomRows).
		MaxHeight(hudBottomRows).
		Render(body)
}

func (h hudView) dialogue(hd core.HUD) string {
	text := hd.Dialogue
	if hd.Speaker != "" {
		text = speakerStyle.Render(hd.Speaker) + "\n" + text
	}
	return dialogueStyle.Width(max(h.width-2, 10)).Render(text + "  ⏎")
}

func (h hudView) menu(hd core.HUD) string {
	lines := []string{menuTitleStyle.Render(hd.Title)}
	for _, item := range hd.Menu {
		if item.Selected {
			lines = append(lines, menuSelectedStyle.Render("> "+item.Label))
		} else {
			lines = append(lines, menuItemStyle.Render("  "+item.Label))
		}
	}
	return strings.Join(lines, "\n")
}
