package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/borker-run/internal/storage"
)

const maxRuns = 100

// RunSource lists stored runs. *storage.Store implements it.
type RunSource interface {
	RecentRuns(profile string, limit int) ([]storage.Run, error)
	BestRun(profile string) (*storage.Run, error)
}

// RunsKeyMap defines the key bindings for the runs screen.
type RunsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model listing a profile's runs.
type RunsModel struct {
	profile string
	runs    []storage.Run
	best    *storage.Run
	err     error
	table   table.Model
	help    help.Model
	keys    RunsKeyMap
	width   int
	height  int
}

// NewRunsModel loads the runs of profile from src.
func NewRunsModel(src RunSource, profile string, width, height int) RunsModel {
	m := RunsModel{
		profile: profile,
		keys:    DefaultRunsKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.runs, m.err = src.RecentRuns(profile, maxRuns)
	if m.err == nil {
		m.best, m.err = src.BestRun(profile)
	}
	m.table = m.createTable()
	m.table.SetRows(runRows(m.runs))
	return m
}

func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Result", Width: 8},
		{Title: "Deaths", Width: 8},
		{Title: "Distance", Width: 10},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			runResult(r),
			fmt.Sprintf("%d", r.Deaths),
			fmt.Sprintf("%d", r.Distance),
			r.Duration.Round(time.Second).String(),
		}
	}
	return rows
}

func runResult(r storage.Run) string {
	if r.Won {
		return "won"
	}
	return "lost"
}

// Init initializes the runs model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs screen.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs screen.
func (m RunsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("RUNS - " + m.profile))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.err != nil:
		b.WriteString(boxStyle.Render("Cannot load runs: " + m.err.Error()))
	case len(m.runs) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No runs recorded yet.\nBeat the SandWitch to record one!")))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
		if m.best != nil {
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("Best: %d deaths in %s",
				m.best.Deaths, m.best.Duration.Round(time.Second)))
		}
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunRuns shows the runs screen until the user quits.
func RunRuns(src RunSource, profile string, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(src, profile, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
