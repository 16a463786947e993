// Package tui is a terminal rendition of the dashboard driven by the same
// shell as the HTTP surface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/shell"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/views"
	"github.com/shubham-shewale/uptip/pkg/models"
)

const refreshEvery = time.Second

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	navStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	bodyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			MarginLeft(1)

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// State is the part of the shell the terminal reads and drives.
type State interface {
	Snapshot() shell.State
	SetView(id string) models.ViewID
}

type tickMsg time.Time

type Model struct {
	state   State
	entries []views.Entry
	rnd     views.Rand
	now     func() time.Time

	cursor int
	snap   shell.State
	width  int
}

func New(state State, rnd views.Rand) Model {
	m := Model{
		state:   state,
		entries: views.Entries(),
		rnd:     rnd,
		now:     time.Now,
		snap:    state.Snapshot(),
	}
	m.cursor = m.indexOf(m.snap.View)
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			m.state.SetView(string(m.entries[m.cursor].ID))
			m.snap = m.state.Snapshot()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		m.snap = m.state.Snapshot()
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("UPTIP  UGX %s/L  |  %d vessels  |  stock %.0f%%  |  %d OMCs",
		humanize.Comma(int64(m.snap.Metrics.Price)),
		m.snap.Metrics.VesselCount,
		m.snap.Metrics.StockLevel,
		m.snap.Metrics.OMCCount,
	))

	var nav strings.Builder
	for i, e := range m.entries {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		title := e.Title
		if e.ID == m.snap.View {
			title = activeStyle.Render(title)
		}
		nav.WriteString(prefix + title + "\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		navStyle.Render(strings.TrimRight(nav.String(), "\n")),
		bodyStyle.Render(m.body()),
	)
	footer := labelStyle.Render("up/down: move  enter: open  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) body() string {
	in := views.Input{Metrics: m.snap.Metrics, Now: m.now(), Rand: m.rnd}
	cards, err := views.Summary(m.snap.View, in)
	if err != nil {
		return errStyle.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(activeStyle.Render(views.Title(m.snap.View)) + "\n\n")
	for _, c := range cards {
		b.WriteString(labelStyle.Render(c.Label+": ") + c.Value + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) indexOf(id models.ViewID) int {
	for i, e := range m.entries {
		if e.ID == id {
			return i
		}
	}
	return 0
}

// Run blocks until the user quits or ctx ends.
func Run(ctx context.Context, state State, rnd views.Rand) error {
	_, err := tea.NewProgram(New(state, rnd), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
