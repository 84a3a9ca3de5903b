// Package next shows a short card while a new city is laid out.
package next

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/zombicity/internal/render"
	"github.com/vinser/zombicity/internal/style"
)

const nextPeriod = 1500 * time.Millisecond

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	seed      int64
	cityW     int
	cityH     int
	nextUntil time.Time
}

// TickMsg is a tick message for periodic updates.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TimedoutMsg signals the end of the transition period.
type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New(seed int64, cityW, cityH, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{
		width:  width,
		height: height,

		seed:      seed,
		cityW:     cityW,
		cityH:     cityH,
		nextUntil: time.Now().Add(nextPeriod),
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

// Seed returns the seed of the city being generated.
func (m Model) Seed() int64 {
	return m.seed
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		// Keys pressed during the card would replay on the new city.
		return m, nil
	case TickMsg:
		if time.Now().After(m.nextUntil) {
			return m, timedoutCmd()
		}
		return m, tick()
	}
	return m, nil
}

const footer = "clearing the streets..."

func (m Model) View() string {
	flash := ""
	if (time.Now().UnixNano()/int64(time.Millisecond)/500)%2 == 0 {
		flash = fmt.Sprintf("Laying out city %s", style.Seed.Render(fmt.Sprint(m.seed)))
	}
	return render.Page(flash, m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	return fmt.Sprintf("\n%d × %d blocks\n", m.cityW, m.cityH)
}
