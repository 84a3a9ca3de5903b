package quit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/zombicity/internal/style"
)

const quitPeriod = 2 * time.Second

type Model struct {
	seed      int64
	quitUntil time.Time
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New says goodbye and reminds the seed of the city being left.
func New(seed int64) Model {
	return Model{
		seed:      seed,
		quitUntil: time.Now().Add(quitPeriod),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

func (m Model) View() string {
	return fmt.Sprintf("\nThe city will still be there. Seed %s.\nBye!\n", style.Seed.Render(fmt.Sprint(m.seed)))
}
