// Package motd scrolls a random tip across the bottom of the screen.
package motd

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/zombicity/internal/embeddata"
)

const fallbackTip = "Stay off the streets after dark."

type Model struct {
	tips       []string
	style      lipgloss.Style
	frameWidth int
	repeats    int
	interval   time.Duration

	current   []rune
	offset    int
	doneCount int
	lastShown time.Time
	rng       *rand.Rand
}

type TickMsg struct{}

func Tick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

type motdMessages struct {
	Tips []string `json:"tips"`
}

// loadTips reads the embedded tips, falling back to a single line.
func loadTips() []string {
	data, err := embeddata.ReadMOTD()
	if err != nil {
		return []string{fallbackTip}
	}
	var motd motdMessages
	if json.Unmarshal(data, &motd) != nil || len(motd.Tips) == 0 {
		return []string{fallbackTip}
	}
	return motd.Tips
}

// New scrolls each tip repeats times through a frame of frameWidth
// columns and waits interval before picking the next one.
func New(frameWidth, repeats int, interval time.Duration) Model {
	return newWithRand(frameWidth, repeats, interval, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newWithRand(frameWidth, repeats int, interval time.Duration, rng *rand.Rand) Model {
	tips := loadTips()
	return Model{
		tips:       tips,
		style:      lipgloss.NewStyle().Foreground(lipgloss.Color("106")).Bold(true),
		frameWidth: frameWidth,
		repeats:    repeats,
		interval:   interval,
		current:    []rune(tips[rng.Intn(len(tips))]),
		lastShown:  time.Now(),
		rng:        rng,
	}
}

func (m Model) Init() tea.Cmd {
	return Tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case TickMsg:
		if m.doneCount >= m.repeats {
			if time.Since(m.lastShown) >= m.interval {
				m.current = []rune(m.tips[m.rng.Intn(len(m.tips))])
				m.lastShown = time.Now()
				m.doneCount = 0
				m.offset = 0
			}
		} else {
			m.offset++
			if m.offset >= len(m.current)+m.frameWidth {
				m.offset = 0
				m.doneCount++
			}
		}
		return m, Tick()
	}
	return m, nil
}

// Current returns the tip being shown.
func (m Model) Current() string {
	return string(m.current)
}

func (m Model) View() string {
	if m.frameWidth <= 0 {
		return ""
	}
	pad := []rune(strings.Repeat(" ", m.frameWidth))
	text := make([]rune, 0, 2*len(pad)+len(m.current))
	text = append(append(append(text, pad...), m.current...), pad...)

	start := min(m.offset, len(text))
	end := min(start+m.frameWidth, len(text))
	return m.style.Render(string(text[start:end]))
}

func (m *Model) SetWidth(width int) {
	m.frameWidth = width
}
