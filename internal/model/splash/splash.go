package splash

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/zombicity/internal/city"
	"github.com/vinser/zombicity/internal/state"
	"github.com/vinser/zombicity/internal/style"
)

const (
	title = `
▀▀█ █▀█ █▀▄▀█ █▄▄ █ █▀▀ █ ▀█▀ █▄█
▄▀  █ █ █ ▀ █ █ █ █ █   █  █   █
█▄▄ █▄█ █   █ █▄█ █ █▄▄ █  █   █
`
	zombieUp = `
 ▄▄▄
▐x x▌
 ▀█▀▀▀
  █
 █ █
`
	zombieDown = `
 ▄▄▄
▐x x▌
 ▀█▀
  █▀▀▀
  █ █
`
)

const (
	titleWidth   = 33
	titleHeight  = 4
	zombieWidth  = 6
	zombieHeight = 6
	zombieCount  = 4
	skylineRows  = city.MinSize

	middlePause         = 2 * time.Second
	moveTickDuration    = 80 * time.Millisecond
	shambleTickDuration = 400 * time.Millisecond
)

type zombie struct {
	pos   int
	delay int // ticks to wait before entering
}

type Model struct {
	state *state.State

	width  int
	height int

	pos        int
	pauseUntil time.Time
	titleDone  bool
	lurch      bool

	skyline  []string
	revealed int
	zombies  []zombie

	grid      [][]rune
	colorGrid [][]int // -1 no color, 0..n zombie color, skylineColor for the city
	sb        *strings.Builder
}

const skylineColor = 100

type MoveMsg struct{}

func moveCmd() tea.Cmd {
	return tea.Tick(moveTickDuration, func(t time.Time) tea.Msg {
		return MoveMsg{}
	})
}

type ShambleMsg struct{}

func shambleCmd() tea.Cmd {
	return tea.Tick(shambleTickDuration, func(t time.Time) tea.Msg {
		return ShambleMsg{}
	})
}

type MakeSettingsMsg struct{}

func makeSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return MakeSettingsMsg{}
	}
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New(state *state.State, width, height int) Model {
	grid, colorGrid := newGrids(width, height)

	zombies := make([]zombie, zombieCount)
	for i := range zombies {
		zombies[i] = zombie{pos: -zombieWidth, delay: i * (zombieWidth + 4)}
	}

	return Model{
		state:     state,
		width:     width,
		height:    height,
		pos:       -titleWidth,
		skyline:   skyline(width, state.LastSeed),
		zombies:   zombies,
		grid:      grid,
		colorGrid: colorGrid,
		sb:        &strings.Builder{},
	}
}

func newGrids(width, height int) ([][]rune, [][]int) {
	grid := make([][]rune, height)
	colorGrid := make([][]int, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		colorGrid[i] = make([]int, width)
	}
	return grid, colorGrid
}

// SetSize stretches the animation over the terminal, leaving a line for the footer.
func (m *Model) SetSize(width, height int) {
	height--
	if width < 1 || height < 1 {
		return
	}
	m.width = width
	m.height = height
	m.grid, m.colorGrid = newGrids(width, height)
	m.skyline = skyline(width, m.state.LastSeed)
}

// skyline draws a strip of a real city, the same one the seed will give.
func skyline(width int, seed int64) []string {
	if width < city.MinSize {
		return nil
	}
	g, err := city.NewFromSeed(width, skylineRows, seed)
	if err != nil {
		return nil
	}
	rows := make([]string, skylineRows)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < width; x++ {
			b.WriteRune(g.CellAt(city.Position{X: x, Y: y}).Glyph())
		}
		rows[y] = b.String()
	}
	return rows
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(moveCmd(), shambleCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MoveMsg:
		if m.titleDone {
			return m.updateZombies()
		}
		return m.updateTitle()
	case ShambleMsg:
		m.lurch = !m.lurch
		return m, shambleCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, makeSettingsCmd()
		case "enter", "esc", " ":
			return m, timedoutCmd()
		}
	}
	return m, nil
}

// --- Sub-functions for Update ---

func (m Model) updateTitle() (Model, tea.Cmd) {
	now := time.Now()
	if m.revealed < m.width {
		m.revealed += 2
	}
	if !m.pauseUntil.IsZero() {
		if now.Before(m.pauseUntil) {
			return m, moveCmd()
		}
		m.titleDone = true
		return m, moveCmd()
	}
	if m.pos >= m.width/2-titleWidth/2 {
		m.pauseUntil = now.Add(middlePause)
		return m, moveCmd()
	}
	m.pos++
	return m, moveCmd()
}

func (m Model) updateZombies() (Model, tea.Cmd) {
	walking := false
	for i := range m.zombies {
		z := &m.zombies[i]
		if z.delay > 0 {
			z.delay--
			walking = true
			continue
		}
		if z.pos < m.width {
			if m.lurch {
				z.pos++
			}
			walking = true
		}
	}
	if !walking {
		return m, timedoutCmd()
	}
	return m, moveCmd()
}

// --- View ---

func (m Model) View() string {
	m.clearGrid()
	m.drawSkyline()
	if m.titleDone {
		for i, z := range m.zombies {
			m.drawZombie(i, z.pos)
		}
	} else {
		m.drawTitle()
	}
	return m.renderGrid()
}

func (m *Model) clearGrid() {
	for i := range m.grid {
		for j := range m.grid[i] {
			m.grid[i][j] = ' '
			m.colorGrid[i][j] = -1
		}
	}
}

func (m *Model) skylineY() int {
	return m.height - skylineRows - 1
}

func (m *Model) drawSkyline() {
	top := m.skylineY()
	for i, row := range m.skyline {
		y := top + i
		if y < 0 || y >= m.height {
			continue
		}
		for x, r := range []rune(row) {
			if x >= m.revealed || x >= m.width {
				break
			}
			m.grid[y][x] = r
			m.colorGrid[y][x] = skylineColor
		}
	}
}

func (m *Model) drawSprite(sprite string, left, top, color int) {
	for i, line := range strings.Split(sprite, "\n") {
		y := top + i
		if y < 0 || y >= m.height {
			continue
		}
		for x, r := range []rune(line) {
			sx := left + x
			if sx >= 0 && sx < m.width && r != ' ' {
				m.grid[y][sx] = r
				m.colorGrid[y][sx] = color
			}
		}
	}
}

func (m *Model) drawZombie(idx, pos int) {
	sprite := zombieUp
	if m.lurch != (idx%2 == 0) {
		sprite = zombieDown
	}
	top := m.skylineY() - zombieHeight + 2
	m.drawSprite(sprite, pos, top, idx)
}

func (m *Model) drawTitle() {
	top := (m.skylineY() - titleHeight) / 2
	m.drawSprite(title, m.pos, top, -1)
}

func (m *Model) renderGrid() string {
	m.sb.Reset()
	for y, row := range m.grid {
		for x, r := range row {
			c := m.colorGrid[y][x]
			switch {
			case r == ' ' || r == 0:
				m.sb.WriteRune(' ')
			case c == skylineColor:
				m.sb.WriteString(style.SplashStreet.Render(string(r)))
			case c >= 0 && c < len(style.SplashZombies):
				m.sb.WriteString(style.SplashZombies[c].Render(string(r)))
			default:
				m.sb.WriteString(style.SplashTitle.Render(string(r)))
			}
		}
		m.sb.WriteRune('\n')
	}
	m.sb.WriteString("s — settings, space — skip, q — quit\n")
	return m.sb.String()
}
