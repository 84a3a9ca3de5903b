// Package inspect is the main screen: a map of the city (or the sewer under
// it) with a scout cursor and a side panel describing the cell under it.
package inspect

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/zombicity/internal/city"
	"github.com/vinser/zombicity/internal/daylight"
	"github.com/vinser/zombicity/internal/model/motd"
	"github.com/vinser/zombicity/internal/render"
	"github.com/vinser/zombicity/internal/scout"
	"github.com/vinser/zombicity/internal/sewer"
	"github.com/vinser/zombicity/internal/sound"
	"github.com/vinser/zombicity/internal/state"
	"github.com/vinser/zombicity/internal/style"
)

const (
	blinkInterval = 250 * time.Millisecond
	shadeInterval = time.Minute

	headerRows = 2
	footerRows = 2
	panelWidth = 34
)

// TerminalDimensions holds the terminal size information
type TerminalDimensions struct {
	Width  int
	Height int
}

type Model struct {
	state *state.State
	sound *sound.Manager

	seed  int64
	grid  *city.Grid
	level *sewer.Level
	scout *scout.Scout

	sky       *daylight.Sky
	shade     float64
	phase     daylight.Phase
	lastShade time.Time
	now       func() time.Time

	underground bool
	status      string

	terminal TerminalDimensions
	window   city.Rect // visible cells, in map coordinates
	frame    viewport.Model
	motd     motd.Model
	sb       *strings.Builder
}

// BlinkMsg drives the cursor blink and the daylight refresh.
type BlinkMsg time.Time

func tickBlink() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}

// RegenerateMsg asks for the city grown from Seed.
type RegenerateMsg struct {
	Seed int64
}

func regenerateCmd(seed int64) tea.Cmd {
	return func() tea.Msg {
		return RegenerateMsg{Seed: seed}
	}
}

// OpenSettingsMsg, OpenAboutMsg and OpenSeedsMsg switch to other screens.
type (
	OpenSettingsMsg struct{}
	OpenAboutMsg    struct{}
	OpenSeedsMsg    struct{}
)

func openCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// WindowSizeMsg is a message sent when the terminal is resized.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// New returns the inspector for g and its sewer l, generated from seed.
// sky may be nil, the palette is then never dimmed.
func New(s *state.State, g *city.Grid, l *sewer.Level, seed int64, sky *daylight.Sky) Model {
	m := Model{
		state:    s,
		sound:    s.SoundManager,
		seed:     seed,
		grid:     g,
		level:    l,
		scout:    scout.Place(g),
		sky:      sky,
		shade:    1,
		phase:    daylight.Day,
		now:      time.Now,
		terminal: TerminalDimensions{Width: 80, Height: 24},
		frame:    viewport.New(80, 20),
		motd:     motd.New(80, 1, time.Minute),
		sb:       &strings.Builder{},
	}
	m.updateShade()
	m.updateWindow()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickBlink(), m.motd.Init())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WindowSizeMsg:
		m.terminal = TerminalDimensions(msg)
		m.updateWindow()
		return m, nil
	case BlinkMsg:
		if time.Time(msg).Sub(m.lastShade) >= shadeInterval {
			m.updateShade()
		}
		return m, tickBlink()
	case motd.TickMsg:
		var cmd tea.Cmd
		m.motd, cmd = m.motd.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(key string) (Model, tea.Cmd) {
	if m.scout.HandleInput(key) {
		m.move()
		return m, nil
	}
	switch key {
	case "o":
		m.toggleDoor()
	case "n":
		level := m.scout.Shout(m.grid)
		m.play(sound.NOISE)
		m.status = fmt.Sprintf("noise here is now %d", level)
	case "p":
		it, err := m.scout.PickUp(m.grid)
		m.report(err, "picked up "+it.String())
	case "l":
		it, err := m.scout.Drop(m.grid)
		m.report(err, "dropped "+it.String())
	case "tab":
		m.underground = !m.underground
		m.play(sound.SEWER)
		m.updateWindow()
	case "home":
		m.scout.ReturnHome()
		m.updateWindow()
	case "r":
		m.play(sound.REGENERATE)
		return m, regenerateCmd(rand.Int63())
	case "b":
		seed, ok := m.state.PreviousSeed()
		if !ok {
			m.status = "no earlier city"
			return m, nil
		}
		m.play(sound.REGENERATE)
		return m, regenerateCmd(seed)
	case "g":
		return m, openCmd(OpenSeedsMsg{})
	case "s":
		return m, openCmd(OpenSettingsMsg{})
	case "?":
		return m, openCmd(OpenAboutMsg{})
	}
	return m, nil
}

// move steps the scout unless it stands at the border or a closed door
// leads into or out of a room. Doors between streets never block.
func (m *Model) move() {
	from := m.grid.CellAt(m.scout.Pos())
	to := m.grid.Neighbor(from.Pos(), m.scout.Facing())
	door, hasDoor := m.grid.Door(from, m.scout.Facing())
	blocked := hasDoor && !door.IsOpen() && (from.IsRoom() || to.IsRoom())
	if blocked && !m.underground {
		m.play(sound.BUMP)
		m.status = "the door is closed, press o"
		return
	}
	if !m.scout.Step(m.grid) {
		m.play(sound.BUMP)
		m.status = "city limits"
		return
	}
	m.status = ""
	m.updateWindow()
}

func (m *Model) toggleDoor() {
	open, err := m.scout.ToggleDoor(m.grid)
	switch {
	case errors.Is(err, scout.ErrNoDoor):
		m.status = "no door " + m.scout.Facing().String()
	case open:
		m.play(sound.DOOR_OPEN)
		m.status = "door " + m.scout.Facing().String() + " opened"
	default:
		m.play(sound.DOOR_CLOSE)
		m.status = "door " + m.scout.Facing().String() + " closed"
	}
}

func (m *Model) report(err error, done string) {
	if err != nil {
		m.play(sound.BUMP)
		m.status = err.Error()
		return
	}
	m.status = done
}

// play ignores missing audio, the inspector works silently.
func (m *Model) play(cue string) {
	if m.sound != nil {
		m.sound.Play(cue)
	}
}

func (m *Model) updateShade() {
	now := m.now()
	m.lastShade = now
	if m.sky == nil {
		return
	}
	m.shade = daylight.Shade(m.sky.Intensity(now))
	m.phase = m.sky.Phase(now)
}

// Seed returns the seed of the shown city.
func (m Model) Seed() int64 {
	return m.seed
}

// Scout returns the cursor.
func (m Model) Scout() *scout.Scout {
	return m.scout
}

// Status returns the result of the last action.
func (m Model) Status() string {
	return m.status
}

// getGlyphCharDims returns (cellWidthChars, cellHeightRows) for the current glyph size
func (m *Model) getGlyphCharDims() (int, int) {
	switch m.state.GlyphSize {
	case state.GlyphSmall:
		return 1, 1
	case state.GlyphLarge:
		return 4, 2
	default:
		return 2, 1
	}
}

// mapSize returns the map dimensions in cells and the cursor in map coordinates.
func (m *Model) mapSize() (w, h int, cursor city.Position) {
	if m.underground {
		under := sewer.Under(m.scout.Pos())
		return m.level.Width(), m.level.Height(), city.Position{X: under.X, Y: under.Y}
	}
	return m.grid.Width(), m.grid.Height(), m.scout.Pos()
}

// updateWindow fits the visible cells into the terminal and centers them on the cursor.
func (m *Model) updateWindow() {
	mapW, mapH, cursor := m.mapSize()
	wChar, hRows := m.getGlyphCharDims()

	availW := m.terminal.Width - panelWidth - 1
	availH := m.terminal.Height - headerRows - footerRows
	// medium and large glyphs add a closing border column and row
	cellsW := max(1, min(mapW, (availW-1)/wChar))
	cellsH := max(1, min(mapH, (availH-1)/hRows))

	startX := max(0, min(mapW-cellsW, cursor.X-cellsW/2))
	startY := max(0, min(mapH-cellsH, cursor.Y-cellsH/2))
	m.window = city.Rect{
		Min: city.Position{X: startX, Y: startY},
		Max: city.Position{X: startX + cellsW - 1, Y: startY + cellsH - 1},
	}

	m.frame.Width = max(1, availW)
	m.frame.Height = max(1, availH)
	m.motd.SetWidth(max(1, m.terminal.Width))
}

func (m *Model) renderMap() string {
	_, _, cursor := m.mapSize()
	opt := render.Options{
		Size:   m.state.GlyphSize,
		Styled: true,
		Shade:  m.shade,
		Window: &m.window,
	}
	if m.underground {
		return render.Sewer(m.level, opt)
	}
	opt.Cursor = &cursor
	opt.Mark = m.scout.Render()
	return render.City(m.grid, opt)
}

func (m *Model) panelRows() [][2]string {
	c := m.grid.CellAt(m.scout.Pos())
	rows := [][2]string{
		{"cell", fmt.Sprintf("%s (%d,%d)", c.Name(), c.Pos().X, c.Pos().Y)},
		{"fight", yesNo(c.CanFight())},
		{"noise", fmt.Sprint(c.Noise())},
		{"facing", m.scout.Facing().String()},
	}
	for _, d := range city.Directions {
		door, ok := m.grid.Door(c, d)
		side := "wall"
		switch {
		case ok && door.IsOpen():
			side = "open"
		case ok:
			side = "closed"
		}
		rows = append(rows, [2]string{"door " + d.String(), side})
	}
	items := c.Items()
	if len(items) == 0 {
		rows = append(rows, [2]string{"items", "none"})
	}
	for _, it := range items {
		rows = append(rows, [2]string{"item", it.Kind.String()})
	}
	rows = append(rows, [2]string{"backpack", fmt.Sprint(len(m.scout.Backpack()))})
	if hatch, ok := m.level.HatchUnder(c.Pos()); ok {
		rows = append(rows, [2]string{"hatch", fmt.Sprintf("(%d,%d)", hatch.X, hatch.Y)})
	}
	return rows
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (m *Model) headerText() string {
	where := "streets"
	if m.underground {
		where = "sewer"
	}
	loc := m.state.LocationInfo
	return fmt.Sprintf("City %s  %d×%d  %s  ·  %s, %s: %s",
		style.Seed.Render(fmt.Sprint(m.seed)), m.grid.Width(), m.grid.Height(), where, loc.City, loc.Country, m.phase)
}

func (m *Model) footerText() string {
	return "←↑↓→ move, o door, n noise, p/l pick/drop, tab sewer, r new, b back, g seeds, s settings, ? help, q quit"
}

// View returns the complete screen: header, map with its panel, status, tips and footer.
func (m *Model) View() string {
	m.sb.Reset()

	m.sb.WriteString(style.TopPattern.Render(strings.Repeat("/", max(1, m.terminal.Width))))
	m.sb.WriteString("\n")
	m.sb.WriteString(style.Title.Render(m.headerText()))
	m.sb.WriteString("\n")

	m.frame.SetContent(m.renderMap())
	panel := render.Panel("Cell", m.panelRows())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.frame.View(), " ", panel)
	m.sb.WriteString(body)
	m.sb.WriteString("\n")

	if m.status != "" {
		m.sb.WriteString(style.PanelValue.Render(m.status))
	} else {
		m.sb.WriteString(m.motd.View())
	}
	m.sb.WriteString("\n")
	m.sb.WriteString(style.Footer.Render(m.footerText()))
	return m.sb.String()
}
