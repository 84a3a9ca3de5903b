package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/zombicity/internal/city"
	"github.com/vinser/zombicity/internal/daylight"
	"github.com/vinser/zombicity/internal/model/about"
	"github.com/vinser/zombicity/internal/model/inspect"
	"github.com/vinser/zombicity/internal/model/next"
	"github.com/vinser/zombicity/internal/model/quit"
	"github.com/vinser/zombicity/internal/model/seeds"
	"github.com/vinser/zombicity/internal/model/setup"
	"github.com/vinser/zombicity/internal/model/splash"
	"github.com/vinser/zombicity/internal/sewer"
	"github.com/vinser/zombicity/internal/sound"
	"github.com/vinser/zombicity/internal/state"
)

type status uint

const (
	statusStartSplash status = iota
	statusDoSettings
	statusInspecting
	statusRegenerating
	statusAbout
	statusSeeds
	statusQuitting
)

const (
	pageWidth  = 60
	pageHeight = 20
)

type Model struct {
	status status
	state  *state.State
	sky    *daylight.Sky
	seed   int64 // seed of the city on screen, or of the one being generated
	built  bool
	record func(seed int64) error
	// models
	splash  splash.Model
	setup   setup.Model
	inspect inspect.Model
	next    next.Model
	about   about.Model
	seeds   seeds.Model
	quit    quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New starts on the splash screen. The first city grows from seed.
func New(st *state.State, seed int64) Model {
	return Model{
		status: statusStartSplash,
		state:  st,
		sky:    newSky(st),
		seed:   seed,
		record: st.RecordAndSave,
		splash: splash.New(st, pageWidth, pageHeight),
	}
}

// newSky returns the sky over the saved location, nil when its timezone is unknown.
func newSky(st *state.State) *daylight.Sky {
	loc := st.LocationInfo
	sky, err := daylight.NewSky(loc.Lat, loc.Lon, loc.Timezone)
	if err != nil {
		return nil
	}
	return sky
}

// Generate builds the city and its sewer for seed at the saved size.
func Generate(st *state.State, seed int64) (*city.Grid, *sewer.Level, error) {
	g, err := city.NewFromSeed(st.Width, st.Height, seed)
	if err != nil {
		return nil, nil, err
	}
	l, err := sewer.New(g, seed)
	if err != nil {
		return nil, nil, err
	}
	return g, l, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.splash.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q": // quit all app models
			m.status = statusQuitting
			m.setQuit()
			return m, m.quit.Init()
		case "m": // mute/unmute
			m.state.SetMute(!m.state.Mute)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		switch m.status {
		case statusStartSplash:
			m.splash.SetSize(msg.Width, msg.Height)
		case statusDoSettings:
			m.setup.SetSize(msg.Width, msg.Height)
		case statusInspecting:
			m.inspect, cmd = m.inspect.Update(inspect.WindowSizeMsg{Width: msg.Width, Height: msg.Height})
			cmds = append(cmds, cmd)
		case statusRegenerating:
			m.next.SetSize(msg.Width, msg.Height)
		case statusAbout:
			m.about.SetSize(msg.Width, msg.Height)
		case statusSeeds:
			m.seeds.SetSize(msg.Width, msg.Height)
		}
		// Force a full repaint
		cmds = append(cmds, tea.ClearScreen)
		return m, tea.Batch(cmds...)
	}

	switch m.status {
	case statusStartSplash:
		switch msg := msg.(type) {
		case splash.MakeSettingsMsg:
			m.status = statusDoSettings
			m.setSetup()
		case splash.TimedoutMsg:
			cmd = m.showCity()
		default:
			m.splash, cmd = m.splash.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusDoSettings:
		switch msg := msg.(type) {
		case setup.SaveSettingsMsg:
			m.state.GlyphSize = msg.GlyphSize
			m.state.SetMute(msg.Mute)
			if msg.Reset {
				m.state.Seeds = nil
			}
			resized := msg.Width != m.state.Width || msg.Height != m.state.Height
			m.state.SetSize(msg.Width, msg.Height)
			if resized || !m.built {
				cmd = m.regenerate(m.seed)
			} else {
				cmd = m.showCity()
			}
		case setup.DiscardSettingsMsg:
			cmd = m.showCity()
		default:
			m.setup, cmd = m.setup.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusInspecting:
		switch msg := msg.(type) {
		case inspect.RegenerateMsg:
			cmd = m.regenerate(msg.Seed)
		case inspect.OpenSettingsMsg:
			m.status = statusDoSettings
			m.setSetup()
		case inspect.OpenAboutMsg:
			m.status = statusAbout
			m.about = about.New(pageWidth, pageHeight)
			m.about.SetSize(m.termWidth, m.termHeight)
			cmd = m.about.Init()
		case inspect.OpenSeedsMsg:
			m.status = statusSeeds
			m.seeds = seeds.New(m.state.Seeds, m.seed, pageWidth, pageHeight)
			m.seeds.SetSize(m.termWidth, m.termHeight)
			cmd = m.seeds.Init()
		default:
			m.inspect, cmd = m.inspect.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusRegenerating:
		switch msg := msg.(type) {
		case next.TimedoutMsg:
			m.built = false
			cmd = m.showCity()
		default:
			m.next, cmd = m.next.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusAbout:
		switch msg := msg.(type) {
		case about.CloseAboutMsg:
			m.status = statusInspecting
		default:
			m.about, cmd = m.about.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusSeeds:
		switch msg := msg.(type) {
		case seeds.JumpMsg:
			cmd = m.regenerate(msg.Seed)
		case seeds.CloseSeedsMsg:
			m.status = statusInspecting
		default:
			m.seeds, cmd = m.seeds.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusQuitting:
		switch msg := msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// regenerate shows the transition card, the city for seed is built when it times out.
func (m *Model) regenerate(seed int64) tea.Cmd {
	m.seed = seed
	m.status = statusRegenerating
	m.next = next.New(seed, m.state.Width, m.state.Height, pageWidth, pageHeight)
	m.next.SetSize(m.termWidth, m.termHeight)
	return m.next.Init()
}

// showCity switches to the inspector, building the city for m.seed unless it is on screen already.
func (m *Model) showCity() tea.Cmd {
	m.status = statusInspecting
	if m.built {
		m.resizeInspect()
		return nil
	}
	g, l, err := Generate(m.state, m.seed)
	if err != nil {
		log.Fatal(err)
	}
	if err := m.record(m.seed); err != nil {
		log.Fatal(err)
	}
	m.built = true
	m.inspect = inspect.New(m.state, g, l, m.seed, m.sky)
	m.resizeInspect()
	return m.inspect.Init()
}

// resizeInspect seeds the inspector with the latest terminal size so it renders
// correctly before any manual resize and picks up a changed glyph size.
func (m *Model) resizeInspect() {
	if m.termWidth > 0 && m.termHeight > 0 {
		m.inspect, _ = m.inspect.Update(inspect.WindowSizeMsg{Width: m.termWidth, Height: m.termHeight})
	}
}

func (m *Model) setSetup() {
	st := m.state
	m.setup = setup.New(st.GlyphSize, st.Width, st.Height, st.Mute)
	m.setup.SetSize(m.termWidth, m.termHeight)
}

func (m *Model) setQuit() {
	if sm := m.state.SoundManager; sm != nil {
		sm.StopAll()
		sm.Play(sound.DOOR_CLOSE)
	}
	m.quit = quit.New(m.seed)
}

func (m Model) View() string {
	switch m.status {
	case statusStartSplash:
		return m.splash.View()
	case statusDoSettings:
		return m.setup.View()
	case statusInspecting:
		return m.inspect.View()
	case statusRegenerating:
		return m.next.View()
	case statusAbout:
		return m.about.View()
	case statusSeeds:
		return m.seeds.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
