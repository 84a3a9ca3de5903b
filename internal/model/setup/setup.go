package setup

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/zombicity/internal/city"
	"github.com/vinser/zombicity/internal/state"
	"github.com/vinser/zombicity/internal/style"
)

const (
	width  = 80

	sizeStep = 1
)

const (
	selectedGlyphSize = iota
	selectedWidth
	selectedHeight
	selectedMute
	selectedReset
	numSettings
)

type Model struct {
	glyphSize string // small, medium or large
	cityW     int
	cityH     int
	mute      bool
	reset     bool

	selectedSetting int
	termWidth       int
	termHeight      int
}

type SaveSettingsMsg struct {
	GlyphSize string
	Width     int
	Height    int
	Mute      bool
	Reset     bool
}

func saveSettingsCmd(m Model) tea.Cmd {
	return func() tea.Msg {
		return SaveSettingsMsg{
			GlyphSize: m.glyphSize,
			Width:     m.cityW,
			Height:    m.cityH,
			Mute:      m.mute,
			Reset:     m.reset,
		}
	}
}

type DiscardSettingsMsg struct{}

func discardSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return DiscardSettingsMsg{}
	}
}

func New(glyphSize string, cityW, cityH int, mute bool) Model {
	return Model{
		glyphSize: glyphSize,
		cityW:     cityW,
		cityH:     cityH,
		mute:      mute,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, saveSettingsCmd(m)
		case "esc":
			return m, discardSettingsCmd()
		case "up":
			if m.selectedSetting > 0 {
				m.selectedSetting--
			}
		case "down":
			if m.selectedSetting < numSettings-1 {
				m.selectedSetting++
			}
		case "left", "-":
			m = m.adjust(-sizeStep)
		case "right", "+":
			m = m.adjust(sizeStep)
		case "enter", " ":
			switch m.selectedSetting {
			case selectedGlyphSize:
				m.glyphSize = nextGlyphSize(m.glyphSize)
			case selectedWidth, selectedHeight:
				m = m.adjust(sizeStep)
			case selectedMute:
				m.mute = !m.mute
			case selectedReset:
				m.reset = !m.reset
			}
		}
		return m, nil

	}
	return m, nil
}

// adjust changes the selected city dimension by delta, wrapping inside the allowed range.
func (m Model) adjust(delta int) Model {
	switch m.selectedSetting {
	case selectedWidth:
		m.cityW = wrap(m.cityW+delta, city.MinSize, state.MaxWidth)
	case selectedHeight:
		m.cityH = wrap(m.cityH+delta, city.MinSize, state.MaxHeight)
	}
	return m
}

func wrap(v, lo, hi int) int {
	switch {
	case v < lo:
		return hi
	case v > hi:
		return lo
	}
	return v
}

func nextGlyphSize(current string) string {
	switch current {
	case state.GlyphSmall:
		return state.GlyphMedium
	case state.GlyphMedium:
		return state.GlyphLarge
	case state.GlyphLarge:
		return state.GlyphSmall
	default:
		return state.GlyphDefault
	}
}

func (m Model) View() string {
	type option struct {
		label string
		value string
	}

	options := []option{
		{"Glyph size", m.glyphSize},
		{"City width", fmt.Sprintf("%d", m.cityW)},
		{"City height", fmt.Sprintf("%d", m.cityH)},
		{"Mute all sounds", fmt.Sprintf("%v", m.mute)},
		{"Forget seed history", fmt.Sprintf("%v", m.reset)},
	}

	var b strings.Builder
	title := style.SetupTitle.Render("Settings")
	b.WriteString("\n" + centerText(title) + "\n\n")

	for i, opt := range options {
		prefix := "  "
		if i == m.selectedSetting {
			prefix = "➤ "
		}
		line := fmt.Sprintf("%s%s: %s", prefix, opt.label, opt.value)
		if i == m.selectedSetting {
			b.WriteString(centerText(style.SetupItemSelected.Render(line)))
		} else {
			b.WriteString(centerText(style.SetupItem.Render(line)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n\n\n\n\n" + centerText("↑ ↓ — select, ← → — resize, space — change, s — save, esc — cancel") + "\n")
	if m.termWidth > 0 && m.termHeight > 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

func centerText(text string) string {
	padding := (width - lipgloss.Width(text)) / 2
	if padding < 0 {
		padding = 0
	}
	return spaces(padding) + text
}

func spaces(n int) string {
	return fmt.Sprintf("%*s", n, "")
}
