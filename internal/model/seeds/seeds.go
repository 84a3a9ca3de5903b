// Package seeds lists the seed history and takes a seed to jump to.
package seeds

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/zombicity/internal/render"
	"github.com/vinser/zombicity/internal/style"
)

var ErrNotSeed = errors.New("seeds: not a number")

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	history   []int64 // oldest first
	current   int64
	textInput textinput.Model
	err       error
}

// JumpMsg asks for the city grown from Seed.
type JumpMsg struct {
	Seed int64
}

func jumpCmd(seed int64) tea.Cmd {
	return func() tea.Msg {
		return JumpMsg{Seed: seed}
	}
}

// CloseSeedsMsg returns to the city without changing it.
type CloseSeedsMsg struct{}

func closeSeedsCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseSeedsMsg{}
	}
}

func New(history []int64, current int64, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}

	ti := textinput.New()
	ti.Prompt = "Seed: "
	ti.Placeholder = "any integer"
	ti.CharLimit = 20
	ti.Width = 24
	ti.Validate = validate

	leftAlign := lipgloss.NewStyle().Align(lipgloss.Left)
	ti.PromptStyle = leftAlign
	ti.TextStyle = leftAlign
	ti.PlaceholderStyle = leftAlign
	ti.Focus()

	return Model{
		width:     width,
		height:    height,
		history:   history,
		current:   current,
		textInput: ti,
	}
}

// validate accepts partial input that can still become an int64.
func validate(s string) error {
	if s == "" || s == "-" {
		return nil
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("%w: %q", ErrNotSeed, s)
	}
	return nil
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			seed, err := strconv.ParseInt(m.textInput.Value(), 10, 64)
			if err != nil {
				m.err = fmt.Errorf("%w: %q", ErrNotSeed, m.textInput.Value())
				return m, nil
			}
			return m, jumpCmd(seed)
		case tea.KeyEsc:
			return m, closeSeedsCmd()
		case tea.KeyUp:
			m.textInput.SetValue(m.step(-1))
			m.textInput.CursorEnd()
			return m, nil
		case tea.KeyDown:
			m.textInput.SetValue(m.step(1))
			m.textInput.CursorEnd()
			return m, nil
		}
	}
	m.err = nil
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// step walks the history relative to the seed in the input, newest last.
func (m Model) step(delta int) string {
	if len(m.history) == 0 {
		return m.textInput.Value()
	}
	i := len(m.history)
	if v, err := strconv.ParseInt(m.textInput.Value(), 10, 64); err == nil {
		for j := len(m.history) - 1; j >= 0; j-- {
			if m.history[j] == v {
				i = j
				break
			}
		}
	}
	i = max(0, min(len(m.history)-1, i+delta))
	return strconv.FormatInt(m.history[i], 10)
}

const footer = "enter — go, ↑ ↓ — history, esc — back"

func (m Model) View() string {
	return render.Page("Seeds", m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	var content []string
	content = append(content, "Recent cities:")
	if len(m.history) == 0 {
		content = append(content, "  none yet")
	}
	for i := len(m.history) - 1; i >= 0; i-- {
		s := m.history[i]
		line := fmt.Sprintf("%2d. %d", len(m.history)-i, s)
		if s == m.current {
			line = style.Seed.Render(line + "  ← here")
		}
		content = append(content, line)
	}
	content = append(content, "", m.textInput.View())
	if m.err != nil {
		content = append(content, style.Seed.Render(m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, content...)
}
