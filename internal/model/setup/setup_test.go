package setup

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/zombicity/internal/city"
	"github.com/vinser/zombicity/internal/state"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(key(k))
	}
	return m, cmd
}

func TestSave(t *testing.T) {
	m := New(state.GlyphSmall, 10, 8, false)
	m, cmd := press(m, " ", "down", "right", "right", "down", "left", "down", " ", "down", " ", "s")
	if cmd == nil {
		t.Fatal("s did not produce a command")
	}
	msg, ok := cmd().(SaveSettingsMsg)
	if !ok {
		t.Fatalf("got %T, want SaveSettingsMsg", cmd())
	}
	want := SaveSettingsMsg{GlyphSize: state.GlyphMedium, Width: 12, Height: 7, Mute: true, Reset: true}
	if msg != want {
		t.Errorf("saved %+v, want %+v", msg, want)
	}
}

func TestDiscard(t *testing.T) {
	_, cmd := press(New(state.GlyphDefault, 10, 10, false), "esc")
	if _, ok := cmd().(DiscardSettingsMsg); !ok {
		t.Error("esc did not discard")
	}
}

func TestSizeWraps(t *testing.T) {
	m := New(state.GlyphDefault, city.MinSize, state.MaxHeight, false)
	m, _ = press(m, "down", "left", "down", "right")
	if m.cityW != state.MaxWidth {
		t.Errorf("width = %d, want %d", m.cityW, state.MaxWidth)
	}
	if m.cityH != city.MinSize {
		t.Errorf("height = %d, want %d", m.cityH, city.MinSize)
	}
}

func TestSelectionStaysInRange(t *testing.T) {
	m, _ := press(New(state.GlyphDefault, 10, 10, false), "up", "up")
	if m.selectedSetting != 0 {
		t.Errorf("selected %d after moving up from the top", m.selectedSetting)
	}
	for i := 0; i < numSettings+2; i++ {
		m, _ = press(m, "down")
	}
	if m.selectedSetting != numSettings-1 {
		t.Errorf("selected %d after moving past the bottom", m.selectedSetting)
	}
}

func TestNextGlyphSize(t *testing.T) {
	tests := map[string]string{
		state.GlyphSmall:  state.GlyphMedium,
		state.GlyphMedium: state.GlyphLarge,
		state.GlyphLarge:  state.GlyphSmall,
		"bogus":           state.GlyphDefault,
	}
	for in, want := range tests {
		if got := nextGlyphSize(in); got != want {
			t.Errorf("nextGlyphSize(%q) = %q, want %q", in, got, want)
		}
	}
}
