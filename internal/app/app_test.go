package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/zombicity/internal/model/inspect"
	"github.com/vinser/zombicity/internal/model/next"
	"github.com/vinser/zombicity/internal/model/seeds"
	"github.com/vinser/zombicity/internal/model/setup"
	"github.com/vinser/zombicity/internal/model/splash"
	"github.com/vinser/zombicity/internal/state"
)

// newApp returns an app that records seeds in memory instead of saving them.
func newApp(seed int64) (Model, *[]int64) {
	st := &state.State{Width: 8, Height: 6, GlyphSize: state.GlyphSmall}
	m := New(st, seed)
	var recorded []int64
	m.record = func(seed int64) error {
		st.RecordSeed(seed)
		recorded = append(recorded, seed)
		return nil
	}
	return m, &recorded
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestSplashLeadsToCity(t *testing.T) {
	m, recorded := newApp(42)
	m = update(t, m, splash.TimedoutMsg{})
	if m.status != statusInspecting || !m.built {
		t.Fatalf("status = %d, built = %v", m.status, m.built)
	}
	if m.inspect.Seed() != 42 || len(*recorded) != 1 || (*recorded)[0] != 42 {
		t.Errorf("inspector seed %d, recorded %v", m.inspect.Seed(), *recorded)
	}
}

func TestRegenerate(t *testing.T) {
	m, recorded := newApp(1)
	m = update(t, m, splash.TimedoutMsg{})
	m = update(t, m, inspect.RegenerateMsg{Seed: 7})
	if m.status != statusRegenerating || m.next.Seed() != 7 {
		t.Fatalf("status = %d, card seed = %d", m.status, m.next.Seed())
	}
	m = update(t, m, next.TimedoutMsg{})
	if m.status != statusInspecting || m.inspect.Seed() != 7 {
		t.Errorf("status = %d, seed = %d", m.status, m.inspect.Seed())
	}
	if len(*recorded) != 2 {
		t.Errorf("recorded %v", *recorded)
	}
}

func TestSettingsResizeRegenerates(t *testing.T) {
	m, _ := newApp(3)
	m = update(t, m, splash.TimedoutMsg{})
	m = update(t, m, inspect.OpenSettingsMsg{})
	if m.status != statusDoSettings {
		t.Fatalf("status = %d, want settings", m.status)
	}
	m = update(t, m, setup.SaveSettingsMsg{GlyphSize: state.GlyphLarge, Width: 10, Height: 6})
	if m.status != statusRegenerating {
		t.Fatalf("status = %d, a resized city should be regenerated", m.status)
	}
	m = update(t, m, next.TimedoutMsg{})
	if m.state.Width != 10 || m.state.GlyphSize != state.GlyphLarge || m.inspect.Seed() != 3 {
		t.Errorf("settings not applied: %+v", m.state)
	}

	m = update(t, m, inspect.OpenSettingsMsg{})
	m = update(t, m, setup.SaveSettingsMsg{GlyphSize: state.GlyphSmall, Width: 10, Height: 6, Reset: true})
	if m.status != statusInspecting || m.state.Seeds != nil {
		t.Errorf("status = %d, seeds = %v", m.status, m.state.Seeds)
	}
}

func TestSeedsJump(t *testing.T) {
	m, _ := newApp(5)
	m = update(t, m, splash.TimedoutMsg{})
	m = update(t, m, inspect.OpenSeedsMsg{})
	if m.status != statusSeeds {
		t.Fatalf("status = %d, want seeds", m.status)
	}
	m = update(t, m, seeds.CloseSeedsMsg{})
	if m.status != statusInspecting {
		t.Fatalf("status = %d after closing seeds", m.status)
	}
	m = update(t, m, inspect.OpenSeedsMsg{})
	m = update(t, m, seeds.JumpMsg{Seed: 99})
	m = update(t, m, next.TimedoutMsg{})
	if m.inspect.Seed() != 99 {
		t.Errorf("seed = %d, want 99", m.inspect.Seed())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newApp(6)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if m.status != statusQuitting {
		t.Errorf("status = %d, want quitting", m.status)
	}
}

func TestGenerate(t *testing.T) {
	st := &state.State{Width: 12, Height: 9}
	g, l, err := Generate(st, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Audit(); err != nil {
		t.Error(err)
	}
	if l.Hatches() != len(g.Manholes()) {
		t.Errorf("%d hatches for %d manholes", l.Hatches(), len(g.Manholes()))
	}
}
