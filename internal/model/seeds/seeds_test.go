package seeds

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestJump(t *testing.T) {
	m := typeText(New(nil, 0, 40, 10), "-42")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	msg, ok := cmd().(JumpMsg)
	if !ok || msg.Seed != -42 {
		t.Errorf("got %#v, want JumpMsg{-42}", cmd())
	}
}

func TestJumpRejectsEmptyInput(t *testing.T) {
	m, cmd := New(nil, 0, 40, 10).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty input should not jump")
	}
	if !errors.Is(m.err, ErrNotSeed) {
		t.Errorf("err = %v, want %v", m.err, ErrNotSeed)
	}
	if !strings.Contains(m.renderContent(), "not a number") {
		t.Error("error is not shown")
	}
}

func TestHistoryStep(t *testing.T) {
	m := New([]int64{10, 20, 30}, 30, 40, 10)
	tests := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyUp, "30"},
		{tea.KeyUp, "20"},
		{tea.KeyUp, "10"},
		{tea.KeyUp, "10"},
		{tea.KeyDown, "20"},
	}
	for i, tt := range tests {
		m, _ = m.Update(tea.KeyMsg{Type: tt.key})
		if got := m.textInput.Value(); got != tt.want {
			t.Fatalf("step %d: value = %q, want %q", i, got, tt.want)
		}
	}
}

func TestClose(t *testing.T) {
	_, cmd := New(nil, 0, 40, 10).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(CloseSeedsMsg); !ok {
		t.Error("esc did not close the screen")
	}
}

func TestValidate(t *testing.T) {
	for _, s := range []string{"", "-", "12", "-9"} {
		if err := validate(s); err != nil {
			t.Errorf("validate(%q) = %v", s, err)
		}
	}
	if err := validate("1x"); !errors.Is(err, ErrNotSeed) {
		t.Errorf("validate(1x) = %v, want %v", err, ErrNotSeed)
	}
}
