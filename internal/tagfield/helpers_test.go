package tagfield

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// messages runs cmd and any batched commands, keeping the messages that
// arrive promptly. Timers such as cursor blink and animation frames are
// left behind.
func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, messages(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(10 * time.Millisecond):
		return nil
	}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newFocusedField(t *testing.T, tags []string, opts ...Option) *Field {
	t.Helper()
	f := New(tags, opts...)
	f.Focus()
	return f
}

// assertSingleSelection checks the field's index against every chip's state.
func assertSingleSelection(t *testing.T, f *Field) {
	t.Helper()
	count := 0
	for i, c := range f.Chips() {
		if c.Selected() {
			count++
			if i != f.SelectedIndex() {
				t.Fatalf("chip %d selected but field index is %d", i, f.SelectedIndex())
			}
		}
		if c.Selected() != c.IsActive() {
			t.Fatalf("chip %d selected=%t active=%t", i, c.Selected(), c.IsActive())
		}
	}
	if count > 1 {
		t.Fatalf("expected at most one selected chip, got %d", count)
	}
	if count == 0 && f.SelectedIndex() != -1 {
		t.Fatalf("no chip selected but field index is %d", f.SelectedIndex())
	}
}
