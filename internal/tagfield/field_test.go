package tagfield

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tagfield/internal/chip"
	"tagfield/internal/theme"
)

func TestNewField(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		f := New(nil)
		if f.Width() != DefaultWidth {
			t.Errorf("expected default width %d, got %d", DefaultWidth, f.Width())
		}
		if f.Delimiter() != DefaultDelimiter {
			t.Errorf("expected delimiter %q, got %q", DefaultDelimiter, f.Delimiter())
		}
		if f.Len() != 0 {
			t.Errorf("expected no tags, got %d", f.Len())
		}
		if f.SelectedIndex() != -1 {
			t.Errorf("expected no selection, got %d", f.SelectedIndex())
		}
		if f.Focused() {
			t.Error("expected field to start blurred")
		}
	})

	t.Run("SkipsBlankAndDuplicateTags", func(t *testing.T) {
		f := New([]string{"go", " ", "Rust", "GO", " zig "})
		want := []string{"go", "Rust", "zig"}
		if got := f.Tags(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("ChipsCarryFieldSettings", func(t *testing.T) {
		f := New([]string{"go"}, WithDelimiter(";"), WithRemoveButton(false))
		c := f.Chips()[0]
		if c.Label() != "go;" {
			t.Errorf("expected label %q, got %q", "go;", c.Label())
		}
		if c.ShowsRemoveButton() {
			t.Error("expected remove button hidden")
		}
		if c.Listener() != chip.Listener(f) {
			t.Error("expected the field to listen to its chips")
		}
	})
}

func TestFieldAdd(t *testing.T) {
	t.Run("AppendsAndReports", func(t *testing.T) {
		f := New([]string{"go"})
		msgs := messages(f.Add(" rust "))
		added, ok := findMsg[TagAddedMsg](msgs)
		if !ok {
			t.Fatalf("expected TagAddedMsg, got %v", msgs)
		}
		if added.Tag != "rust" || added.Index != 1 {
			t.Errorf("unexpected message %+v", added)
		}
		if got := f.Tags(); !reflect.DeepEqual(got, []string{"go", "rust"}) {
			t.Errorf("unexpected tags %v", got)
		}
	})

	t.Run("BlankIsIgnored", func(t *testing.T) {
		f := New(nil)
		if cmd := f.Add("   "); cmd != nil {
			t.Error("expected nil command for blank tag")
		}
		if f.Len() != 0 {
			t.Errorf("expected no tags, got %d", f.Len())
		}
	})

	t.Run("DuplicateFlashesExisting", func(t *testing.T) {
		f := New([]string{"go", "rust"})
		existing := f.Chips()[1]
		before := existing.BackgroundTint()

		cmd := f.Add("RUST")
		if cmd == nil {
			t.Fatal("expected a flash command")
		}
		if f.Len() != 2 {
			t.Fatalf("expected duplicate rejected, got %d tags", f.Len())
		}
		if f.FlashingID() != existing.ID() {
			t.Fatalf("expected chip %d flashing, got %d", existing.ID(), f.FlashingID())
		}
		if existing.BackgroundTint() != theme.Current().Warning() {
			t.Error("expected flashing chip to use the warning color")
		}

		f.Update(flashClearMsg{id: existing.ID()})
		if f.FlashingID() != 0 {
			t.Error("expected flash cleared")
		}
		if existing.BackgroundTint() != before {
			t.Error("expected original tint restored")
		}
	})

	t.Run("StaleFlashClearIgnored", func(t *testing.T) {
		f := New([]string{"go", "rust"})
		f.Add("go")
		f.Add("rust")
		f.Update(flashClearMsg{id: f.Chips()[0].ID()})
		if f.FlashingID() != f.Chips()[1].ID() {
			t.Error("expected the newer flash to survive a stale clear")
		}
		if f.Chips()[0].BackgroundTint() == theme.Current().Warning() {
			t.Error("expected first flash restored when the second started")
		}
	})
}

func TestFieldSelection(t *testing.T) {
	t.Run("TapSelectsChip", func(t *testing.T) {
		f := newFocusedField(t, []string{"go", "rust"})
		f.Chips()[1].Tap()
		if f.SelectedIndex() != 1 {
			t.Fatalf("expected chip 1 selected, got %d", f.SelectedIndex())
		}
		if !f.Chips()[1].Selected() {
			t.Error("expected chip to report selected")
		}
		if f.input.Focused() {
			t.Error("expected caret blurred while a chip is selected")
		}
		assertSingleSelection(t, f)
	})

	t.Run("SelectingAnotherDeselectsPrevious", func(t *testing.T) {
		f := newFocusedField(t, []string{"go", "rust", "zig"})
		f.Select(0)
		f.Chips()[2].Tap()
		if f.Chips()[0].Selected() {
			t.Error("expected previous chip deselected")
		}
		if f.SelectedIndex() != 2 {
			t.Errorf("expected chip 2 selected, got %d", f.SelectedIndex())
		}
		assertSingleSelection(t, f)
	})

	t.Run("ProgrammaticSelectionOnChip", func(t *testing.T) {
		f := newFocusedField(t, []string{"go", "rust"})
		f.Select(0)
		f.Chips()[1].SetSelected(true)
		if f.SelectedIndex() != 1 {
			t.Errorf("expected chip 1 selected, got %d", f.SelectedIndex())
		}
		assertSingleSelection(t, f)
	})

	t.Run("DeselectFocusesCaret", func(t *testing.T) {
		f := newFocusedField(t, []string{"go"})
		f.Select(0)
		f.Deselect()
		if f.SelectedIndex() != -1 {
			t.Errorf("expected no selection, got %d", f.SelectedIndex())
		}
		if !f.input.Focused() {
			t.Error("expected caret focused")
		}
		assertSingleSelection(t, f)
	})

	t.Run("OutOfRangeSelectIgnored", func(t *testing.T) {
		f := newFocusedField(t, []string{"go"})
		if cmd := f.Select(3); cmd != nil {
			t.Error("expected nil command")
		}
		if f.SelectedIndex() != -1 {
			t.Errorf("expected no selection, got %d", f.SelectedIndex())
		}
	})

	t.Run("SetTagsWhileChipSelectedRefocusesCaret", func(t *testing.T) {
		f := newFocusedField(t, []string{"go", "rust"})
		f.Select(0)
		f.SetTags([]string{"zig"})
		if f.SelectedIndex() != -1 {
			t.Fatalf("expected no selection, got %d", f.SelectedIndex())
		}
		if !f.input.Focused() {
			t.Fatal("expected caret focused after replacing the tags")
		}
		f.Update(runes("q"))
		if f.InputValue() != "q" {
			t.Errorf("expected typing to reach the caret, got %q", f.InputValue())
		}
		assertSingleSelection(t, f)
	})

	t.Run("SetTagsOnBlurredFieldKeepsCaretBlurred", func(t *testing.T) {
		f := New([]string{"go"})
		if cmd := f.SetTags([]string{"zig"}); cmd != nil {
			t.Error("expected no command for a blurred field")
		}
		if f.input.Focused() {
			t.Error("expected caret to stay blurred")
		}
	})

	t.Run("BlurDeselects", func(t *testing.T) {
		f := newFocusedField(t, []string{"go"})
		f.Select(0)
		f.Blur()
		if f.Focused() || f.input.Focused() {
			t.Error("expected field and caret blurred")
		}
		if f.Chips()[0].Selected() {
			t.Error("expected chip deselected on blur")
		}
		assertSingleSelection(t, f)
	})
}

func TestFieldSingleSelectionAcrossSequences(t *testing.T) {
	steps := []struct {
		name string
		do   func(f *Field)
	}{
		{"tap first", func(f *Field) { f.Chips()[0].Tap() }},
		{"right", func(f *Field) { f.Update(key(tea.KeyRight)) }},
		{"tap last", func(f *Field) { f.Chips()[f.Len()-1].Tap() }},
		{"left", func(f *Field) { f.Update(key(tea.KeyLeft)) }},
		{"select first", func(f *Field) { f.Select(0) }},
		{"enter", func(f *Field) { f.Update(key(tea.KeyEnter)) }},
		{"chip selects itself", func(f *Field) { f.Chips()[2].SetSelected(true) }},
		{"tap middle", func(f *Field) { f.Chips()[1].Tap() }},
		{"escape", func(f *Field) { f.Update(key(tea.KeyEsc)) }},
		{"backspace on empty caret", func(f *Field) { f.Update(key(tea.KeyBackspace)) }},
		{"deselect", func(f *Field) { f.Deselect() }},
		{"right past last", func(f *Field) {
			f.Select(f.Len() - 1)
			f.Update(key(tea.KeyRight))
		}},
	}

	f := newFocusedField(t, []string{"go", "rust", "zig", "odin"})
	for _, step := range steps {
		step.do(f)
		t.Run(step.name, func(t *testing.T) {
			assertSingleSelection(t, f)
		})
	}
}

func TestFieldDelete(t *testing.T) {
	t.Run("BackspaceOnSelectedChipRemovesIt", func(t *testing.T) {
		f := newFocusedField(t, []string{"go", "rust"})
		f.Update(key(tea.KeyBackspace)) // selects last
		if f.SelectedIndex() != 1 {
			t.Fatalf("expected last chip selected, got %d", f.SelectedIndex())
		}
		msgs := messages(f.Update(key(tea.KeyBackspace)))

		removed, ok := findMsg[TagRemovedMsg](msgs)
		if !ok {
			t.Fatalf("expected TagRemovedMsg, got %v", msgs)
		}
		if removed.Tag != "rust" || removed.Index != 1 {
			t.Errorf("unexpected message %+v", removed)
		}
		if got := f.Tags(); !reflect.DeepEqual(got, []string{"go"}) {
			t.Errorf("unexpected tags %v", got)
		}
		if f.SelectedIndex() != -1 || !f.input.Focused() {
			t.Error("expected caret focused after delete")
		}
		assertSingleSelection(t, f)
	})

	t.Run("RemoveButtonOnUnselectedChip", func(t *testing.T) {
		f := newFocusedField(t, []string{"go", "rust", "zig"})
		f.Select(2)
		f.Chips()[0].PressRemove()
		if got := f.Tags(); !reflect.DeepEqual(got, []string{"rust", "zig"}) {
			t.Errorf("unexpected tags %v", got)
		}
		if f.SelectedIndex() != -1 {
			t.Errorf("expected caret focused, got selection %d", f.SelectedIndex())
		}
		assertSingleSelection(t, f)
	})

	t.Run("RemovedChipIsDetached", func(t *testing.T) {
		f := newFocusedField(t, []string{"go"})
		c := f.Chips()[0]
		c.PressRemove()
		if c.Listener() != nil {
			t.Error("expected listener cleared")
		}
		c.Tap()
		if f.SelectedIndex() != -1 || f.Len() != 0 {
			t.Error("expected detached chip to have no effect on the field")
		}
	})

	t.Run("ReplacementSeedsCaret", func(t *testing.T) {
		f := newFocusedField(t, []string{"go"})
		text := "golang"
		f.Chips()[0].RequestDelete(&text)
		if f.InputValue() != "golang" {
			t.Errorf("expected caret seeded with %q, got %q", text, f.InputValue())
		}
	})

	t.Run("FrameForRemovedChipIgnored", func(t *testing.T) {
		f := newFocusedField(t, []string{"go"})
		id := f.Chips()[0].ID()
		f.Chips()[0].PressRemove()
		f.Update(chip.FrameMsg{ID: id})
	})
}

func TestFieldCaretKeys(t *testing.T) {
	t.Run("EnterCommitsCaret", func(t *testing.T) {
		f := newFocusedField(t, nil)
		f.Update(runes("go"))
		msgs := messages(f.Update(key(tea.KeyEnter)))
		if _, ok := findMsg[TagAddedMsg](msgs); !ok {
			t.Fatalf("expected TagAddedMsg, got %v", msgs)
		}
		if f.InputValue() != "" {
			t.Errorf("expected caret cleared, got %q", f.InputValue())
		}
		if got := f.Tags(); !reflect.DeepEqual(got, []string{"go"}) {
			t.Errorf("unexpected tags %v", got)
		}
	})

	t.Run("TabCommitsCaret", func(t *testing.T) {
		f := newFocusedField(t, nil)
		f.Update(runes("rust"))
		f.Update(key(tea.KeyTab))
		if f.Len() != 1 {
			t.Errorf("expected 1 tag, got %d", f.Len())
		}
	})

	t.Run("DelimiterCommitsCaret", func(t *testing.T) {
		f := newFocusedField(t, nil)
		f.Update(runes("zig"))
		f.Update(runes(","))
		if got := f.Tags(); !reflect.DeepEqual(got, []string{"zig"}) {
			t.Errorf("unexpected tags %v", got)
		}
		if f.InputValue() != "" {
			t.Errorf("expected caret cleared, got %q", f.InputValue())
		}
	})

	t.Run("DelimiterTypedKeyByKey", func(t *testing.T) {
		space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		tests := []struct {
			name  string
			delim string
			keys  []tea.KeyMsg
		}{
			{"Space", " ", []tea.KeyMsg{runes("g"), runes("o"), space}},
			{"MultiRune", ";;", []tea.KeyMsg{runes("g"), runes("o"), runes(";"), runes(";")}},
			{"MultiRuneInOneEvent", ";;", []tea.KeyMsg{runes("go"), runes(";;")}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFocusedField(t, nil, WithDelimiter(tt.delim))
				var msgs []tea.Msg
				for _, k := range tt.keys {
					msgs = append(msgs, messages(f.Update(k))...)
				}
				if got := f.Tags(); !reflect.DeepEqual(got, []string{"go"}) {
					t.Errorf("expected [go], got %v", got)
				}
				if f.InputValue() != "" {
					t.Errorf("expected caret cleared, got %q", f.InputValue())
				}
				if _, ok := findMsg[TagAddedMsg](msgs); !ok {
					t.Errorf("expected TagAddedMsg, got %v", msgs)
				}
			})
		}
	})

	t.Run("PartialDelimiterStaysInCaret", func(t *testing.T) {
		f := newFocusedField(t, nil, WithDelimiter(";;"))
		f.Update(runes("go;"))
		if f.Len() != 0 {
			t.Errorf("expected no tag yet, got %v", f.Tags())
		}
		if f.InputValue() != "go;" {
			t.Errorf("expected caret %q, got %q", "go;", f.InputValue())
		}
	})

	t.Run("PastedListSplitsOnDelimiter", func(t *testing.T) {
		f := newFocusedField(t, nil)
		f.Update(runes("go, rust, zig"))
		if got := f.Tags(); !reflect.DeepEqual(got, []string{"go", "rust"}) {
			t.Errorf("unexpected tags %v", got)
		}
		if f.InputValue() != "zig" {
			t.Errorf("expected trailing text kept in caret, got %q", f.InputValue())
		}
	})

	t.Run("DuplicateCommitClearsCaretAndFlashes", func(t *testing.T) {
		f := newFocusedField(t, []string{"Go"})
		f.Update(runes("go"))
		f.Update(key(tea.KeyEnter))
		if f.Len() != 1 {
			t.Errorf("expected duplicate rejected, got %d tags", f.Len())
		}
		if f.FlashingID() != f.Chips()[0].ID() {
			t.Error("expected existing chip flashing")
		}
		if f.InputValue() != "" {
			t.Errorf("expected caret cleared, got %q", f.InputValue())
		}
	})

	t.Run("EmptyEnterDoesNothing", func(t *testing.T) {
		f := newFocusedField(t, []string{"go"})
		if cmd := f.Update(key(tea.KeyEnter)); cmd != nil {
			if _, ok := findMsg[TagAddedMsg](messages(cmd)); ok {
				t.Error("expected no tag added")
			}
		}
		if f.Len() != 1 {
			t.Errorf("expected 1 tag, got %d", f.Len())
		}
	})

	t.Run("LeftOnEmptyCaretSelectsLast", func(t *testing.T) {
		f := newFocusedField(t, []string{"go", "rust"})
		f.Update(key(tea.KeyLeft))
		if f.SelectedIndex() != 1 {
			t.Errorf("expected last chip selected, got %d", f.SelectedIndex())
		}
	})

	t.Run("BackspaceWithTextEditsCaret", func(t *testing.T) {
		f := newFocusedField(t, []string{"go"})
		f.Update(runes("ab"))
		f.Update(key(tea.KeyBackspace))
		if f.InputValue() != "a" {
			t.Errorf("expected caret %q, got %q", "a", f.InputValue())
		}
		if f.SelectedIndex() != -1 {
			t.Error("expected no chip selected")
		}
	})

	t.Run("KeysIgnoredWhileBlurred", func(t *testing.T) {
		f := New([]string{"go"})
		f.Update(key(tea.KeyBackspace))
		f.Update(runes("x"))
		if f.SelectedIndex() != -1 || f.InputValue() != "" {
			t.Error("expected blurred field to ignore keys")
		}
	})
}

func TestFieldChipKeys(t *testing.T) {
	t.Run("LeftRightNavigate", func(t *testing.T) {
		f := newFocusedField(t, []string{"go", "rust", "zig"})
		f.Select(1)

		f.Update(key(tea.KeyLeft))
		if f.SelectedIndex() != 0 {
			t.Fatalf("expected 0, got %d", f.SelectedIndex())
		}
		f.Update(key(tea.KeyLeft))
		if f.SelectedIndex() != 0 {
			t.Fatalf("expected to stop at first chip, got %d", f.SelectedIndex())
		}
		f.Update(key(tea.KeyRight))
		f.Update(key(tea.KeyRight))
		if f.SelectedIndex() != 2 {
			t.Fatalf("expected 2, got %d", f.SelectedIndex())
		}
		f.Update(key(tea.KeyRight))
		if f.SelectedIndex() != -1 || !f.input.Focused() {
			t.Error("expected caret focused past last chip")
		}
	})

	t.Run("EscapeDeselects", func(t *testing.T) {
		f := newFocusedField(t, []string{"go"})
		f.Select(0)
		f.Update(key(tea.KeyEsc))
		if f.SelectedIndex() != -1 {
			t.Errorf("expected no selection, got %d", f.SelectedIndex())
		}
	})

	t.Run("EnterMovesToNextChip", func(t *testing.T) {
		f := newFocusedField(t, []string{"go", "rust"})
		f.Select(0)
		f.Update(key(tea.KeyEnter))
		if f.SelectedIndex() != 1 {
			t.Fatalf("expected next chip selected, got %d", f.SelectedIndex())
		}
		f.Update(key(tea.KeyEnter))
		if f.SelectedIndex() != -1 || !f.input.Focused() {
			t.Error("expected caret after last chip")
		}
	})

	t.Run("ReturnDoneGoesToCaret", func(t *testing.T) {
		f := newFocusedField(t, []string{"go", "rust"})
		f.Chips()[0].Traits.ReturnKey = chip.ReturnDone
		f.Select(0)
		f.Update(key(tea.KeyEnter))
		if f.SelectedIndex() != -1 {
			t.Errorf("expected caret focused, got selection %d", f.SelectedIndex())
		}
	})

	t.Run("TypingMovesToCaret", func(t *testing.T) {
		f := newFocusedField(t, []string{"go"})
		f.Select(0)
		f.Update(runes("r"))
		f.Update(runes("s"))
		if f.SelectedIndex() != -1 {
			t.Errorf("expected caret focused, got selection %d", f.SelectedIndex())
		}
		if f.InputValue() != "rs" {
			t.Errorf("expected caret %q, got %q", "rs", f.InputValue())
		}
		if got := f.Tags(); !reflect.DeepEqual(got, []string{"go"}) {
			t.Errorf("expected chip text unchanged, got %v", got)
		}
	})

	t.Run("CopySelected", func(t *testing.T) {
		var copied string
		orig := writeClipboard
		writeClipboard = func(s string) error {
			copied = s
			return nil
		}
		t.Cleanup(func() { writeClipboard = orig })

		f := newFocusedField(t, []string{"go", "rust"})
		f.Select(1)
		msgs := messages(f.Update(key(tea.KeyCtrlY)))
		if copied != "rust" {
			t.Errorf("expected %q copied, got %q", "rust", copied)
		}
		if msg, ok := findMsg[TagCopiedMsg](msgs); !ok || msg.Tag != "rust" {
			t.Errorf("expected TagCopiedMsg for rust, got %v", msgs)
		}
	})

	t.Run("CopyFailureIsQuiet", func(t *testing.T) {
		orig := writeClipboard
		writeClipboard = func(string) error { return errors.New("no clipboard") }
		t.Cleanup(func() { writeClipboard = orig })

		f := newFocusedField(t, []string{"go"})
		f.Select(0)
		if _, ok := findMsg[TagCopiedMsg](messages(f.Update(key(tea.KeyCtrlY)))); ok {
			t.Error("expected no TagCopiedMsg on failure")
		}
		if f.SelectedIndex() != 0 {
			t.Error("expected selection kept")
		}
	})
}

func TestFieldSettings(t *testing.T) {
	t.Run("SetDelimiterUpdatesLabels", func(t *testing.T) {
		f := New([]string{"go", "rust"})
		f.SetDelimiter(";")
		for _, c := range f.Chips() {
			if !strings.HasSuffix(c.Label(), ";") {
				t.Errorf("expected label ending in ';', got %q", c.Label())
			}
		}
	})

	t.Run("SetShowsRemoveButton", func(t *testing.T) {
		f := New([]string{"go"})
		before := f.Chips()[0].IntrinsicSize().W
		f.SetShowsRemoveButton(false)
		if f.Chips()[0].ShowsRemoveButton() {
			t.Error("expected remove button hidden")
		}
		if got := f.Chips()[0].IntrinsicSize().W; got != before-chip.RemoveSpace {
			t.Errorf("expected chip to shrink, got width %v from %v", got, before)
		}
	})

	t.Run("RefreshStyleFollowsTheme", func(t *testing.T) {
		original := theme.CurrentName()
		t.Cleanup(func() { theme.SetTheme(original) })

		f := New([]string{"go"})
		next := theme.CycleTheme()
		f.RefreshStyle()
		if next == original {
			t.Skip("only one theme registered")
		}
		if f.Chips()[0].BackgroundTint() != theme.Current().Info() {
			t.Error("expected chip tint from the new theme")
		}
	})

	t.Run("ChipStyleOverride", func(t *testing.T) {
		s := chip.DefaultStyle()
		s.BorderWidth = 1
		f := New([]string{"go"}, WithChipStyle(s))
		if f.Chips()[0].BorderWidth() != 1 {
			t.Error("expected chip style applied")
		}
		f.RefreshStyle()
		if f.Chips()[0].BorderWidth() != 1 {
			t.Error("expected override kept across refresh")
		}
	})
}
