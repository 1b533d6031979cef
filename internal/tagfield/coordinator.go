package tagfield

import (
	tea "github.com/charmbracelet/bubbletea"

	"tagfield/internal/chip"
)

// RequestFocus makes c the only selected chip and takes focus off the caret.
func (f *Field) RequestFocus(c *chip.TagChip) {
	i := f.indexOf(c)
	if i < 0 {
		return
	}
	prev := f.SelectedChip()
	f.selected = i
	f.focused = true
	f.input.Blur()
	if prev != nil && prev != c {
		// The index already moved, so the previous chip's release is not
		// reported back here.
		f.push(prev.ResignActive())
	}
	log.Logf("focus -> chip %d %q", i, c.DisplayText())
}

// ReleaseFocus hands focus back to the caret when the selected chip lets go.
func (f *Field) ReleaseFocus(c *chip.TagChip) {
	if f.indexOf(c) != f.selected {
		return
	}
	f.selected = noSelection
	if f.focused {
		f.push(f.input.Focus())
	}
	log.Logf("focus -> caret")
}

// DidRequestSelection selects the tapped chip.
func (f *Field) DidRequestSelection(c *chip.TagChip) {
	if f.indexOf(c) < 0 {
		return
	}
	f.focused = true
	f.push(c.SetSelected(true))
}

// DidRequestDelete removes c, focuses the caret and seeds it with replacement
// when one is given.
func (f *Field) DidRequestDelete(c *chip.TagChip, replacement *string) {
	i := f.indexOf(c)
	if i < 0 {
		return
	}
	text := c.DisplayText()
	if f.flash != nil && f.flash.id == c.ID() {
		f.flash = nil
	}
	if i == f.selected {
		f.selected = noSelection
	}
	detach(c)
	f.chips = append(f.chips[:i], f.chips[i+1:]...)
	if f.selected > i {
		f.selected--
	}

	f.focused = true
	if sel := f.SelectedChip(); sel != nil {
		f.push(sel.SetSelected(false))
	}
	f.push(f.input.Focus())
	if replacement != nil {
		f.SetInputValue(*replacement)
	}
	log.Logf("removed %q at %d", text, i)
	f.push(func() tea.Msg {
		return TagRemovedMsg{Tag: text, Index: i}
	})
}

// DidInputText handles text typed while c was selected. A newline moves to
// the next chip, or to the caret after the last one; anything else goes to
// the caret.
func (f *Field) DidInputText(c *chip.TagChip, text string) {
	i := f.indexOf(c)
	if i < 0 {
		return
	}
	if text == "\n" && c.Traits.ReturnKey == chip.ReturnNext && i+1 < len(f.chips) {
		f.push(f.chips[i+1].SetSelected(true))
		return
	}
	f.push(c.SetSelected(false))
	if text == "\n" {
		return
	}
	f.insertCaretText(text)
}
