package tagfield

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tagfield/internal/chip"
)

// Update handles messages for the field and the chips it hosts. Commands
// produced by chip callbacks during the update are batched into the result.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case chip.FrameMsg:
		if c := f.chipByID(msg.ID); c != nil {
			f.push(c.Update(msg))
		}

	case flashClearMsg:
		if f.flash != nil && f.flash.id == msg.id {
			f.endFlash()
		}

	case tea.MouseMsg:
		f.handleMouse(msg)

	case tea.KeyMsg:
		if !f.focused {
			return nil
		}
		if f.SelectedChip() != nil {
			f.handleChipKey(msg)
		} else {
			f.handleCaretKey(msg)
		}

	default:
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		f.push(cmd)
	}
	return f.drain()
}

func (f *Field) handleCaretKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyTab:
		f.commitCaret()
		return

	case tea.KeyBackspace, tea.KeyLeft:
		if f.input.Value() == "" && len(f.chips) > 0 {
			f.push(f.chips[len(f.chips)-1].SetSelected(true))
			return
		}

	case tea.KeyRunes:
		if text := string(msg.Runes); f.delimiter != "" && strings.Contains(text, f.delimiter) {
			f.insertCaretText(text)
			return
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.push(cmd)

	// A space delimiter arrives as KeySpace and a longer one one key at a
	// time, so look at the whole caret text.
	if value := f.input.Value(); f.delimiter != "" && strings.Contains(value, f.delimiter) {
		f.SetInputValue("")
		f.insertCaretText(value)
	}
}

func (f *Field) handleChipKey(msg tea.KeyMsg) {
	sel := f.SelectedChip()
	switch msg.Type {
	case tea.KeyLeft:
		if f.selected > 0 {
			f.push(f.chips[f.selected-1].SetSelected(true))
		}
	case tea.KeyRight:
		if f.selected < len(f.chips)-1 {
			f.push(f.chips[f.selected+1].SetSelected(true))
		} else {
			f.push(sel.SetSelected(false))
		}
	case tea.KeyEsc, tea.KeyTab:
		f.push(sel.SetSelected(false))
	case tea.KeyCtrlY:
		f.copySelected(sel)
	default:
		f.push(sel.Update(msg))
	}
}

func (f *Field) copySelected(c *chip.TagChip) {
	text := c.DisplayText()
	if err := writeClipboard(text); err != nil {
		log.Logf("copy %q failed: %v", text, err)
		return
	}
	f.push(func() tea.Msg {
		return TagCopiedMsg{Tag: text}
	})
}

// insertCaretText appends text to the caret. Every delimiter in the combined
// text commits what precedes it as a tag.
func (f *Field) insertCaretText(text string) {
	value := f.input.Value() + text
	if f.delimiter == "" {
		f.SetInputValue(value)
		return
	}
	parts := strings.Split(value, f.delimiter)
	for _, part := range parts[:len(parts)-1] {
		f.push(f.Add(part))
	}
	f.SetInputValue(strings.TrimLeft(parts[len(parts)-1], " "))
}

func (f *Field) commitCaret() {
	text := f.input.Value()
	if strings.TrimSpace(text) == "" {
		return
	}
	f.SetInputValue("")
	f.push(f.Add(text))
}

func (f *Field) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	x, y := msg.X-f.originX, msg.Y-f.originY
	for _, p := range f.layout() {
		if !p.contains(x, y) {
			continue
		}
		f.focused = true
		if p.index == caretIndex {
			if sel := f.SelectedChip(); sel != nil {
				f.push(sel.SetSelected(false))
			} else {
				f.push(f.input.Focus())
			}
			return
		}
		f.chips[p.index].Click(x-p.x, y-p.y)
		return
	}
}
