package tagfield

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"tagfield/internal/chip"
)

const caretIndex = -1

// placement is where one element of the flow landed, in cells relative to
// the field's top-left corner.
type placement struct {
	index int // chip index, or caretIndex
	view  string
	x, y  int
	w, h  int
}

func (p placement) contains(x, y int) bool {
	return x >= p.x && x < p.x+p.w && y >= p.y && y < p.y+p.h
}

// layout sizes every chip to fit the width and flows chips and the caret into
// lines separated by single spaces.
func (f *Field) layout() []placement {
	elems := make([]placement, 0, len(f.chips)+1)
	for i, c := range f.chips {
		if f.width > 0 {
			c.SetFrame(c.SizeToFit(chip.Size{W: c.Font().Span(f.width), H: math.MaxFloat64}))
		} else {
			c.SetFrame(c.IntrinsicSize())
		}
		elems = append(elems, placement{index: i, view: c.View(), w: c.Width(), h: c.Height()})
	}
	caret := f.input.View()
	elems = append(elems, placement{
		index: caretIndex,
		view:  caret,
		w:     max(lipgloss.Width(caret), 1),
		h:     max(lipgloss.Height(caret), 1),
	})

	x, y, lineH := 0, 0, 0
	for i := range elems {
		e := &elems[i]
		if x > 0 {
			x++ // separator
		}
		if f.width > 0 && x > 0 && x+e.w > f.width {
			x = 0
			y += lineH
			lineH = 0
		}
		e.x, e.y = x, y
		x += e.w
		lineH = max(lineH, e.h)
	}
	return elems
}

// View renders the chips and the caret wrapped to the field width.
func (f *Field) View() string {
	elems := f.layout()
	width, height := f.width, 0
	for _, e := range elems {
		width = max(width, e.x+e.w)
		height = max(height, e.y+e.h)
	}
	cv := newCanvas(width, height)
	for _, e := range elems {
		cv.drawAt(e.x, e.y, e.view)
	}
	return cv.render()
}
