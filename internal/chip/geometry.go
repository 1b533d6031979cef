package chip

import (
	"math"

	"github.com/charmbracelet/x/ansi"
)

// Size is a width/height pair in logical units.
type Size struct {
	W, H float64
}

// Rect is a rectangle in logical units relative to the chip's origin.
type Rect struct {
	X, Y, W, H float64
}

// Insets are the margins between a chip's bounds and its label.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Remove control metrics. The icon is 16x16 with 8 units of space before it
// and 4 after it.
const (
	RemoveIconWidth   = 16.0
	RemoveIconHeight  = 16.0
	RemoveLeftMargin  = 8.0
	RemoveRightMargin = 4.0

	// RemoveSpace is the width reserved for the remove control when shown.
	RemoveSpace = RemoveLeftMargin + RemoveIconWidth + RemoveRightMargin
)

// DefaultMargins keeps the label one cell away from each edge and leaves the
// chip a single row tall.
var DefaultMargins = Insets{Left: 8, Right: 8}

// Font measures text in logical units. A terminal cell is CellWidth x
// LineHeight units; text width comes from its display width in cells.
type Font struct {
	Name       string
	CellWidth  float64
	LineHeight float64
	Bold       bool
}

// DefaultFont maps one terminal cell to 8x16 logical units.
func DefaultFont() *Font {
	return &Font{Name: "terminal", CellWidth: 8, LineHeight: 16}
}

func (f *Font) metrics() (cellW, lineH float64) {
	cellW, lineH = 8, 16
	if f == nil {
		return cellW, lineH
	}
	if f.CellWidth > 0 {
		cellW = f.CellWidth
	}
	if f.LineHeight > 0 {
		lineH = f.LineHeight
	}
	return cellW, lineH
}

// Measure returns the natural single-line size of text.
func (f *Font) Measure(text string) Size {
	cellW, lineH := f.metrics()
	return Size{W: float64(ansi.StringWidth(text)) * cellW, H: lineH}
}

// Cols converts a horizontal length to whole terminal columns.
func (f *Font) Cols(units float64) int {
	cellW, _ := f.metrics()
	return int(math.Round(units / cellW))
}

// Span converts a number of terminal columns to a horizontal length.
func (f *Font) Span(cols int) float64 {
	cellW, _ := f.metrics()
	return float64(cols) * cellW
}

// Rows converts a vertical length to whole terminal rows.
func (f *Font) Rows(units float64) int {
	_, lineH := f.metrics()
	return int(math.Round(units / lineH))
}

func (s Size) nonNegative() Size {
	return Size{W: math.Max(s.W, 0), H: math.Max(s.H, 0)}
}

// Layout is the result of laying a chip out inside its bounds.
type Layout struct {
	Bounds        Rect
	Label         Rect
	Remove        Rect
	RemoveVisible bool
	CornerRadius  float64
}

func (c *TagChip) removeSpace() float64 {
	if c.showsRemoveButton {
		return RemoveSpace
	}
	return 0
}

// IntrinsicSize is the size the chip wants with no constraint: the label's
// natural size plus margins, plus the remove control when shown.
func (c *TagChip) IntrinsicSize() Size {
	c.mustBeSeeded()
	label := c.style.Font.Measure(c.label)
	m := c.style.Margins
	return Size{
		W: label.W + m.Left + m.Right + c.removeSpace(),
		H: math.Max(label.H, RemoveIconHeight) + m.Top + m.Bottom,
	}.nonNegative()
}

// PreferredSize reports the size the chip wants inside constrainedTo.
// Labels are single-line and never wrap, so the constraint cannot shrink them
// and the margins and remove space are always reserved: the result equals
// IntrinsicSize. Use SizeToFit to clamp to a maximum width; View truncates
// the label when the frame ends up narrower than this.
func (c *TagChip) PreferredSize(constrainedTo Size) Size {
	return c.IntrinsicSize()
}

// SizeToFit returns IntrinsicSize with its width clamped to maxSize.W.
func (c *TagChip) SizeToFit(maxSize Size) Size {
	size := c.IntrinsicSize()
	if size.W > maxSize.W {
		return Size{W: maxSize.W, H: size.H}
	}
	return size
}

// Frame returns the bounds the host assigned, falling back to the intrinsic
// size while either dimension is zero.
func (c *TagChip) Frame() Size {
	if c.frame.W == 0 || c.frame.H == 0 {
		return c.IntrinsicSize()
	}
	return c.frame
}

// SetFrame assigns the chip's bounds.
func (c *TagChip) SetFrame(size Size) {
	c.frame = size.nonNegative()
}

// Layout positions the label and remove control inside the chip's bounds.
// Every layout resets the corner radius to half the height.
func (c *TagChip) Layout() Layout {
	c.mustBeSeeded()
	size := c.Frame()
	m := c.style.Margins

	right := m.Right
	if c.showsRemoveButton {
		right = RemoveSpace
	}
	label := Rect{
		X: m.Left,
		Y: m.Top,
		W: math.Max(size.W-m.Left-right, 0),
		H: math.Max(size.H-m.Top-m.Bottom, 0),
	}
	remove := Rect{
		X: size.W - RemoveSpace,
		Y: 0,
		W: RemoveIconWidth + RemoveRightMargin,
		H: math.Max(RemoveIconHeight, size.H),
	}

	c.style.CornerRadius = size.H / 2
	c.laidOut = true

	return Layout{
		Bounds:        Rect{W: size.W, H: size.H},
		Label:         label,
		Remove:        remove,
		RemoveVisible: c.showsRemoveButton,
		CornerRadius:  c.style.CornerRadius,
	}
}
