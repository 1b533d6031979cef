package chip

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

// Powerline half circles give the chip its capsule ends.
const (
	pillLeft  = "\ue0b6"
	pillRight = "\ue0b4"

	removeGlyph = "✕"
	ellipsis    = "…"
)

// Region is the part of a chip under a point.
type Region int

const (
	RegionNone Region = iota
	RegionBody
	RegionRemove
)

// cellLayout is a Layout snapped to terminal cells.
type cellLayout struct {
	total    int
	lead     int
	label    int
	tail     int
	rows     int
	labelRow int
}

func (c *TagChip) cells(l Layout) cellLayout {
	f := c.style.Font
	cl := cellLayout{
		total: max(f.Cols(l.Bounds.W), 0),
		rows:  max(f.Rows(l.Bounds.H), 1),
	}
	cl.lead = min(max(f.Cols(l.Label.X), 0), cl.total)
	cl.tail = min(max(f.Cols(l.Bounds.W-l.Label.X-l.Label.W), 0), cl.total-cl.lead)
	cl.label = cl.total - cl.lead - cl.tail
	cl.labelRow = min(max(f.Rows(l.Label.Y), 0), cl.rows-1)
	return cl
}

// Width is the chip's rendered width in terminal columns.
func (c *TagChip) Width() int {
	return c.cells(c.Layout()).total
}

// Height is the chip's rendered height in terminal rows.
func (c *TagChip) Height() int {
	return c.cells(c.Layout()).rows
}

// HitTest reports which part of the chip is at cell (x, y). Everything right
// of the label counts as the remove control while it is shown.
func (c *TagChip) HitTest(x, y int) Region {
	l := c.Layout()
	cl := c.cells(l)
	if x < 0 || y < 0 || x >= cl.total || y >= cl.rows {
		return RegionNone
	}
	if l.RemoveVisible && x >= cl.lead+cl.label {
		return RegionRemove
	}
	return RegionBody
}

// View renders the chip: capsule caps, the filled label, and the remove
// glyph when shown. Colors follow the selection state.
func (c *TagChip) View() string {
	l := c.Layout()
	cl := c.cells(l)
	if cl.total == 0 {
		return ""
	}

	fill, text := c.DisplayColors()
	body := lipgloss.NewStyle().Background(fill).Foreground(text)
	if c.style.Font.Bold || c.anim.scale > 1.001 {
		body = body.Bold(true)
	}

	var line strings.Builder
	line.WriteString(c.leadView(cl.lead, l, fill))
	line.WriteString(body.Render(fitText(c.label, cl.label)))
	line.WriteString(c.tailView(cl.tail, l, body, fill, text))

	lines := make([]string, cl.rows)
	blank := lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", cl.total))
	for i := range lines {
		lines[i] = blank
	}
	lines[cl.labelRow] = line.String()
	return strings.Join(lines, "\n")
}

func (c *TagChip) leadView(n int, l Layout, fill lipgloss.TerminalColor) string {
	if n == 0 {
		return ""
	}
	pad := lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", n-1))
	return c.capView(pillLeft, l, fill) + pad
}

func (c *TagChip) tailView(n int, l Layout, body lipgloss.Style, fill, text lipgloss.TerminalColor) string {
	if n == 0 {
		return ""
	}
	inner := n - 1
	var seg string
	if l.RemoveVisible && inner > 0 {
		pre := min(c.style.Font.Cols(RemoveLeftMargin), inner-1)
		glyph := lipgloss.NewStyle().
			Background(fill).
			Foreground(blend(text, fill, 0.5)).
			Render(removeGlyph)
		seg = body.Render(strings.Repeat(" ", pre)) + glyph + body.Render(strings.Repeat(" ", inner-pre-1))
	} else {
		seg = body.Render(strings.Repeat(" ", inner))
	}
	return seg + c.capView(pillRight, l, fill)
}

// capView draws one end of the chip. A rounded chip gets a half circle in the
// border color (or the fill when there is no border); a square chip gets a
// filled cell.
func (c *TagChip) capView(glyph string, l Layout, fill lipgloss.TerminalColor) string {
	if l.CornerRadius <= 0 {
		return lipgloss.NewStyle().Background(fill).Render(" ")
	}
	edge := fill
	if c.style.BorderWidth > 0 && c.style.BorderColor != nil {
		edge = c.style.BorderColor
	}
	return lipgloss.NewStyle().Foreground(edge).Render(glyph)
}

// fitText pads or truncates s to exactly width columns.
func fitText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = truncate.StringWithTail(s, uint(width), ellipsis)
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// blend mixes a toward b by t in RGB. NoColor on either side leaves a
// unchanged.
func blend(a, b lipgloss.TerminalColor, t float64) lipgloss.TerminalColor {
	if isNoColor(a) || isNoColor(b) {
		return a
	}
	ca, okA := toColorful(a)
	cb, okB := toColorful(b)
	if !okA || !okB {
		return a
	}
	return lipgloss.Color(ca.BlendRgb(cb, t).Hex())
}

// crossfade is blend for the selection fade: a color that cannot be mixed
// switches over halfway.
func crossfade(a, b lipgloss.TerminalColor, t float64) lipgloss.TerminalColor {
	if isNoColor(a) || isNoColor(b) {
		if t < 0.5 {
			return a
		}
		return b
	}
	return blend(a, b, t)
}

// toColorful resolves a color to RGB from its definition, not through the
// output's color profile, so a reduced profile does not collapse it to black.
func toColorful(c lipgloss.TerminalColor) (colorful.Color, bool) {
	switch c := c.(type) {
	case lipgloss.Color:
		return parseColor(string(c))
	case lipgloss.AdaptiveColor:
		if lipgloss.HasDarkBackground() {
			return parseColor(c.Dark)
		}
		return parseColor(c.Light)
	case lipgloss.CompleteColor:
		return parseColor(c.TrueColor)
	case lipgloss.CompleteAdaptiveColor:
		if lipgloss.HasDarkBackground() {
			return parseColor(c.Dark.TrueColor)
		}
		return parseColor(c.Light.TrueColor)
	}
	return colorful.MakeColor(c)
}

// parseColor reads "#rrggbb" or an ANSI palette index.
func parseColor(s string) (colorful.Color, bool) {
	if strings.HasPrefix(s, "#") {
		col, err := colorful.Hex(s)
		return col, err == nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return colorful.Color{}, false
	}
	if n < 16 {
		return termenv.ConvertToRGB(termenv.ANSIColor(n)), true
	}
	return termenv.ConvertToRGB(termenv.ANSI256Color(n)), true
}

func isNoColor(c lipgloss.TerminalColor) bool {
	_, ok := c.(lipgloss.NoColor)
	return ok || c == nil
}
