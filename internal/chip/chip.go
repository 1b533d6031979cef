// Package chip implements TagChip, a single rounded tag that can be selected,
// removed, and handed keystrokes while it holds input focus.
//
// A chip never decides on its own to become selected or to disappear. It
// reports gestures and keystrokes to its Listener and lets the host (see
// package tagfield) act on them. Selection and input focus are one state:
// setting either sets the other, through the host's FocusCoordinator.
package chip

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagfield/internal/debug"
)

var log = debug.Scope("chip")

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Tag is the seed a chip is created from.
type Tag struct {
	Text string
}

// TagChip is one tag in a tag field. Create chips with New; a zero TagChip is
// not usable and panics on first use.
type TagChip struct {
	id  int
	tag Tag

	displayText      string
	displayDelimiter string
	label            string

	selected          bool
	active            bool
	showsRemoveButton bool

	style   Style
	frame   Size
	laidOut bool

	listener Listener
	focus    FocusCoordinator
	anim     animator

	// Traits is read by the host's text handling when this chip has focus.
	Traits InputTraits
}

// Option configures a chip at construction.
type Option func(*TagChip)

// WithStyle replaces the theme-derived default style.
func WithStyle(s Style) Option {
	return func(c *TagChip) {
		if s.Font == nil {
			s.Font = DefaultFont()
		}
		c.style = s
	}
}

// WithDelimiter sets the initial display delimiter.
func WithDelimiter(delim string) Option {
	return func(c *TagChip) {
		c.displayDelimiter = delim
	}
}

// WithRemoveButton shows or hides the remove control.
func WithRemoveButton(show bool) Option {
	return func(c *TagChip) {
		c.showsRemoveButton = show
	}
}

// WithListener registers the chip's listener.
func WithListener(l Listener) Option {
	return func(c *TagChip) {
		c.listener = l
	}
}

// WithFocusCoordinator sets who is told when the chip takes or gives up focus.
func WithFocusCoordinator(f FocusCoordinator) Option {
	return func(c *TagChip) {
		c.focus = f
	}
}

// New creates an unselected chip showing tag.Text.
func New(tag Tag, opts ...Option) *TagChip {
	c := &TagChip{
		id:          nextID(),
		tag:         tag,
		displayText: tag.Text,
		style:       DefaultStyle(),
		anim:        newAnimator(),
		Traits:      DefaultInputTraits(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.updateLabelText()
	return c
}

func (c *TagChip) mustBeSeeded() {
	if c == nil || c.id == 0 {
		panic("chip: TagChip used without chip.New")
	}
}

// ID identifies the chip for the lifetime of the process.
func (c *TagChip) ID() int { return c.id }

// Tag returns the seed the chip was created from.
func (c *TagChip) Tag() Tag { return c.tag }

// DisplayText returns the tag text shown by the chip.
func (c *TagChip) DisplayText() string { return c.displayText }

// SetDisplayText changes the tag text and recomputes the chip's size.
func (c *TagChip) SetDisplayText(text string) {
	c.mustBeSeeded()
	c.displayText = text
	c.updateLabelText()
}

// DisplayDelimiter returns the suffix drawn after the text.
func (c *TagChip) DisplayDelimiter() string { return c.displayDelimiter }

// SetDisplayDelimiter changes the suffix and recomputes the chip's size.
func (c *TagChip) SetDisplayDelimiter(delim string) {
	c.mustBeSeeded()
	c.displayDelimiter = delim
	c.updateLabelText()
}

// Label is the rendered label content: text immediately followed by the
// delimiter.
func (c *TagChip) Label() string { return c.label }

func (c *TagChip) updateLabelText() {
	c.label = c.displayText + c.displayDelimiter
	c.frame = c.IntrinsicSize()
}

// Font returns the font used to measure and draw the label.
func (c *TagChip) Font() *Font { return c.style.Font }

// SetFont changes the label font. A nil font restores the default.
func (c *TagChip) SetFont(f *Font) {
	c.mustBeSeeded()
	if f == nil {
		f = DefaultFont()
	}
	c.style.Font = f
	c.frame = c.IntrinsicSize()
}

// CornerRadius returns the current corner radius. After the first Layout it
// tracks half of the chip's height.
func (c *TagChip) CornerRadius() float64 { return c.style.CornerRadius }

// SetCornerRadius sets the radius until the next Layout overrides it.
func (c *TagChip) SetCornerRadius(r float64) {
	c.mustBeSeeded()
	c.style.CornerRadius = r
}

// HasLaidOut reports whether Layout has run at least once.
func (c *TagChip) HasLaidOut() bool { return c.laidOut }

func (c *TagChip) BorderWidth() float64 { return c.style.BorderWidth }

func (c *TagChip) SetBorderWidth(w float64) {
	c.mustBeSeeded()
	c.style.BorderWidth = w
}

func (c *TagChip) BorderColor() lipgloss.TerminalColor { return c.style.BorderColor }

func (c *TagChip) SetBorderColor(col lipgloss.TerminalColor) {
	c.mustBeSeeded()
	c.style.BorderColor = col
}

// BackgroundTint is the fill while unselected.
func (c *TagChip) BackgroundTint() lipgloss.TerminalColor { return c.style.BackgroundTint }

func (c *TagChip) SetBackgroundTint(col lipgloss.TerminalColor) {
	c.mustBeSeeded()
	c.style.BackgroundTint = col
}

// SelectedColor is the fill while selected.
func (c *TagChip) SelectedColor() lipgloss.TerminalColor { return c.style.SelectedColor }

func (c *TagChip) SetSelectedColor(col lipgloss.TerminalColor) {
	c.mustBeSeeded()
	c.style.SelectedColor = col
}

func (c *TagChip) TextColor() lipgloss.TerminalColor { return c.style.TextColor }

func (c *TagChip) SetTextColor(col lipgloss.TerminalColor) {
	c.mustBeSeeded()
	c.style.TextColor = col
}

func (c *TagChip) SelectedTextColor() lipgloss.TerminalColor { return c.style.SelectedTextColor }

func (c *TagChip) SetSelectedTextColor(col lipgloss.TerminalColor) {
	c.mustBeSeeded()
	c.style.SelectedTextColor = col
}

// Style returns a copy of the chip's presentation configuration.
func (c *TagChip) Style() Style { return c.style }

// ShowsRemoveButton reports whether the remove control is drawn and clickable.
func (c *TagChip) ShowsRemoveButton() bool { return c.showsRemoveButton }

// SetShowsRemoveButton shows or hides the remove control and resizes the chip.
func (c *TagChip) SetShowsRemoveButton(show bool) {
	c.mustBeSeeded()
	c.showsRemoveButton = show
	c.frame = c.IntrinsicSize()
}

// ActiveColors returns the fill and text colors for the current state.
func (c *TagChip) ActiveColors() (fill, text lipgloss.TerminalColor) {
	return c.style.colors(c.selected)
}

// DisplayColors returns the colors drawn right now, partway between the two
// pairs while the selection fade runs.
func (c *TagChip) DisplayColors() (fill, text lipgloss.TerminalColor) {
	m := c.anim.mix
	fill, text = c.style.colors(false)
	if m <= 0 {
		return fill, text
	}
	selFill, selText := c.style.colors(true)
	if m >= 1 {
		return selFill, selText
	}
	return crossfade(fill, selFill, m), crossfade(text, selText, m)
}

// Selected reports whether the chip is selected, which is the same as holding
// input focus.
func (c *TagChip) Selected() bool { return c.selected }

// SetSelected selects or deselects the chip, taking or releasing focus with
// it. Selecting starts the scale feedback animation; the returned command
// drives it. Setting the current value again does nothing.
func (c *TagChip) SetSelected(selected bool) tea.Cmd {
	c.mustBeSeeded()
	if selected == c.selected {
		return nil
	}
	c.selected = selected
	log.Logf("%d %q selected=%t", c.id, c.displayText, selected)

	switch {
	case selected && !c.active:
		c.active = true
		if c.focus != nil {
			c.focus.RequestFocus(c)
		}
	case !selected && c.active:
		c.active = false
		if c.focus != nil {
			c.focus.ReleaseFocus(c)
		}
	}
	return c.updateContent()
}

// updateContent applies the state change to presentation. Selecting runs the
// scale feedback and color fade; deselecting fades the colors back with the
// same timing.
func (c *TagChip) updateContent() tea.Cmd {
	if c.selected {
		return c.anim.start(c.id)
	}
	return c.anim.fadeOut(c.id)
}

// Tap handles a click or tap on the chip body. A selected chip ignores it;
// an unselected chip asks its listener to be selected and changes nothing
// itself.
func (c *TagChip) Tap() {
	c.mustBeSeeded()
	if c.selected {
		return
	}
	c.emitRequestSelection()
}

// PressRemove handles activation of the remove control. It is ignored while
// the control is hidden.
func (c *TagChip) PressRemove() {
	c.mustBeSeeded()
	if !c.showsRemoveButton {
		return
	}
	c.emitRequestDelete(nil)
}

// Click dispatches a click at cell (x, y) relative to the chip's top-left
// corner to Tap or PressRemove.
func (c *TagChip) Click(x, y int) {
	switch c.HitTest(x, y) {
	case RegionRemove:
		c.PressRemove()
	case RegionBody:
		c.Tap()
	}
}

// Update routes Bubble Tea messages to the chip: animation frames addressed
// to it, and, while selected, the keys it turns into text input.
func (c *TagChip) Update(msg tea.Msg) tea.Cmd {
	c.mustBeSeeded()
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID != c.id {
			return nil
		}
		return c.anim.step(c.id, c.selected, msg)

	case tea.KeyMsg:
		if !c.selected {
			return nil
		}
		switch msg.Type {
		case tea.KeyRunes:
			if len(msg.Runes) > 0 {
				c.InsertText(string(msg.Runes))
			}
		case tea.KeySpace:
			c.InsertText(" ")
		case tea.KeyEnter:
			c.InsertText("\n")
		case tea.KeyBackspace, tea.KeyDelete:
			c.DeleteBackward()
		}
	}
	return nil
}
