// Package tagfield is a tokenizing tag input built from chip.TagChip. It
// hosts the chips and a text caret, keeps at most one chip selected, and
// turns chip requests into edits of the tag list.
package tagfield

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tagfield/internal/chip"
	"tagfield/internal/debug"
	"tagfield/internal/theme"
)

var log = debug.Scope("tagfield")

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

const (
	// DefaultWidth is the wrap width used when none is given.
	DefaultWidth = 60
	// DefaultDelimiter separates tags while typing and trails each label.
	DefaultDelimiter = ","

	flashDuration = 150 * time.Millisecond
	noSelection   = -1
	caretWidth    = 16
)

// TagAddedMsg is sent when the caret text is committed as a new tag.
type TagAddedMsg struct {
	Tag   string
	Index int
}

// TagRemovedMsg is sent when a chip is removed.
type TagRemovedMsg struct {
	Tag   string
	Index int
}

// TagCopiedMsg is sent after the selected tag was copied to the clipboard.
type TagCopiedMsg struct {
	Tag string
}

// flashClearMsg ends the duplicate flash on the chip with the given ID.
type flashClearMsg struct {
	id int
}

type flash struct {
	id   int
	tint lipgloss.TerminalColor
}

// Field is a row of tag chips followed by a text caret, wrapped to Width.
// It is the focus coordinator and listener for every chip it creates.
type Field struct {
	chips    []*chip.TagChip
	input    textinput.Model
	selected int
	focused  bool

	width      int
	delimiter  string
	showRemove bool
	style      *chip.Style
	originX    int
	originY    int

	flash   *flash
	pending []tea.Cmd
}

// Option configures a Field at construction.
type Option func(*Field)

// WithWidth sets the wrap width in columns. Zero or less disables wrapping.
func WithWidth(w int) Option {
	return func(f *Field) {
		f.width = w
	}
}

// WithDelimiter sets the separator that commits a tag when typed.
func WithDelimiter(delim string) Option {
	return func(f *Field) {
		f.delimiter = delim
	}
}

// WithPlaceholder sets the caret's placeholder text.
func WithPlaceholder(s string) Option {
	return func(f *Field) {
		f.input.Placeholder = s
	}
}

// WithRemoveButton shows or hides the remove control on every chip.
func WithRemoveButton(show bool) Option {
	return func(f *Field) {
		f.showRemove = show
	}
}

// WithChipStyle overrides the theme-derived chip style.
func WithChipStyle(s chip.Style) Option {
	return func(f *Field) {
		f.style = &s
	}
}

// WithOrigin sets the screen cell of the field's top-left corner, used to
// translate mouse coordinates.
func WithOrigin(x, y int) Option {
	return func(f *Field) {
		f.originX, f.originY = x, y
	}
}

// New creates a field holding tags in order. Blank and duplicate tags are
// skipped.
func New(tags []string, opts ...Option) *Field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100

	f := &Field{
		input:      ti,
		selected:   noSelection,
		width:      DefaultWidth,
		delimiter:  DefaultDelimiter,
		showRemove: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.sizeCaret()
	f.styleCaret()
	f.SetTags(tags)
	return f
}

// Init implements tea.Model-like interface.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

func (f *Field) newChip(text string) *chip.TagChip {
	opts := []chip.Option{
		chip.WithDelimiter(f.delimiter),
		chip.WithRemoveButton(f.showRemove),
		chip.WithListener(f),
		chip.WithFocusCoordinator(f),
	}
	if f.style != nil {
		opts = append(opts, chip.WithStyle(*f.style))
	}
	return chip.New(chip.Tag{Text: text}, opts...)
}

// Tags returns the tag texts in display order.
func (f *Field) Tags() []string {
	tags := make([]string, len(f.chips))
	for i, c := range f.chips {
		tags[i] = c.DisplayText()
	}
	return tags
}

// SetTags replaces every chip. The caret keeps its text; any selection is
// dropped and a focused field hands focus back to the caret.
func (f *Field) SetTags(tags []string) tea.Cmd {
	for _, c := range f.chips {
		detach(c)
	}
	f.chips = nil
	f.selected = noSelection
	f.flash = nil
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || f.indexOfText(tag) >= 0 {
			continue
		}
		f.chips = append(f.chips, f.newChip(tag))
	}
	if f.focused {
		return f.input.Focus()
	}
	return nil
}

// Chips returns the field's chips. Callers must not reorder the slice.
func (f *Field) Chips() []*chip.TagChip {
	return f.chips
}

// Len returns the number of tags.
func (f *Field) Len() int {
	return len(f.chips)
}

// SelectedIndex returns the index of the selected chip, or -1 when the caret
// holds focus.
func (f *Field) SelectedIndex() int {
	return f.selected
}

// SelectedChip returns the selected chip, or nil.
func (f *Field) SelectedChip() *chip.TagChip {
	if f.selected < 0 || f.selected >= len(f.chips) {
		return nil
	}
	return f.chips[f.selected]
}

// Select selects the chip at index i. Out-of-range indexes do nothing.
func (f *Field) Select(i int) tea.Cmd {
	if i < 0 || i >= len(f.chips) {
		return nil
	}
	f.focused = true
	f.push(f.chips[i].SetSelected(true))
	return f.drain()
}

// Deselect returns focus from the selected chip to the caret.
func (f *Field) Deselect() tea.Cmd {
	if c := f.SelectedChip(); c != nil {
		f.push(c.SetSelected(false))
	}
	return f.drain()
}

// Width returns the wrap width.
func (f *Field) Width() int {
	return f.width
}

// SetWidth changes the wrap width.
func (f *Field) SetWidth(w int) {
	f.width = w
	f.sizeCaret()
}

// sizeCaret gives the caret a fixed slot wide enough for its placeholder but
// never wider than a line.
func (f *Field) sizeCaret() {
	w := max(caretWidth, ansi.StringWidth(f.input.Placeholder))
	if f.width > 0 {
		w = min(w, f.width-1)
	}
	f.input.Width = max(w, 1)
}

// Delimiter returns the separator that commits a tag.
func (f *Field) Delimiter() string {
	return f.delimiter
}

// SetDelimiter changes the commit separator and every chip's trailing
// delimiter.
func (f *Field) SetDelimiter(delim string) {
	f.delimiter = delim
	for _, c := range f.chips {
		c.SetDisplayDelimiter(delim)
	}
}

// SetShowsRemoveButton shows or hides the remove control on every chip.
func (f *Field) SetShowsRemoveButton(show bool) {
	f.showRemove = show
	for _, c := range f.chips {
		c.SetShowsRemoveButton(show)
	}
}

func (f *Field) styleCaret() {
	t := theme.Current()
	if t == nil {
		return
	}
	f.input.Cursor.Style = lipgloss.NewStyle().Foreground(t.Accent())
	f.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(t.TextMuted())
}

// RefreshStyle recolors the caret and every chip from the active theme, or
// the chips from the style given with WithChipStyle.
func (f *Field) RefreshStyle() {
	f.styleCaret()
	s := chip.DefaultStyle()
	if f.style != nil {
		s = *f.style
	}
	if f.flash != nil {
		f.flash.tint = s.BackgroundTint
	}
	for _, c := range f.chips {
		c.SetBorderColor(s.BorderColor)
		c.SetBorderWidth(s.BorderWidth)
		c.SetSelectedColor(s.SelectedColor)
		c.SetTextColor(s.TextColor)
		c.SetSelectedTextColor(s.SelectedTextColor)
		if f.flash == nil || f.flash.id != c.ID() {
			c.SetBackgroundTint(s.BackgroundTint)
		}
	}
}

// Focus gives the field keyboard focus. The caret takes it unless a chip is
// selected.
func (f *Field) Focus() tea.Cmd {
	f.focused = true
	if f.SelectedChip() != nil {
		return nil
	}
	return f.input.Focus()
}

// Blur removes keyboard focus, deselecting any chip.
func (f *Field) Blur() tea.Cmd {
	f.focused = false
	if c := f.SelectedChip(); c != nil {
		f.push(c.SetSelected(false))
	}
	f.input.Blur()
	return f.drain()
}

// Focused reports whether the field has keyboard focus.
func (f *Field) Focused() bool {
	return f.focused
}

// InputValue returns the caret text.
func (f *Field) InputValue() string {
	return f.input.Value()
}

// SetInputValue replaces the caret text and moves the cursor to its end.
func (f *Field) SetInputValue(s string) {
	f.input.SetValue(s)
	f.input.CursorEnd()
}

// Add commits text as a new tag at the end. A case-insensitive duplicate is
// rejected and the existing chip flashes.
func (f *Field) Add(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if i := f.indexOfText(text); i >= 0 {
		log.Logf("duplicate %q rejected", text)
		return f.startFlash(f.chips[i])
	}
	f.chips = append(f.chips, f.newChip(text))
	index := len(f.chips) - 1
	log.Logf("added %q at %d", text, index)
	return func() tea.Msg {
		return TagAddedMsg{Tag: text, Index: index}
	}
}

// FlashingID returns the ID of the chip showing the duplicate flash, or 0.
func (f *Field) FlashingID() int {
	if f.flash == nil {
		return 0
	}
	return f.flash.id
}

func (f *Field) indexOfText(text string) int {
	for i, c := range f.chips {
		if strings.EqualFold(c.DisplayText(), text) {
			return i
		}
	}
	return -1
}

func (f *Field) indexOf(c *chip.TagChip) int {
	for i, existing := range f.chips {
		if existing == c {
			return i
		}
	}
	return -1
}

func (f *Field) chipByID(id int) *chip.TagChip {
	for _, c := range f.chips {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

func (f *Field) startFlash(c *chip.TagChip) tea.Cmd {
	f.endFlash()
	f.flash = &flash{id: c.ID(), tint: c.BackgroundTint()}
	if t := theme.Current(); t != nil {
		c.SetBackgroundTint(t.Warning())
	} else {
		c.SetBackgroundTint(lipgloss.Color("208"))
	}
	id := c.ID()
	return tea.Tick(flashDuration, func(_ time.Time) tea.Msg {
		return flashClearMsg{id: id}
	})
}

func (f *Field) endFlash() {
	if f.flash == nil {
		return
	}
	if c := f.chipByID(f.flash.id); c != nil {
		c.SetBackgroundTint(f.flash.tint)
	}
	f.flash = nil
}

func (f *Field) push(cmd tea.Cmd) {
	if cmd != nil {
		f.pending = append(f.pending, cmd)
	}
}

func (f *Field) drain() tea.Cmd {
	if len(f.pending) == 0 {
		return nil
	}
	cmds := f.pending
	f.pending = nil
	return tea.Batch(cmds...)
}

// detach unhooks a chip leaving the field so it can no longer reach it.
func detach(c *chip.TagChip) {
	c.SetListener(nil)
	c.SetFocusCoordinator(nil)
	c.ResignActive()
}
