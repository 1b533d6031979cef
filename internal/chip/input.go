package chip

// AutoCapitalization controls automatic capitalization of typed text.
type AutoCapitalization int

const (
	CapitalizeNone AutoCapitalization = iota
	CapitalizeWords
	CapitalizeSentences
	CapitalizeAll
)

// KeyboardType hints which keyboard variant suits the input.
type KeyboardType int

const (
	KeyboardDefault KeyboardType = iota
	KeyboardASCII
	KeyboardURL
	KeyboardEmail
)

// KeyboardAppearance hints light or dark keyboard styling.
type KeyboardAppearance int

const (
	AppearanceDefault KeyboardAppearance = iota
	AppearanceDark
	AppearanceLight
)

// ReturnKey names what the return key does while the chip has focus.
type ReturnKey int

const (
	ReturnDefault ReturnKey = iota
	ReturnNext
	ReturnDone
)

func (r ReturnKey) String() string {
	switch r {
	case ReturnNext:
		return "next"
	case ReturnDone:
		return "done"
	default:
		return "default"
	}
}

// InputTraits describe how text input should behave while a chip has focus.
// The chip itself ignores them; the host's text handling reads them.
type InputTraits struct {
	AutoCapitalize                AutoCapitalization
	AutoCorrect                   bool
	SpellCheck                    bool
	KeyboardType                  KeyboardType
	KeyboardAppearance            KeyboardAppearance
	ReturnKey                     ReturnKey
	EnablesReturnKeyAutomatically bool
	SecureEntry                   bool
}

// DefaultInputTraits are plain-text tag semantics: no capitalization,
// correction, spell checking or secure entry, and return moves to the next
// tag.
func DefaultInputTraits() InputTraits {
	return InputTraits{
		AutoCapitalize: CapitalizeNone,
		ReturnKey:      ReturnNext,
	}
}

// HasText is always true so that delete keystrokes reach DeleteBackward
// instead of being swallowed as a no-op on empty input.
func (c *TagChip) HasText() bool { return true }

// InsertText forwards typed text to the listener. The chip's own text does
// not change.
func (c *TagChip) InsertText(text string) {
	c.mustBeSeeded()
	c.emitInputText(text)
}

// DeleteBackward asks the listener to delete this chip, exactly like
// pressing the remove control.
func (c *TagChip) DeleteBackward() {
	c.mustBeSeeded()
	c.emitRequestDelete(nil)
}
