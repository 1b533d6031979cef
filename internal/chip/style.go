package chip

import (
	"github.com/charmbracelet/lipgloss"

	"tagfield/internal/theme"
)

// Style is the chip's presentation configuration. Only the color pairs depend
// on selection; nothing here changes behavior.
type Style struct {
	Font         *Font
	CornerRadius float64
	BorderWidth  float64
	Margins      Insets

	BorderColor       lipgloss.TerminalColor
	BackgroundTint    lipgloss.TerminalColor
	SelectedColor     lipgloss.TerminalColor
	TextColor         lipgloss.TerminalColor
	SelectedTextColor lipgloss.TerminalColor
}

// DefaultStyle builds a style from the active theme.
func DefaultStyle() Style {
	s := Style{
		Font:         DefaultFont(),
		CornerRadius: 3,
		Margins:      DefaultMargins,
	}
	t := theme.Current()
	if t == nil {
		s.BorderColor = lipgloss.NoColor{}
		s.BackgroundTint = lipgloss.Color("39")
		s.SelectedColor = lipgloss.Color("240")
		s.TextColor = lipgloss.Color("255")
		s.SelectedTextColor = lipgloss.Color("0")
		return s
	}
	s.BorderColor = t.BorderFocused()
	s.BackgroundTint = t.Info()
	s.TextColor = t.Background()
	s.SelectedColor = t.BackgroundSecondary()
	s.SelectedTextColor = t.Text()
	return s
}

// colors returns the active fill and text colors for the selection state.
func (s Style) colors(selected bool) (fill, text lipgloss.TerminalColor) {
	if selected {
		return orNoColor(s.SelectedColor), orNoColor(s.SelectedTextColor)
	}
	return orNoColor(s.BackgroundTint), orNoColor(s.TextColor)
}

func orNoColor(c lipgloss.TerminalColor) lipgloss.TerminalColor {
	if c == nil {
		return lipgloss.NoColor{}
	}
	return c
}
