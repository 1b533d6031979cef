// Package theme provides the semantic color palette tag chips and the tag
// field draw from.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme names the colors the tag field needs. Every role is an AdaptiveColor
// so light and dark terminals both read well.
type Theme interface {
	Primary() lipgloss.AdaptiveColor // Titles
	Accent() lipgloss.AdaptiveColor  // Caret cursor
	Warning() lipgloss.AdaptiveColor // Duplicate-tag flash
	Info() lipgloss.AdaptiveColor    // Unselected chip fill

	Text() lipgloss.AdaptiveColor      // Primary text, selected chip text
	TextMuted() lipgloss.AdaptiveColor // Placeholders, help

	Background() lipgloss.AdaptiveColor          // Main background, unselected chip text
	BackgroundSecondary() lipgloss.AdaptiveColor // Selected chip fill

	BorderNormal() lipgloss.AdaptiveColor  // Rules between sections
	BorderFocused() lipgloss.AdaptiveColor // Chip border when a border width is set
}

// palette is a Theme backed by a plain table of colors.
type palette struct {
	primary, accent, warning, info lipgloss.AdaptiveColor
	text, textMuted                lipgloss.AdaptiveColor
	background, backgroundAlt      lipgloss.AdaptiveColor
	border, borderFocused          lipgloss.AdaptiveColor
}

func (p palette) Primary() lipgloss.AdaptiveColor             { return p.primary }
func (p palette) Accent() lipgloss.AdaptiveColor              { return p.accent }
func (p palette) Warning() lipgloss.AdaptiveColor             { return p.warning }
func (p palette) Info() lipgloss.AdaptiveColor                { return p.info }
func (p palette) Text() lipgloss.AdaptiveColor                { return p.text }
func (p palette) TextMuted() lipgloss.AdaptiveColor           { return p.textMuted }
func (p palette) Background() lipgloss.AdaptiveColor          { return p.background }
func (p palette) BackgroundSecondary() lipgloss.AdaptiveColor { return p.backgroundAlt }
func (p palette) BorderNormal() lipgloss.AdaptiveColor        { return p.border }
func (p palette) BorderFocused() lipgloss.AdaptiveColor       { return p.borderFocused }

func adaptive(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}
