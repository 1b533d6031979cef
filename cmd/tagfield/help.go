package main

import (
	"github.com/charmbracelet/glamour"
)

const keyHelp = `# tagfield keys

## Typing

| Key | Action |
|-----|--------|
| text | edit the tag being typed |
| enter, tab, delimiter | add the typed text as a tag |
| backspace, ← on empty input | select the last tag |

## With a tag selected

| Key | Action |
|-----|--------|
| ←, → | select the previous or next tag |
| enter | select the next tag, or return to the input after the last |
| backspace, delete | remove the tag |
| ctrl+y | copy the tag to the clipboard |
| esc, tab | return to the input |
| text | return to the input and type |

## Anywhere

| Key | Action |
|-----|--------|
| click | select a tag, or remove it with ✕ |
| ctrl+t | next color theme |
| ctrl+c | quit |
`

// renderKeyHelp renders the key reference for a terminal of the given width,
// falling back to the raw markdown when rendering fails.
func renderKeyHelp(width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return keyHelp
	}
	out, err := renderer.Render(keyHelp)
	if err != nil {
		return keyHelp
	}
	return out
}
