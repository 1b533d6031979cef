package tagfield

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/cellbuf"
)

// canvas composes rendered chips and the caret into a cell buffer at the
// positions the flow layout assigned, so what is drawn matches what mouse
// clicks are tested against.
type canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// drawAt writes a block starting at x,y. Each line of the block starts at
// column x; anything past the canvas edge is cropped.
func (c *canvas) drawAt(x, y int, block string) {
	if block == "" || c == nil || c.writer == nil {
		return
	}
	for i, line := range strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n") {
		if y+i >= c.height {
			break
		}
		if line != "" {
			c.writer.PrintCropAt(x, y+i, line, "")
		}
	}
}

// render returns the composed frame as newline-separated lines.
func (c *canvas) render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}
