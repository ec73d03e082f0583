package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bitmap is the read side of a 1-bit frame.
type Bitmap interface {
	On(x, y int) bool
}

// Half-block glyphs indexed by (top lit)<<1 | (bottom lit).
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// RenderHalfBlocks draws a width x height bitmap as text, packing two pixel
// rows into each line so pixels stay roughly square in a terminal.
func RenderHalfBlocks(b Bitmap, width, height int, ink lipgloss.Style) string {
	var sb strings.Builder
	var line strings.Builder
	for y := 0; y < height; y += 2 {
		line.Reset()
		for x := 0; x < width; x++ {
			idx := 0
			if b.On(x, y) {
				idx |= 2
			}
			if y+1 < height && b.On(x, y+1) {
				idx |= 1
			}
			line.WriteString(halfBlocks[idx])
		}
		sb.WriteString(ink.Render(line.String()))
		if y+2 < height {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
