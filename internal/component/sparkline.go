package component

import (
	"image"
	"math"

	"github.com/rileyhilliard/panelstat/internal/display"
)

// renderSparkline plots one pixel per sample, newest in the rightmost column.
// The bottom row carries a tick every 10 columns and the top corners mark the
// graph edges. The last row of the slot is left blank as a separator.
func renderSparkline(c *display.Canvas, offset image.Point, h *History) {
	w := c.Width()
	bottom := c.LineHeight() - 2

	for i := 0; i < h.Len() && i < w; i++ {
		y := bottom - int(math.Round(float64(bottom)*h.At(i)))
		c.Pixel(offset.Add(image.Pt(w-1-i, y)))
	}

	for x := 0; x < w; x += 10 {
		c.Pixel(offset.Add(image.Pt(x, bottom)))
	}

	c.Pixel(offset)
	c.Pixel(offset.Add(image.Pt(w-1, 0)))
}
