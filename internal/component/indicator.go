package component

import (
	"image"
	"time"

	"github.com/rileyhilliard/panelstat/internal/display"
)

// indicatorFrames alternate a vertical and a horizontal pair of dots, 3x3, MSB first.
var indicatorFrames = [2][]byte{
	{
		0b010_00000,
		0b000_00000,
		0b010_00000,
	},
	{
		0b000_00000,
		0b101_00000,
		0b000_00000,
	},
}

const indicatorSize = 3

// UpdateIndicator blinks in the bottom-right corner so a frozen panel is obvious.
// It is driven only by the tick and ignores its slot offset.
type UpdateIndicator struct{}

// NewUpdateIndicator returns the liveness glyph.
func NewUpdateIndicator() *UpdateIndicator {
	return &UpdateIndicator{}
}

func (*UpdateIndicator) Name() string { return "UpdateIndicator" }

func (*UpdateIndicator) ShouldUpdate(time.Duration) bool { return false }

func (*UpdateIndicator) Update() error { return nil }

func (*UpdateIndicator) Render(c *display.Canvas, _ image.Point, tick uint64) error {
	p := image.Pt(c.Width()-indicatorSize, c.Height()-indicatorSize)
	c.Bitmap(p, indicatorFrames[tick%2], indicatorSize)
	return nil
}
