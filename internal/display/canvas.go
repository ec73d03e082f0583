package display

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// TextStyle is the font and ink used for labels.
type TextStyle struct {
	Face  font.Face
	Color image1bit.Bit
}

// StrokeStyle is the ink and width used for lines and points.
type StrokeStyle struct {
	Color image1bit.Bit
	Width int
}

// Canvas is what components render into: the frame plus shared styles.
type Canvas struct {
	frame      *Frame
	text       TextStyle
	stroke     StrokeStyle
	lineHeight int
	ink        *image.Uniform
}

// NewCanvas builds a canvas over a fresh frame of the given size.
func NewCanvas(width, height, lineHeight int) *Canvas {
	text := TextStyle{Face: basicfont.Face7x13, Color: image1bit.On}
	return &Canvas{
		frame:      NewFrame(width, height),
		text:       text,
		stroke:     StrokeStyle{Color: image1bit.On, Width: 1},
		lineHeight: lineHeight,
		ink:        image.NewUniform(text.Color),
	}
}

// NewDefaultCanvas uses the panel's portrait layout.
func NewDefaultCanvas() *Canvas {
	return NewCanvas(Width, Height, LineHeight)
}

// Frame returns the underlying bitmap.
func (c *Canvas) Frame() *Frame { return c.frame }

// Width of the drawable area in pixels.
func (c *Canvas) Width() int { return c.frame.Bounds().Dx() }

// Height of the drawable area in pixels.
func (c *Canvas) Height() int { return c.frame.Bounds().Dy() }

// LineHeight is the height of one component slot.
func (c *Canvas) LineHeight() int { return c.lineHeight }

// TextStyle returns the label style.
func (c *Canvas) TextStyle() TextStyle { return c.text }

// Clear blanks the frame.
func (c *Canvas) Clear() { c.frame.Clear() }

// TextWidth is the rendered width of s in pixels.
func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(c.text.Face, s).Ceil()
}

// Fit truncates s so it renders within maxWidth pixels.
func (c *Canvas) Fit(s string, maxWidth int) string {
	r := []rune(s)
	for len(r) > 0 && c.TextWidth(string(r)) > maxWidth {
		r = r[:len(r)-1]
	}
	return string(r)
}

// Text draws s with its top-left corner at p.
func (c *Canvas) Text(p image.Point, s string) {
	ascent := c.text.Face.Metrics().Ascent.Ceil()
	d := font.Drawer{
		Dst:  c.frame.Image(),
		Src:  c.ink,
		Face: c.text.Face,
		Dot:  fixed.P(p.X, p.Y+ascent),
	}
	d.DrawString(s)
}

// TextRight draws s so that it ends at x = right.
func (c *Canvas) TextRight(right int, y int, s string) {
	c.Text(image.Pt(right-c.TextWidth(s), y), s)
}

// Pixel draws a single stroke-wide point.
func (c *Canvas) Pixel(p image.Point) {
	c.FillRect(image.Rect(p.X, p.Y, p.X+c.stroke.Width, p.Y+c.stroke.Width))
}

// HLine draws a horizontal line of length pixels starting at p.
func (c *Canvas) HLine(p image.Point, length int) {
	c.FillRect(image.Rect(p.X, p.Y, p.X+length, p.Y+c.stroke.Width))
}

// VLine draws a vertical line of length pixels starting at p.
func (c *Canvas) VLine(p image.Point, length int) {
	c.FillRect(image.Rect(p.X, p.Y, p.X+c.stroke.Width, p.Y+length))
}

// FillRect lights every pixel in r, clipped to the frame.
func (c *Canvas) FillRect(r image.Rectangle) {
	r = r.Canon().Intersect(c.frame.Bounds())
	on := bool(c.stroke.Color)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.frame.Set(x, y, on)
		}
	}
}

// Bitmap draws rows of MSB-first bits, width pixels each, at p.
func (c *Canvas) Bitmap(p image.Point, rows []byte, width int) {
	for dy, row := range rows {
		for dx := 0; dx < width && dx < 8; dx++ {
			if row&(0x80>>dx) != 0 {
				c.frame.Set(p.X+dx, p.Y+dy, bool(c.stroke.Color))
			}
		}
	}
}
