package display

import (
	"bytes"
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Default portrait layout of a 128x64 panel rotated by 90 degrees.
const (
	Width      = 64
	Height     = 128
	LineHeight = 16
)

// Frame is a monochrome bitmap backed by the SSD1306 page layout.
type Frame struct {
	img *image1bit.VerticalLSB
}

// NewFrame allocates a cleared frame. Height should be a multiple of 8.
func NewFrame(width, height int) *Frame {
	return &Frame{img: image1bit.NewVerticalLSB(image.Rect(0, 0, width, height))}
}

// Bounds returns the frame rectangle.
func (f *Frame) Bounds() image.Rectangle {
	return f.img.Rect
}

// Image exposes the frame as a draw.Image.
func (f *Frame) Image() *image1bit.VerticalLSB {
	return f.img
}

// Clear turns every pixel off.
func (f *Frame) Clear() {
	clear(f.img.Pix)
}

// Set lights or clears one pixel. Points outside the frame are ignored.
func (f *Frame) Set(x, y int, on bool) {
	if !(image.Point{X: x, Y: y}).In(f.img.Rect) {
		return
	}
	f.img.SetBit(x, y, image1bit.Bit(on))
}

// On reports whether the pixel is lit. Points outside the frame are off.
func (f *Frame) On(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(f.img.Rect) {
		return false
	}
	return bool(f.img.BitAt(x, y))
}

// Bytes returns a copy of the raw page buffer.
func (f *Frame) Bytes() []byte {
	return bytes.Clone(f.img.Pix)
}

// Equal reports whether two frames have identical size and pixels.
func (f *Frame) Equal(o *Frame) bool {
	return f.img.Rect == o.img.Rect && bytes.Equal(f.img.Pix, o.img.Pix)
}

// Clone returns an independent copy.
func (f *Frame) Clone() *Frame {
	c := NewFrame(f.img.Rect.Dx(), f.img.Rect.Dy())
	copy(c.img.Pix, f.img.Pix)
	return c
}

// CountOn returns the number of lit pixels inside r.
func (f *Frame) CountOn(r image.Rectangle) int {
	r = r.Intersect(f.img.Rect)
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if f.img.BitAt(x, y) {
				n++
			}
		}
	}
	return n
}
