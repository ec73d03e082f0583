package display

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestFrameSetAndClear(t *testing.T) {
	f := NewFrame(Width, Height)
	assert.Equal(t, image.Rect(0, 0, Width, Height), f.Bounds())

	f.Set(3, 5, true)
	assert.True(t, f.On(3, 5))
	assert.Equal(t, 1, f.CountOn(f.Bounds()))

	// out of range writes and reads are ignored
	f.Set(-1, 0, true)
	f.Set(Width, Height, true)
	assert.False(t, f.On(Width, 0))
	assert.Equal(t, 1, f.CountOn(f.Bounds()))

	f.Clear()
	assert.Equal(t, 0, f.CountOn(f.Bounds()))
}

func TestFrameCloneAndEqual(t *testing.T) {
	f := NewFrame(8, 8)
	f.Set(1, 1, true)

	c := f.Clone()
	assert.True(t, f.Equal(c))

	c.Set(2, 2, true)
	assert.False(t, f.Equal(c))
	assert.False(t, f.On(2, 2), "clone must not share pixels")
}

func TestFrameBytesIsCopy(t *testing.T) {
	f := NewFrame(8, 8)
	b := f.Bytes()
	require.NotEmpty(t, b)
	b[0] = 0xFF
	assert.Equal(t, 0, f.CountOn(f.Bounds()))
}

func TestRotateInto(t *testing.T) {
	f := NewFrame(Width, Height)
	f.Set(0, 0, true)
	f.Set(Width-1, Height-1, true)

	dst := image1bit.NewVerticalLSB(image.Rect(0, 0, Height, Width))
	rotateInto(dst, f)

	assert.Equal(t, image1bit.On, dst.BitAt(0, Width-1))
	assert.Equal(t, image1bit.On, dst.BitAt(Height-1, 0))
	assert.Equal(t, image1bit.Off, dst.BitAt(0, 0))
}
