package display

import (
	"image"
	"sync"

	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/rileyhilliard/panelstat/internal/logger"
)

// Renderable is anything the drawer can stack into a slot.
type Renderable interface {
	Name() string
	Render(c *Canvas, offset image.Point, tick uint64) error
}

// BurnInOffset cycles x with a 17-tick period and y with an 11-tick period,
// each through 0..4, so the stack drifts over a 5x5 pixel neighbourhood.
func BurnInOffset(tick uint64) image.Point {
	return image.Pt(int(tick/17%5), int(tick/11%5))
}

// MaxBurnIn is the largest offset BurnInOffset returns on either axis.
var MaxBurnIn = image.Pt(4, 4)

// Drawer owns the canvas and the transport.
type Drawer struct {
	transport  Transport
	canvas     *Canvas
	brightness Brightness
	log        logger.Logger

	closeOnce sync.Once
	closeErr  error
}

// DrawerOption configures a Drawer.
type DrawerOption func(*Drawer)

// WithBrightness sets the preset applied during NewDrawer.
func WithBrightness(b Brightness) DrawerOption {
	return func(d *Drawer) { d.brightness = b }
}

// WithLogger sets the logger used for per-component render failures.
func WithLogger(l logger.Logger) DrawerOption {
	return func(d *Drawer) { d.log = l }
}

// WithCanvas replaces the default portrait canvas.
func WithCanvas(c *Canvas) DrawerOption {
	return func(d *Drawer) { d.canvas = c }
}

// NewDrawer initializes the transport, powers it on and applies brightness.
// If any step fails the transport is closed before returning.
func NewDrawer(t Transport, opts ...DrawerOption) (*Drawer, error) {
	d := &Drawer{
		transport:  t,
		brightness: Normal,
		log:        logger.NewEnvLogger("[drawer]"),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.canvas == nil {
		d.canvas = NewDefaultCanvas()
	}

	if err := t.Init(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrDisplay,
			"Could not access display", "Check the device path and bus permissions")
	}
	if err := t.SetPower(true); err != nil {
		t.Close()
		return nil, err
	}
	if err := t.SetBrightness(d.brightness); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// Canvas returns the drawing surface.
func (d *Drawer) Canvas() *Canvas {
	return d.canvas
}

// Draw composes one frame and flushes it. A failing item is logged and
// skipped; only a flush failure is returned.
func (d *Drawer) Draw(items []Renderable, tick uint64) error {
	burnIn := BurnInOffset(tick)
	d.canvas.Clear()

	for i, item := range items {
		offset := burnIn.Add(image.Pt(0, i*d.canvas.LineHeight()))
		if err := item.Render(d.canvas, offset, tick); err != nil {
			d.log.Warn("render %s: %s", item.Name(), errors.OneLine(err))
		}
	}

	if err := d.transport.Flush(d.canvas.Frame()); err != nil {
		return errors.Display(err, "Could not flush frame")
	}
	return nil
}

// Close powers the display off and then releases the transport.
// It is safe to call more than once.
func (d *Drawer) Close() error {
	d.closeOnce.Do(func() {
		powerErr := d.transport.SetPower(false)
		closeErr := d.transport.Close()
		if powerErr != nil {
			d.closeErr = powerErr
		} else {
			d.closeErr = closeErr
		}
	})
	return d.closeErr
}
