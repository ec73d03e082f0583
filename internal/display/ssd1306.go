package display

import (
	"image"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/rileyhilliard/panelstat/internal/errors"
)

// SSD1306 drives a 128x64 SSD1306 panel on a Linux I2C bus.
// The panel is mounted with its top edge on the left, so portrait frames
// are rotated into the native landscape page layout on flush.
type SSD1306 struct {
	busName   string
	bus       i2c.BusCloser
	dev       *ssd1306.Dev
	landscape *image1bit.VerticalLSB
}

// NewSSD1306 prepares a transport for the bus at devicePath, e.g. /dev/i2c-0.
func NewSSD1306(devicePath string) *SSD1306 {
	return &SSD1306{busName: devicePath}
}

func (s *SSD1306) Init() error {
	if _, err := host.Init(); err != nil {
		return errors.Display(err, "Could not initialize host drivers")
	}

	bus, err := i2creg.Open(s.busName)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrDisplay,
			"Could not open I2C bus "+s.busName,
			"Check the device path and that the i2c-dev module is loaded")
	}

	opts := ssd1306.DefaultOpts
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		bus.Close()
		return errors.Display(err, "Could not initialize SSD1306 on "+s.busName)
	}

	s.bus = bus
	s.dev = dev
	s.landscape = image1bit.NewVerticalLSB(dev.Bounds())
	return nil
}

// SetPower turns the panel on or off. The controller wakes on any command
// after Halt, so power-on re-sends the normal (non-inverted) mode.
func (s *SSD1306) SetPower(on bool) error {
	if s.dev == nil {
		return errors.Messagef("display not initialized")
	}
	var err error
	if on {
		err = s.dev.Invert(false)
	} else {
		err = s.dev.Halt()
	}
	if err != nil {
		return errors.Display(err, "Could not set display power")
	}
	return nil
}

func (s *SSD1306) SetBrightness(b Brightness) error {
	if s.dev == nil {
		return errors.Messagef("display not initialized")
	}
	if err := s.dev.SetContrast(b.Contrast()); err != nil {
		return errors.Display(err, "Could not set display contrast")
	}
	return nil
}

func (s *SSD1306) Flush(f *Frame) error {
	if s.dev == nil {
		return errors.Messagef("display not initialized")
	}
	rotateInto(s.landscape, f)
	if err := s.dev.Draw(s.dev.Bounds(), s.landscape, image.Point{}); err != nil {
		return errors.Display(err, "Could not flush frame")
	}
	return nil
}

func (s *SSD1306) Clear() error {
	if s.dev == nil {
		return errors.Messagef("display not initialized")
	}
	clear(s.landscape.Pix)
	if err := s.dev.Draw(s.dev.Bounds(), s.landscape, image.Point{}); err != nil {
		return errors.Display(err, "Could not clear display")
	}
	return nil
}

func (s *SSD1306) Close() error {
	if s.bus == nil {
		return nil
	}
	err := s.bus.Close()
	s.bus = nil
	s.dev = nil
	if err != nil {
		return errors.Display(err, "Could not close I2C bus")
	}
	return nil
}

// rotateInto maps portrait (x, y) to landscape (y, w-1-x).
func rotateInto(dst *image1bit.VerticalLSB, f *Frame) {
	clear(dst.Pix)
	b := f.Bounds()
	w := b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if f.On(x, y) {
				p := image.Pt(y, w-1-x)
				if p.In(dst.Rect) {
					dst.SetBit(p.X, p.Y, image1bit.On)
				}
			}
		}
	}
}
