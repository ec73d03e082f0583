package display

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/panelstat/internal/errors"
)

// Brightness is one of five panel contrast presets.
type Brightness int

const (
	Dimmest Brightness = iota
	Dim
	Normal
	Bright
	Brightest
)

var brightnessNames = []string{"dimmest", "dim", "normal", "bright", "brightest"}

var brightnessContrast = []byte{0x00, 0x2F, 0x5F, 0x9F, 0xFF}

// BrightnessNames lists accepted values, dimmest first.
func BrightnessNames() []string {
	return append([]string(nil), brightnessNames...)
}

// ParseBrightness maps a configuration string to a preset.
func ParseBrightness(s string) (Brightness, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, name := range brightnessNames {
		if name == want {
			return Brightness(i), nil
		}
	}
	return Normal, errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown brightness '%s'", s),
		"Use one of: "+strings.Join(brightnessNames, ", "))
}

func (b Brightness) String() string {
	if b < Dimmest || b > Brightest {
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
	return brightnessNames[b]
}

// Contrast is the SSD1306 contrast register value for the preset.
func (b Brightness) Contrast() byte {
	if b < Dimmest || b > Brightest {
		return brightnessContrast[Normal]
	}
	return brightnessContrast[b]
}
