// Package units formats byte counts into short, glanceable labels such as "6TB".
package units

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/panelstat/internal/errors"
)

// Base selects the numeral base used for magnitude steps.
type Base int

const (
	// Metric steps by 1000 (K, M, G, ...). Disk vendors label capacity this way.
	Metric Base = iota
	// Binary steps by 1024 (Ki, Mi, Gi, ...).
	Binary
)

var binaryPrefixes = [...]string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"}

var metricPrefixes = [...]string{"", "K", "M", "G", "T", "P", "E", "Z", "Y"}

// MaxMagnitude is the index of the largest defined prefix.
const MaxMagnitude = len(metricPrefixes) - 1

func (b Base) divisor() uint64 {
	if b == Binary {
		return 1024
	}
	return 1000
}

func (b Base) prefix(magnitude int) string {
	if b == Binary {
		return binaryPrefixes[magnitude]
	}
	return metricPrefixes[magnitude]
}

// String returns the configuration name of the base.
func (b Base) String() string {
	if b == Binary {
		return "binary"
	}
	return "metric"
}

// ParseBase parses "metric" or "binary".
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "si", "10":
		return Metric, nil
	case "binary", "iec", "2":
		return Binary, nil
	}
	return Metric, errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown unit base '%s'", s),
		"Use 'metric' (1000) or 'binary' (1024).")
}

// Size is an immutable magnitude label: a small integer plus its unit.
type Size struct {
	Value uint64
	Unit  string
}

// NewSize reduces bytes to the largest magnitude whose value stays below the base.
// The remainder rounds up once the leftover of the last division passes 90% of the base.
func NewSize(bytes uint64, base Base) Size {
	if bytes == 0 {
		return Size{Value: 0, Unit: "B"}
	}

	n := base.divisor()
	value := bytes
	var previous uint64
	magnitude := 0

	for value >= n && magnitude < MaxMagnitude {
		previous = value
		value /= n
		magnitude++
	}

	if magnitude > 0 && previous-value*n > n*9/10 {
		value++
		if value >= n && magnitude < MaxMagnitude {
			value /= n
			magnitude++
		}
	}

	return Size{Value: value, Unit: base.prefix(magnitude) + "B"}
}

// String renders the label, e.g. "4KiB".
func (s Size) String() string {
	return fmt.Sprintf("%d%s", s.Value, s.Unit)
}

// Format is shorthand for NewSize(bytes, base).String().
func Format(bytes uint64, base Base) string {
	return NewSize(bytes, base).String()
}
