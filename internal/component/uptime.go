package component

import (
	"fmt"
	"image"
	"time"

	"github.com/rileyhilliard/panelstat/internal/display"
)

const uptimeInterval = 15 * time.Second

// Uptime shows time since boot as days, hours and minutes.
type Uptime struct {
	source UptimeReader
	label  string
}

// NewUptime creates an uptime component reading from source.
func NewUptime(source UptimeReader) *Uptime {
	return &Uptime{source: source}
}

func (u *Uptime) Name() string { return "Uptime" }

// Label returns the last formatted uptime, empty before the first update.
func (u *Uptime) Label() string { return u.label }

func (u *Uptime) ShouldUpdate(sinceLast time.Duration) bool {
	return sinceLast >= uptimeInterval
}

func (u *Uptime) Update() error {
	d, err := u.source.Uptime()
	if err != nil {
		return err
	}
	u.label = FormatUptime(d)
	return nil
}

func (u *Uptime) Render(c *display.Canvas, offset image.Point, _ uint64) error {
	text := u.label
	if text == "" {
		text = placeholder
	}
	c.Text(offset, c.Fit(text, c.Width()))
	return nil
}

// FormatUptime renders d as e.g. "1d01h01m".
func FormatUptime(d time.Duration) string {
	secs := uint64(d / time.Second)
	return fmt.Sprintf("%dd%02dh%02dm",
		secs/(60*60*24),
		secs/(60*60)%24,
		secs/60%60,
	)
}
