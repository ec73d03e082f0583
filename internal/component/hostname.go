package component

import (
	"image"
	"time"

	"github.com/rileyhilliard/panelstat/internal/display"
)

// Hostname shows the machine name. It is resolved once and then never refreshed.
type Hostname struct {
	source HostnameReader
	name   string
}

// NewHostname resolves the name lazily from source.
func NewHostname(source HostnameReader) *Hostname {
	return &Hostname{source: source}
}

// NewStaticHostname shows a fixed name and never queries the system.
func NewStaticHostname(name string) *Hostname {
	return &Hostname{name: name}
}

func (h *Hostname) Name() string { return "Hostname" }

// Value returns the cached hostname, empty until resolved.
func (h *Hostname) Value() string { return h.name }

func (h *Hostname) ShouldUpdate(time.Duration) bool {
	return h.name == ""
}

func (h *Hostname) Update() error {
	if h.source == nil {
		return nil
	}
	name, err := h.source.Hostname()
	if err != nil {
		return err
	}
	h.name = name
	return nil
}

func (h *Hostname) Render(c *display.Canvas, offset image.Point, _ uint64) error {
	text := h.name
	if text == "" {
		text = placeholder
	}
	c.Text(offset, c.Fit(text, c.Width()))
	return nil
}
