// Package component implements the status units shown on the panel.
//
// Every unit follows the same contract: a pure cadence predicate, an Update
// that refreshes cached state from its source, and a Render that draws the
// cached state (or a placeholder) without touching it. A failed Update keeps
// whatever was cached before, so the panel shows stale data rather than none.
package component

import (
	"image"
	"time"

	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/sysstat"
)

// Component is one status unit. Insertion order in the list is render order.
type Component interface {
	// Name labels the component in logs.
	Name() string
	// ShouldUpdate reports whether Update is due given the time since the last one.
	ShouldUpdate(sinceLast time.Duration) bool
	// Update refreshes cached state. On error the previous state is retained.
	Update() error
	// Render draws cached state at offset. It never mutates the component.
	Render(c *display.Canvas, offset image.Point, tick uint64) error
}

// StatFS reports capacity and identity of the filesystem holding a path.
type StatFS interface {
	Statfs(path string) (sysstat.FSStat, error)
}

// CPUSampler begins two-phase CPU load samples.
type CPUSampler interface {
	Begin() (sysstat.Sample, error)
}

// MemoryReader reads physical memory totals.
type MemoryReader interface {
	Memory() (sysstat.MemStat, error)
}

// UptimeReader reads time since boot.
type UptimeReader interface {
	Uptime() (time.Duration, error)
}

// HostnameReader resolves the hostname.
type HostnameReader interface {
	Hostname() (string, error)
}

// placeholder is drawn by text components that have nothing cached yet.
const placeholder = "-"
