// Package scheduler decides which components are due on each pass of the
// main loop and runs their updates in list order.
package scheduler

import (
	"time"

	"github.com/rileyhilliard/panelstat/internal/component"
	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/rileyhilliard/panelstat/internal/logger"
)

type entry struct {
	component  component.Component
	lastUpdate time.Time
}

// Scheduler tracks the last update time of every component. Entries are
// never added or removed after construction.
type Scheduler struct {
	entries []entry
	now     func() time.Time
	log     logger.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithLogger sets where update failures are reported.
func WithLogger(l logger.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// New creates a scheduler over components, which are kept in render order.
func New(components []component.Component, opts ...Option) *Scheduler {
	s := &Scheduler{
		now: time.Now,
		log: logger.NewEnvLogger("[scheduler]"),
	}
	for _, opt := range opts {
		opt(s)
	}

	start := s.now()
	s.entries = make([]entry, len(components))
	for i, c := range components {
		s.entries[i] = entry{component: c, lastUpdate: start}
	}
	return s
}

// Len returns the number of components.
func (s *Scheduler) Len() int { return len(s.entries) }

// LastUpdate returns when component i was last updated.
func (s *Scheduler) LastUpdate(i int) time.Time {
	return s.entries[i].lastUpdate
}

// Components returns the components in render order.
func (s *Scheduler) Components() []component.Component {
	out := make([]component.Component, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.component
	}
	return out
}

// Renderables returns the components as drawer items.
func (s *Scheduler) Renderables() []display.Renderable {
	out := make([]display.Renderable, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.component
	}
	return out
}

// UpdateAll updates every component once regardless of cadence.
// It returns how many updates failed.
func (s *Scheduler) UpdateAll() int {
	failed := 0
	for i := range s.entries {
		if !s.update(i) {
			failed++
		}
	}
	return failed
}

// Step updates every component whose cadence says it is due and returns
// how many were updated.
func (s *Scheduler) Step() int {
	updated := 0
	for i := range s.entries {
		e := &s.entries[i]
		since := s.now().Sub(e.lastUpdate)
		if since < 0 {
			since = 0
		}
		if !e.component.ShouldUpdate(since) {
			continue
		}
		s.update(i)
		updated++
	}
	return updated
}

// update runs one component and stamps its time even on failure, so a
// broken source is retried at its normal cadence rather than every pass.
func (s *Scheduler) update(i int) bool {
	e := &s.entries[i]
	err := e.component.Update()
	e.lastUpdate = s.now()
	if err != nil {
		s.log.Warn("update %s: %s", e.component.Name(), errors.OneLine(err))
		return false
	}
	s.log.Debug("updated %s", e.component.Name())
	return true
}
