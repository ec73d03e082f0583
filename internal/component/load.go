package component

import (
	stderrors "errors"
	"image"
	"time"

	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/rileyhilliard/panelstat/internal/sysstat"
)

const (
	loadCollectInterval = time.Second
	loadSampleInterval  = 60 * time.Second
)

// Load graphs CPU busy fraction. Each point takes two updates: one to begin a
// sample, one about a second later to collect it.
type Load struct {
	sampler CPUSampler
	sample  sysstat.Sample
	history *History
}

// NewLoad creates a load graph holding width samples.
func NewLoad(sampler CPUSampler, width int) *Load {
	return &Load{sampler: sampler, history: NewHistory(width)}
}

func (l *Load) Name() string { return "Load" }

// History exposes the stored samples.
func (l *Load) History() *History { return l.history }

// Sampling reports whether a sample is in flight.
func (l *Load) Sampling() bool { return l.sample != nil }

func (l *Load) ShouldUpdate(sinceLast time.Duration) bool {
	if l.sample != nil {
		return sinceLast >= loadCollectInterval
	}
	return sinceLast >= loadSampleInterval
}

func (l *Load) Update() error {
	if l.sample == nil {
		return l.begin()
	}
	return l.collect()
}

func (l *Load) begin() error {
	s, err := l.sampler.Begin()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrIO, "could not start load measurement", "")
	}
	l.sample = s
	return nil
}

func (l *Load) collect() error {
	if l.sample == nil {
		return errors.Messagef("no measurement active to collect")
	}
	v, err := l.sample.Collect()
	if err != nil {
		// a premature collect keeps the sample for the next pass
		if !stderrors.Is(err, sysstat.ErrTooEarly) {
			l.sample = nil
		}
		return err
	}
	l.sample = nil
	l.history.Push(v)
	return nil
}

func (l *Load) Render(c *display.Canvas, offset image.Point, _ uint64) error {
	renderSparkline(c, offset, l.history)
	return nil
}
