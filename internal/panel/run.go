package panel

import (
	"context"
	"time"

	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/logger"
	"github.com/rileyhilliard/panelstat/internal/scheduler"
)

// Drawer composes and flushes one frame.
type Drawer interface {
	Draw(items []display.Renderable, tick uint64) error
}

// Loop runs the scheduler and drawer once per wall-clock second.
type Loop struct {
	sched  *scheduler.Scheduler
	drawer Drawer
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
	log    logger.Logger
	frames uint64
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock replaces time.Now for tick computation and pacing.
func WithClock(now func() time.Time) LoopOption {
	return func(l *Loop) { l.now = now }
}

// WithSleep replaces the context-aware sleep between iterations.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) LoopOption {
	return func(l *Loop) { l.sleep = sleep }
}

// WithLogger sets the loop logger.
func WithLogger(log logger.Logger) LoopOption {
	return func(l *Loop) { l.log = log }
}

// NewLoop creates a loop over an already built scheduler and drawer.
func NewLoop(sched *scheduler.Scheduler, drawer Drawer, opts ...LoopOption) *Loop {
	l := &Loop{
		sched:  sched,
		drawer: drawer,
		now:    time.Now,
		sleep:  sleepContext,
		log:    logger.NewEnvLogger("[panel]"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Frames returns how many frames were flushed.
func (l *Loop) Frames() uint64 { return l.frames }

// Run updates every component once, then steps and redraws each second until
// ctx is cancelled. A flush failure ends the loop with that error.
func (l *Loop) Run(ctx context.Context) error {
	l.Start()
	for {
		if err := l.Tick(); err != nil {
			return err
		}
		if err := l.sleep(ctx, UntilNextSecond(l.now())); err != nil {
			l.log.Info("stopping after %d frames", l.frames)
			return nil
		}
	}
}

// Start runs the initial update pass over every component.
func (l *Loop) Start() {
	if failed := l.sched.UpdateAll(); failed > 0 {
		l.log.Warn("%d of %d components failed their first update", failed, l.sched.Len())
	}
	l.log.Info("running with %d components", l.sched.Len())
}

// Tick runs one scheduler step and draws one frame.
func (l *Loop) Tick() error {
	tick := uint64(l.now().Unix())
	l.sched.Step()
	if err := l.drawer.Draw(l.sched.Renderables(), tick); err != nil {
		return err
	}
	l.frames++
	return nil
}

// UntilNextSecond is the time left in the current wall-clock second.
func UntilNextSecond(now time.Time) time.Duration {
	return now.Truncate(time.Second).Add(time.Second).Sub(now)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
