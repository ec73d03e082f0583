package sysstat

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/rileyhilliard/panelstat/internal/errors"
)

// MinSampleWindow is the shortest interval a CPU sample may cover.
const MinSampleWindow = time.Second

// ErrTooEarly is returned by Collect before MinSampleWindow has elapsed.
var ErrTooEarly = errors.New(errors.ErrMessage, "load sample collected too early", "")

// Sample is an in-flight CPU measurement.
type Sample interface {
	Collect() (float64, error)
}

// CPUSampler starts two-phase CPU busy measurements.
type CPUSampler struct {
	times func() (cpu.TimesStat, error)
	now   func() time.Time
}

// NewCPUSampler returns a sampler over the aggregate /proc/stat counters.
func NewCPUSampler() *CPUSampler {
	return &CPUSampler{times: totalTimes, now: time.Now}
}

func totalTimes() (cpu.TimesStat, error) {
	all, err := cpu.Times(false)
	if err != nil {
		return cpu.TimesStat{}, errors.Wrap(err, "Could not read CPU times")
	}
	if len(all) == 0 {
		return cpu.TimesStat{}, errors.Messagef("no aggregate CPU times reported")
	}
	return all[0], nil
}

// Begin snapshots the counters. Call Collect on the result after at least one second.
func (s *CPUSampler) Begin() (Sample, error) {
	start, err := s.times()
	if err != nil {
		return nil, err
	}
	return &cpuSample{sampler: s, start: start, at: s.now()}, nil
}

type cpuSample struct {
	sampler *CPUSampler
	start   cpu.TimesStat
	at      time.Time
}

// Collect returns the busy fraction over the window since Begin.
func (c *cpuSample) Collect() (float64, error) {
	if c.sampler.now().Sub(c.at) < MinSampleWindow {
		return 0, ErrTooEarly
	}
	end, err := c.sampler.times()
	if err != nil {
		return 0, err
	}
	return busyFraction(c.start, end), nil
}

func busyFraction(a, b cpu.TimesStat) float64 {
	total := sumTimes(b) - sumTimes(a)
	if total <= 0 {
		return 0
	}
	idle := (b.Idle + b.Iowait) - (a.Idle + a.Iowait)
	return clamp01(1 - idle/total)
}

// sumTimes adds the jiffy buckets. Guest time is already folded into user on Linux.
func sumTimes(t cpu.TimesStat) float64 {
	return t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
