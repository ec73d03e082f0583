package sysstat

import (
	"errors"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCounters returns successive TimesStat values and a controllable clock.
type fakeCounters struct {
	samples []cpu.TimesStat
	calls   int
	now     time.Time
}

func (f *fakeCounters) times() (cpu.TimesStat, error) {
	if f.calls >= len(f.samples) {
		return cpu.TimesStat{}, errors.New("exhausted")
	}
	s := f.samples[f.calls]
	f.calls++
	return s, nil
}

func newFakeSampler(f *fakeCounters) *CPUSampler {
	return &CPUSampler{times: f.times, now: func() time.Time { return f.now }}
}

func TestCPUSampleCollect(t *testing.T) {
	f := &fakeCounters{
		samples: []cpu.TimesStat{
			{User: 100, System: 50, Idle: 800, Iowait: 50},
			{User: 160, System: 70, Idle: 900, Iowait: 70},
		},
		now: time.Unix(1000, 0),
	}
	s := newFakeSampler(f)

	sample, err := s.Begin()
	require.NoError(t, err)

	f.now = f.now.Add(1500 * time.Millisecond)
	busy, err := sample.Collect()
	require.NoError(t, err)

	// delta total = 200, delta idle+iowait = 120
	assert.InDelta(t, 0.4, busy, 1e-9)
}

func TestCPUSampleTooEarly(t *testing.T) {
	f := &fakeCounters{
		samples: []cpu.TimesStat{{Idle: 1}, {Idle: 2}},
		now:     time.Unix(1000, 0),
	}
	s := newFakeSampler(f)

	sample, err := s.Begin()
	require.NoError(t, err)

	f.now = f.now.Add(999 * time.Millisecond)
	_, err = sample.Collect()
	assert.ErrorIs(t, err, ErrTooEarly)
	assert.Equal(t, 1, f.calls, "counters must not be read before the window elapses")
}

func TestCPUSamplerBeginError(t *testing.T) {
	s := newFakeSampler(&fakeCounters{})
	_, err := s.Begin()
	assert.Error(t, err)
}

func TestBusyFraction(t *testing.T) {
	tests := []struct {
		name string
		a, b cpu.TimesStat
		want float64
	}{
		{"no elapsed jiffies", cpu.TimesStat{Idle: 10}, cpu.TimesStat{Idle: 10}, 0},
		{"fully idle", cpu.TimesStat{Idle: 10}, cpu.TimesStat{Idle: 110}, 0},
		{"fully busy", cpu.TimesStat{User: 10}, cpu.TimesStat{User: 60, System: 50}, 1},
		{"counter reset clamps", cpu.TimesStat{User: 500, Idle: 10}, cpu.TimesStat{User: 10, Idle: 200}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := busyFraction(tt.a, tt.b)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
