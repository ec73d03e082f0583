package component

import (
	"errors"
	"time"

	"github.com/rileyhilliard/panelstat/internal/sysstat"
)

// fakeFS serves canned statfs results per path.
type fakeFS struct {
	stats map[string]sysstat.FSStat
	errs  map[string]error
	calls []string
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		stats: make(map[string]sysstat.FSStat),
		errs:  make(map[string]error),
	}
}

func (f *fakeFS) Statfs(path string) (sysstat.FSStat, error) {
	f.calls = append(f.calls, path)
	if err, ok := f.errs[path]; ok {
		return sysstat.FSStat{}, err
	}
	st, ok := f.stats[path]
	if !ok {
		return sysstat.FSStat{}, errors.New("no such file or directory")
	}
	return st, nil
}

// mount places path on its own filesystem with the given capacity in bytes.
func (f *fakeFS) mount(path string, dev uint64, size, avail uint64) {
	f.stats[path] = sysstat.FSStat{
		Blocks:    size / 1000,
		Available: avail / 1000,
		BlockSize: 1000,
		ID:        sysstat.FSID{Dev: dev},
	}
}

type fakeSample struct {
	value float64
	err   error
}

func (s *fakeSample) Collect() (float64, error) {
	return s.value, s.err
}

type fakeSampler struct {
	next  []*fakeSample
	err   error
	begun int
}

func (s *fakeSampler) Begin() (sysstat.Sample, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.begun++
	if len(s.next) == 0 {
		return &fakeSample{}, nil
	}
	sample := s.next[0]
	s.next = s.next[1:]
	return sample, nil
}

type fakeMemory struct {
	stat sysstat.MemStat
	err  error
}

func (m *fakeMemory) Memory() (sysstat.MemStat, error) { return m.stat, m.err }

type fakeUptime struct {
	d   time.Duration
	err error
}

func (u *fakeUptime) Uptime() (time.Duration, error) { return u.d, u.err }

type fakeHostname struct {
	name  string
	err   error
	calls int
}

func (h *fakeHostname) Hostname() (string, error) {
	h.calls++
	return h.name, h.err
}
