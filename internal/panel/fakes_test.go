package panel

import (
	"errors"
	"time"

	"github.com/rileyhilliard/panelstat/internal/sysstat"
)

type fakeFS struct {
	stats map[string]sysstat.FSStat
}

func (f *fakeFS) Statfs(path string) (sysstat.FSStat, error) {
	st, ok := f.stats[path]
	if !ok {
		return sysstat.FSStat{}, errors.New("no such file or directory")
	}
	return st, nil
}

type fakeSampler struct{}

func (fakeSampler) Begin() (sysstat.Sample, error) { return fakeSample(0.5), nil }

type fakeSample float64

func (s fakeSample) Collect() (float64, error) { return float64(s), nil }

type fakeMemory struct{}

func (fakeMemory) Memory() (sysstat.MemStat, error) {
	return sysstat.MemStat{Total: 100, Free: 25}, nil
}

type fakeUptime time.Duration

func (u fakeUptime) Uptime() (time.Duration, error) { return time.Duration(u), nil }

type fakeHostname string

func (h fakeHostname) Hostname() (string, error) { return string(h), nil }

// testSources describes a box with /mnt/data mounted at 1000GB with 400GB free.
func testSources() Sources {
	return Sources{
		FS: &fakeFS{stats: map[string]sysstat.FSStat{
			"/mnt": {BlockSize: 1000, ID: sysstat.FSID{Dev: 1}},
			"/mnt/data": {
				Blocks:    1_000_000_000,
				Available: 400_000_000,
				BlockSize: 1000,
				ID:        sysstat.FSID{Dev: 2},
			},
		}},
		CPU:      fakeSampler{},
		Memory:   fakeMemory{},
		Uptime:   fakeUptime(90061 * time.Second),
		Hostname: fakeHostname("box1"),
	}
}
