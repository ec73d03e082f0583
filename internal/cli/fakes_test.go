package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/rileyhilliard/panelstat/internal/panel"
	"github.com/rileyhilliard/panelstat/internal/sysstat"
)

type fakeFS map[string]sysstat.FSStat

func (f fakeFS) Statfs(path string) (sysstat.FSStat, error) {
	st, ok := f[path]
	if !ok {
		return sysstat.FSStat{}, errors.New("no such file or directory")
	}
	return st, nil
}

type fakeSample struct{}

func (fakeSample) Collect() (float64, error) { return 0.25, nil }

type fakeSampler struct{}

func (fakeSampler) Begin() (sysstat.Sample, error) { return fakeSample{}, nil }

type fakeMemory struct{}

func (fakeMemory) Memory() (sysstat.MemStat, error) {
	return sysstat.MemStat{Total: 100, Free: 50}, nil
}

type fakeUptime struct{}

func (fakeUptime) Uptime() (time.Duration, error) { return 3 * time.Hour, nil }

type fakeHostname struct{}

func (fakeHostname) Hostname() (string, error) { return "nas", nil }

// testSources has /mnt/data mounted with 1TB, 600GB of it free, and
// /mnt/empty as a plain directory on the root filesystem.
func testSources() panel.Sources {
	return panel.Sources{
		FS: fakeFS{
			"/mnt":       {BlockSize: 1000, ID: sysstat.FSID{Dev: 1}},
			"/mnt/empty": {BlockSize: 1000, ID: sysstat.FSID{Dev: 1}},
			"/mnt/data": {
				Blocks:    1_000_000_000,
				Available: 600_000_000,
				BlockSize: 1000,
				ID:        sysstat.FSID{Dev: 2},
			},
		},
		CPU:      fakeSampler{},
		Memory:   fakeMemory{},
		Uptime:   fakeUptime{},
		Hostname: fakeHostname{},
	}
}

// withConfigFile points --config at path for the duration of the test.
func withConfigFile(t *testing.T, path string) {
	t.Helper()
	orig := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = orig })
}
