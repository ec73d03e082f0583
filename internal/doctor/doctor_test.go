package doctor

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/rileyhilliard/panelstat/internal/config"
	"github.com/rileyhilliard/panelstat/internal/sysstat"
	"github.com/rileyhilliard/panelstat/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigChecks(t *testing.T) {
	valid := config.DefaultConfig()
	valid.MountFolder = "/srv/disks"

	invalid := config.DefaultConfig()
	invalid.MountFolder = "/srv/disks"
	invalid.Brightness = "blinding"

	tests := []struct {
		name    string
		path    string
		cfg     *config.Config
		err     error
		file    CheckStatus
		valid   CheckStatus
		suggest bool
	}{
		{"file and valid", "/etc/panelstat.yaml", valid, nil, StatusPass, StatusPass, false},
		{"no file", "", valid, nil, StatusWarn, StatusPass, false},
		{"invalid value", "/etc/panelstat.yaml", invalid, nil, StatusPass, StatusFail, true},
		{"load error", "/etc/panelstat.yaml", nil, errors.New("yaml: line 2"), StatusPass, StatusFail, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := RunAll(NewConfigChecks(tt.path, tt.cfg, tt.err))
			require.Len(t, results, 2)
			assert.Equal(t, tt.file, results[0].Status)
			assert.Equal(t, tt.valid, results[1].Status)
			assert.Equal(t, tt.suggest, results[1].Suggestion != "")
		})
	}
}

type fakeInfo struct {
	os.FileInfo
	mode fs.FileMode
}

func (f fakeInfo) Mode() fs.FileMode { return f.mode }

func TestDeviceCheck(t *testing.T) {
	charDev := fakeInfo{mode: fs.ModeDevice | fs.ModeCharDevice | 0o660}
	regular := fakeInfo{mode: 0o644}

	tests := []struct {
		name      string
		info      os.FileInfo
		statErr   error
		accessErr error
		want      CheckStatus
		contains  string
	}{
		{"accessible", charDev, nil, nil, StatusPass, "accessible"},
		{"missing", nil, os.ErrNotExist, nil, StatusFail, "not found"},
		{"regular file", regular, nil, nil, StatusFail, "not a character device"},
		{"no permission", charDev, nil, os.ErrPermission, StatusFail, "No read/write access"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &DeviceCheck{
				Path:   "/dev/i2c-1",
				stat:   func(string) (os.FileInfo, error) { return tt.info, tt.statErr },
				access: func(string, uint32) error { return tt.accessErr },
			}
			r := c.Run()
			assert.Equal(t, tt.want, r.Status)
			assert.Contains(t, r.Message, tt.contains)
		})
	}
}

func TestDeviceLockCheck(t *testing.T) {
	free := &DeviceLockCheck{Path: "/dev/i2c-1", holder: func() string { return "" }}
	r := free.Run()
	assert.Equal(t, StatusPass, r.Status)

	held := &DeviceLockCheck{Path: "/dev/i2c-1", holder: func() string { return "pid 42 on nas, running 3m0s" }}
	r = held.Run()
	assert.Equal(t, StatusWarn, r.Status)
	assert.Contains(t, r.Message, "in use by pid 42")
	assert.NotEmpty(t, r.Suggestion)
}

type fakeFS map[string]sysstat.FSStat

func (f fakeFS) Statfs(path string) (sysstat.FSStat, error) {
	st, ok := f[path]
	if !ok {
		return sysstat.FSStat{}, errors.New("no such file or directory")
	}
	return st, nil
}

func TestDiskChecks(t *testing.T) {
	fs := fakeFS{
		"/mnt":       {ID: sysstat.FSID{Dev: 1}},
		"/mnt/data":  {Blocks: 1000, Available: 400, BlockSize: 1_000_000_000, ID: sysstat.FSID{Dev: 2}},
		"/mnt/empty": {ID: sysstat.FSID{Dev: 1}},
	}

	results := RunAll(NewDiskChecks([]string{"/mnt/data", "/mnt/empty", "/mnt/gone"}, nil, fs, units.Metric))
	require.Len(t, results, 4)

	assert.Equal(t, StatusPass, results[0].Status)
	assert.Contains(t, results[0].Message, "3 disks")

	assert.Equal(t, StatusPass, results[1].Status)
	assert.Contains(t, results[1].Message, "1TB (40% free)")

	assert.Equal(t, StatusWarn, results[2].Status)
	assert.Contains(t, results[2].Message, "not mounted")

	assert.Equal(t, StatusFail, results[3].Status)
}

func TestDiskListCheck(t *testing.T) {
	assert.Equal(t, StatusFail, (&DiskListCheck{Err: errors.New("denied")}).Run().Status)
	assert.Equal(t, StatusWarn, (&DiskListCheck{}).Run().Status)
	assert.Contains(t, (&DiskListCheck{Paths: []string{"/a"}}).Run().Message, "1 disk configured")
}

type stubHost struct{ err error }

func (s stubHost) Hostname() (string, error) { return "box1", s.err }

type stubUptime struct{}

func (stubUptime) Uptime() (time.Duration, error) { return 90061 * time.Second, nil }

type stubMemory struct{}

func (stubMemory) Memory() (sysstat.MemStat, error) {
	return sysstat.MemStat{Total: 100, Free: 25}, nil
}

type stubCPU struct{ err error }

func (s stubCPU) Begin() (sysstat.Sample, error) { return nil, s.err }

func TestSourceChecks(t *testing.T) {
	results := RunAll(NewSourceChecks(stubHost{}, stubUptime{}, stubMemory{}, stubCPU{}))
	require.Len(t, results, 4)

	assert.Equal(t, "Hostname: box1", results[0].Message)
	assert.Equal(t, "Uptime: 1d01h01m", results[1].Message)
	assert.Equal(t, "Memory: 75% used", results[2].Message)
	assert.Equal(t, StatusPass, results[3].Status)

	failing := RunAll(NewSourceChecks(stubHost{err: errors.New("no name")}, stubUptime{}, stubMemory{},
		stubCPU{err: errors.New("no /proc/stat")}))
	assert.Equal(t, StatusFail, failing[0].Status)
	assert.Equal(t, StatusFail, failing[3].Status)
}
