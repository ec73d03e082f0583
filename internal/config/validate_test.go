package config

import (
	"testing"

	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "mount folder only",
			mutate: func(c *Config) { c.MountFolder = "/srv/disks" },
		},
		{
			name:   "explicit disks",
			mutate: func(c *Config) { c.Disks = []string{"/mnt/a", "/mnt/b"} },
		},
		{
			name: "unknown brightness",
			mutate: func(c *Config) {
				c.MountFolder = "/srv/disks"
				c.Brightness = "blinding"
			},
			wantErr: "blinding",
		},
		{
			name: "unknown units",
			mutate: func(c *Config) {
				c.MountFolder = "/srv/disks"
				c.Units = "imperial"
			},
			wantErr: "imperial",
		},
		{
			name: "names under mount folder",
			mutate: func(c *Config) {
				c.MountFolder = "/data/chunks"
				c.Disks = []string{"disk-1", "disk-2"}
			},
		},
		{
			name:    "relative disk without mount folder",
			mutate:  func(c *Config) { c.Disks = []string{"disk-1"} },
			wantErr: "not an absolute path",
		},
		{
			name: "name and path naming the same disk",
			mutate: func(c *Config) {
				c.MountFolder = "/data/chunks"
				c.Disks = []string{"disk-1", "/data/chunks/disk-1"}
			},
			wantErr: "listed twice",
		},
		{
			name:    "no disk source",
			mutate:  func(c *Config) {},
			wantErr: "No disks configured",
		},
		{
			name:    "duplicate disk",
			mutate:  func(c *Config) { c.Disks = []string{"/mnt/a", "/mnt/a/"} },
			wantErr: "listed twice",
		},
		{
			name:    "blank disk",
			mutate:  func(c *Config) { c.Disks = []string{" "} },
			wantErr: "Empty entry",
		},
		{
			name: "no device",
			mutate: func(c *Config) {
				c.MountFolder = "/srv/disks"
				c.Device = ""
			},
			wantErr: "No display device",
		},
		{
			name: "future version",
			mutate: func(c *Config) {
				c.MountFolder = "/srv/disks"
				c.Version = CurrentConfigVersion + 1
			},
			wantErr: "from the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestDiskPath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "/mnt/a", cfg.DiskPath("/mnt/a/"))

	cfg.MountFolder = "/data/chunks"
	assert.Equal(t, "/data/chunks/a", cfg.DiskPath("a"))
	assert.Equal(t, "/mnt/b", cfg.DiskPath("/mnt/b"))
}
