package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/panelstat/internal/config"
	"github.com/rileyhilliard/panelstat/internal/errors"
)

func TestInitNonInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	var out bytes.Buffer
	err := Init(InitOptions{
		Path:           path,
		MountFolder:    "/mnt",
		Disks:          []string{"data", "/srv/backup"},
		Brightness:     "dim",
		Load:           true,
		NonInteractive: true,
	}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Created "+path)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDevice, cfg.Device)
	assert.Equal(t, "/mnt", cfg.MountFolder)
	assert.Equal(t, []string{"data", "/srv/backup"}, cfg.Disks)
	assert.Equal(t, "dim", cfg.Brightness)
	assert.Equal(t, config.DefaultUnits, cfg.Units)
	assert.True(t, cfg.Load)
	assert.False(t, cfg.Memory)
}

func TestInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o644))

	opts := InitOptions{Path: path, MountFolder: "/mnt", NonInteractive: true}

	err := Init(opts, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	data, _ := os.ReadFile(path)
	assert.Equal(t, "# mine\n", string(data), "existing file is untouched")

	opts.Overwrite = true
	require.NoError(t, Init(opts, &bytes.Buffer{}))
	data, _ = os.ReadFile(path)
	assert.Contains(t, string(data), "mount_folder: /mnt")
}

func TestInitValidatesBeforeWriting(t *testing.T) {
	tests := []struct {
		name string
		opts InitOptions
	}{
		{
			name: "no disk source",
			opts: InitOptions{},
		},
		{
			name: "relative disk without mount folder",
			opts: InitOptions{Disks: []string{"data"}},
		},
		{
			name: "bad brightness",
			opts: InitOptions{MountFolder: "/mnt", Brightness: "blinding"},
		},
		{
			name: "bad units",
			opts: InitOptions{MountFolder: "/mnt", Units: "octal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.ConfigFileName)
			tt.opts.Path = path
			tt.opts.NonInteractive = true

			err := Init(tt.opts, &bytes.Buffer{})
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.NoFileExists(t, path)
		})
	}
}

func TestConfigFromOptionsKeepsDefaults(t *testing.T) {
	cfg := configFromOptions(InitOptions{})
	assert.Equal(t, config.DefaultConfig(), cfg)
}
