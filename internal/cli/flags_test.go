package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/panelstat/internal/config"
	"github.com/rileyhilliard/panelstat/internal/errors"
)

func parsedPanelFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddPanelFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".panelstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, `
device: /dev/i2c-1
disks:
  - /mnt/a
brightness: dim
load: true
`)
	withConfigFile(t, path)

	tests := []struct {
		name  string
		args  []string
		env   map[string]string
		check func(t *testing.T, device string, disks []string, brightness string, load bool)
	}{
		{
			name: "file only",
			check: func(t *testing.T, device string, disks []string, brightness string, load bool) {
				assert.Equal(t, "/dev/i2c-1", device)
				assert.Equal(t, []string{"/mnt/a"}, disks)
				assert.Equal(t, "dim", brightness)
				assert.True(t, load)
			},
		},
		{
			name: "flags override file",
			args: []string{"--disk", "/mnt/b", "--disk", "/mnt/c", "--brightness", "bright", "--load=false"},
			check: func(t *testing.T, device string, disks []string, brightness string, load bool) {
				assert.Equal(t, "/dev/i2c-1", device)
				assert.Equal(t, []string{"/mnt/b", "/mnt/c"}, disks)
				assert.Equal(t, "bright", brightness)
				assert.False(t, load)
			},
		},
		{
			name: "environment overrides file",
			env:  map[string]string{"PANELSTAT_DEVICE": "/dev/i2c-7"},
			check: func(t *testing.T, device string, disks []string, brightness string, load bool) {
				assert.Equal(t, "/dev/i2c-7", device)
			},
		},
		{
			name: "flag beats environment",
			args: []string{"--device", "/dev/i2c-3"},
			env:  map[string]string{"PANELSTAT_DEVICE": "/dev/i2c-7"},
			check: func(t *testing.T, device string, disks []string, brightness string, load bool) {
				assert.Equal(t, "/dev/i2c-3", device)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, gotPath, err := loadConfig(parsedPanelFlags(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, path, gotPath)
			tt.check(t, cfg.Device, cfg.Disks, cfg.Brightness, cfg.Load)
		})
	}
}

func TestLoadConfigValidates(t *testing.T) {
	withConfigFile(t, writeConfig(t, "disks: [/mnt/a]\n"))

	cfg, _, err := loadConfig(parsedPanelFlags(t, "--brightness", "blinding"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.NotNil(t, cfg, "the parsed config is returned alongside validation errors")
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	withConfigFile(t, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, _, err := loadConfig(parsedPanelFlags(t))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestBindPanelFlagsPartialSet(t *testing.T) {
	fs := pflag.NewFlagSet("partial", pflag.ContinueOnError)
	fs.String("device", "", "")
	require.NoError(t, fs.Parse([]string{"--device", "/dev/i2c-9"}))

	v := config.NewViper()
	require.NoError(t, BindPanelFlags(v, fs))

	assert.Equal(t, "/dev/i2c-9", v.GetString("device"))
	assert.Equal(t, config.DefaultBrightness, v.GetString("brightness"), "unbound keys keep their defaults")
}
