package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/panelstat/internal/config"
)

func TestAddDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, Init(InitOptions{
		Path:           path,
		Disks:          []string{"/mnt/data"},
		NonInteractive: true,
	}, &bytes.Buffer{}))

	added, err := addDisk(path, "/mnt/backup/")
	require.NoError(t, err)
	assert.Equal(t, "/mnt/backup", added)

	t.Chdir(dir)
	added, err = addDisk(path, "media")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "media"), added)

	// already listed
	_, err = addDisk(path, "/mnt/data")
	require.NoError(t, err)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/mnt/data", "/mnt/backup", filepath.Join(dir, "media")}, cfg.Disks)
}

func TestAddDiskBadFile(t *testing.T) {
	path := writeConfig(t, "disks: not-a-list\n")

	_, err := addDisk(path, "/mnt/x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to update")
}
