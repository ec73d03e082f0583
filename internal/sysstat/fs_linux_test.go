//go:build linux

package sysstat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatfsSameFilesystem(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "child")
	require.NoError(t, os.Mkdir(sub, 0o755))

	fs := NewFS()
	parent, err := fs.Statfs(dir)
	require.NoError(t, err)
	child, err := fs.Statfs(sub)
	require.NoError(t, err)

	assert.Equal(t, parent.ID, child.ID)
	assert.NotZero(t, parent.BlockSize)
	assert.LessOrEqual(t, parent.Available, parent.Blocks)
}

func TestStatfsMissingPath(t *testing.T) {
	_, err := NewFS().Statfs(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrErrno))
}
