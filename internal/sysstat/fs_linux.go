//go:build linux

package sysstat

import (
	"golang.org/x/sys/unix"

	"github.com/rileyhilliard/panelstat/internal/errors"
)

// Statfs returns capacity and identity for the filesystem holding path.
func (FS) Statfs(path string) (FSStat, error) {
	var sfs unix.Statfs_t
	if err := unix.Statfs(path, &sfs); err != nil {
		return FSStat{}, errors.FromOS(err, "statfs "+path)
	}

	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return FSStat{}, errors.FromOS(err, "stat "+path)
	}

	return FSStat{
		Blocks:    sfs.Blocks,
		Available: sfs.Bavail,
		BlockSize: uint64(sfs.Bsize),
		ID: FSID{
			Fsid: sfs.Fsid.Val,
			Dev:  uint64(st.Dev),
		},
	}, nil
}
