//go:build !linux

package sysstat

import (
	"runtime"

	"github.com/rileyhilliard/panelstat/internal/errors"
)

// Statfs is only implemented on Linux.
func (FS) Statfs(path string) (FSStat, error) {
	return FSStat{}, errors.Messagef("statfs %s: not supported on %s", path, runtime.GOOS)
}
