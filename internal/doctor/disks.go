package doctor

import (
	"fmt"

	"github.com/rileyhilliard/panelstat/internal/component"
	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/rileyhilliard/panelstat/internal/units"
)

// DiskCheck reports whether one configured disk is mounted and its capacity.
type DiskCheck struct {
	Path string
	FS   component.StatFS
	Base units.Base
}

func (c *DiskCheck) Name() string     { return "disk:" + c.Path }
func (c *DiskCheck) Category() string { return "DISKS" }

func (c *DiskCheck) Run() CheckResult {
	d, err := component.NewDisk(c.Path, c.FS, c.Base)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s: %s", c.Path, errors.OneLine(err)),
			Suggestion: "The disk will be left off the panel; check the path exists",
		}
	}

	if err := d.Update(); err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("%s: %s", c.Path, errors.OneLine(err)),
		}
	}

	if !d.Mounted() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s is not mounted (shown as -/-)", c.Path),
			Suggestion: "Mount the disk; the panel picks it up within 5 seconds",
		}
	}

	free := 0.0
	if d.Size() > 0 {
		free = 100 * float64(d.Available()) / float64(d.Size())
	}
	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("%s mounted, %s (%.0f%% free)",
			c.Path, units.Format(d.Size(), c.Base), free),
	}
}

// DiskListCheck fails when disk discovery itself fails or finds nothing.
type DiskListCheck struct {
	Paths []string
	Err   error
}

func (c *DiskListCheck) Name() string     { return "disk_list" }
func (c *DiskListCheck) Category() string { return "DISKS" }

func (c *DiskListCheck) Run() CheckResult {
	switch {
	case c.Err != nil:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Could not list disks: " + errors.OneLine(c.Err),
			Suggestion: "Check that mount_folder exists and is readable",
		}
	case len(c.Paths) == 0:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No disks to show",
			Suggestion: "Create a directory per disk under mount_folder, or list them in 'disks'",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d disk%s configured", len(c.Paths), pluralize(len(c.Paths))),
	}
}

// NewDiskChecks returns the DISKS category.
func NewDiskChecks(paths []string, listErr error, fs component.StatFS, base units.Base) []Check {
	checks := []Check{&DiskListCheck{Paths: paths, Err: listErr}}
	for _, p := range paths {
		checks = append(checks, &DiskCheck{Path: p, FS: fs, Base: base})
	}
	return checks
}
