package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/rileyhilliard/panelstat/internal/units"
)

// Validate checks the config for errors and returns structured error messages.
// It never touches hardware, so bad input is reported before the display is opened.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but panelstat only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade panelstat or lower the version field")
	}

	if cfg.Device == "" {
		return errors.New(errors.ErrConfig,
			"No display device configured",
			"Set 'device' in your config or pass --device, e.g. "+DefaultDevice)
	}

	if _, err := display.ParseBrightness(cfg.Brightness); err != nil {
		return err
	}
	if _, err := units.ParseBase(cfg.Units); err != nil {
		return err
	}

	if err := validateDiskSource(cfg); err != nil {
		return err
	}

	return nil
}

// validateDiskSource accepts a mount folder to scan, absolute disk paths, or
// disk names relative to the mount folder.
func validateDiskSource(cfg *Config) error {
	if cfg.MountFolder == "" && len(cfg.Disks) == 0 {
		return errors.New(errors.ErrConfig,
			"No disks configured",
			"Set 'mount_folder' to a directory of mount points, or list them in 'disks'")
	}

	seen := make(map[string]bool, len(cfg.Disks))
	for _, d := range cfg.Disks {
		if strings.TrimSpace(d) == "" {
			return errors.New(errors.ErrConfig,
				"Empty entry in 'disks'",
				"Remove the blank line from the disks list")
		}
		if cfg.MountFolder == "" && !filepath.IsAbs(d) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Disk '%s' is not an absolute path", d),
				"Use an absolute mount point, or set 'mount_folder' to resolve names against it")
		}
		clean := cfg.DiskPath(d)
		if seen[clean] {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Disk '%s' is listed twice", d),
				"Each mount point can only be shown once")
		}
		seen[clean] = true
	}
	return nil
}
