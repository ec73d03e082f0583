package config

import "path/filepath"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .panelstat.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Device is the I2C character device the panel is attached to.
	Device string `yaml:"device" mapstructure:"device"`

	// MountFolder is scanned once at startup when Disks is empty; each child
	// directory becomes a disk. With Disks set, relative entries resolve against it.
	MountFolder string `yaml:"mount_folder,omitempty" mapstructure:"mount_folder"`

	// Disks lists mount points or names under MountFolder, in display order.
	Disks []string `yaml:"disks,omitempty" mapstructure:"disks"`

	// Hostname overrides the system hostname.
	Hostname string `yaml:"hostname,omitempty" mapstructure:"hostname"`

	// Load enables the CPU load graph.
	Load bool `yaml:"load" mapstructure:"load"`

	// Memory enables the memory usage graph.
	Memory bool `yaml:"memory" mapstructure:"memory"`

	// Brightness is one of brightest, bright, normal, dim, dimmest.
	Brightness string `yaml:"brightness" mapstructure:"brightness"`

	// Units selects metric (1000) or binary (1024) size labels.
	Units string `yaml:"units" mapstructure:"units"`
}

// Default values for a fresh config.
const (
	DefaultDevice     = "/dev/i2c-0"
	DefaultBrightness = "normal"
	DefaultUnits      = "metric"
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:    CurrentConfigVersion,
		Device:     DefaultDevice,
		Brightness: DefaultBrightness,
		Units:      DefaultUnits,
	}
}

// DiskPath resolves a disks entry to a clean mount point path.
func (c *Config) DiskPath(disk string) string {
	if filepath.IsAbs(disk) || c.MountFolder == "" {
		return filepath.Clean(disk)
	}
	return filepath.Join(c.MountFolder, disk)
}
