package cli

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rileyhilliard/panelstat/internal/config"
	"github.com/rileyhilliard/panelstat/internal/errors"
)

// panelFlag ties a command-line flag to the config key it overrides.
type panelFlag struct {
	flag string
	key  string
}

var panelFlags = []panelFlag{
	{"device", "device"},
	{"mount-folder", "mount_folder"},
	{"disk", "disks"},
	{"hostname", "hostname"},
	{"load", "load"},
	{"memory", "memory"},
	{"brightness", "brightness"},
	{"units", "units"},
}

// AddPanelFlags registers the flags that override config keys.
func AddPanelFlags(fs *pflag.FlagSet) {
	fs.String("device", config.DefaultDevice, "I2C device the panel is attached to")
	fs.String("mount-folder", "", "folder whose subdirectories are shown as disks")
	fs.StringSlice("disk", nil, "mount point to show (repeatable, in display order)")
	fs.String("hostname", "", "name shown on the first line instead of the system hostname")
	fs.Bool("load", false, "show the CPU load graph")
	fs.Bool("memory", false, "show the memory usage graph")
	fs.String("brightness", config.DefaultBrightness, "panel brightness: brightest, bright, normal, dim, dimmest")
	fs.String("units", config.DefaultUnits, "size units: metric (1000) or binary (1024)")
}

// BindPanelFlags binds every panel flag present in fs to v. Flags only take
// effect when set explicitly, so the file and environment still apply.
func BindPanelFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, pf := range panelFlags {
		f := fs.Lookup(pf.flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(pf.key, f); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to bind --"+pf.flag,
				"This is a bug, please report it")
		}
	}
	return nil
}

// loadConfig resolves the config file, merges flags and environment over it
// and validates the result. The returned path is empty when no file was found.
func loadConfig(fs *pflag.FlagSet) (*config.Config, string, error) {
	path, err := config.Find(cfgFile)
	if err != nil {
		return nil, "", err
	}

	v := config.NewViper()
	if err := BindPanelFlags(v, fs); err != nil {
		return nil, path, err
	}

	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, path, err
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, path, err
	}
	return cfg, path, nil
}
