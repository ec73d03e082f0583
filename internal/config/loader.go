package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rileyhilliard/panelstat/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".panelstat.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/panelstat"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix namespaces environment overrides, e.g. PANELSTAT_DEVICE.
	EnvPrefix = "PANELSTAT"
)

// NewViper returns a viper instance with defaults and environment overrides
// registered. Callers may bind flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults mirrors DefaultConfig so env-only setups still unmarshal every key.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("device", d.Device)
	v.SetDefault("mount_folder", "")
	v.SetDefault("disks", []string{})
	v.SetDefault("hostname", "")
	v.SetDefault("load", d.Load)
	v.SetDefault("memory", d.Memory)
	v.SetDefault("brightness", d.Brightness)
	v.SetDefault("units", d.Units)
}

// Load reads the config file at path into v, if path is set, and returns the
// merged result. Flags and environment bound to v take precedence over the file.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Run 'panelstat init' to create a config file, or specify one with --config")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}
	return parseConfig(v, path)
}

// LoadFile is Load with a fresh viper instance.
func LoadFile(path string) (*Config, error) {
	return Load(NewViper(), path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .panelstat.yaml in current directory
// 3. ~/.config/panelstat/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if global := GlobalPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// GlobalPath returns ~/.config/panelstat/config.yaml, or "" without a home directory.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	source := path
	if source == "" {
		source = "the environment"
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+source)
	}

	// PANELSTAT_DISKS arrives as one space-separated string.
	if len(cfg.Disks) == 1 && strings.ContainsAny(cfg.Disks[0], " ,") {
		cfg.Disks = strings.FieldsFunc(cfg.Disks[0], func(r rune) bool {
			return r == ' ' || r == ','
		})
	}

	cfg.Device = ExpandTilde(cfg.Device)
	cfg.MountFolder = ExpandTilde(cfg.MountFolder)
	for i, d := range cfg.Disks {
		cfg.Disks[i] = ExpandTilde(d)
	}

	return cfg, nil
}
