package doctor

import (
	stderrors "errors"
	"fmt"

	"github.com/rileyhilliard/panelstat/internal/config"
	"github.com/rileyhilliard/panelstat/internal/errors"
)

// ConfigFileCheck reports which config file, if any, is in effect.
// Running without one is allowed, so a missing file is only a warning.
type ConfigFileCheck struct {
	Path string
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return "CONFIG" }

func (c *ConfigFileCheck) Run() CheckResult {
	if c.Path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No config file found, using flags and environment only",
			Suggestion: "Run 'panelstat init' to create " + config.ConfigFileName,
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", c.Path),
	}
}

// ConfigValidCheck validates the merged configuration.
type ConfigValidCheck struct {
	Config  *config.Config
	LoadErr error
}

func (c *ConfigValidCheck) Name() string     { return "config_valid" }
func (c *ConfigValidCheck) Category() string { return "CONFIG" }

func (c *ConfigValidCheck) Run() CheckResult {
	if c.LoadErr != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Failed to load config: " + errors.OneLine(c.LoadErr),
			Suggestion: "Check the YAML syntax in your config file",
		}
	}
	if err := config.Validate(c.Config); err != nil {
		result := CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Invalid config: " + errors.OneLine(err),
		}
		var psErr *errors.Error
		if stderrors.As(err, &psErr) {
			result.Suggestion = psErr.Suggestion
		}
		return result
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Config valid",
	}
}

// NewConfigChecks returns the CONFIG category.
func NewConfigChecks(path string, cfg *config.Config, loadErr error) []Check {
	return []Check{
		&ConfigFileCheck{Path: path},
		&ConfigValidCheck{Config: cfg, LoadErr: loadErr},
	}
}
