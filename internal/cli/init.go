package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/panelstat/internal/config"
	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/rileyhilliard/panelstat/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string   // Where to write; defaults to ./.panelstat.yaml
	Device         string   // I2C device path
	MountFolder    string   // Folder scanned for disks
	Disks          []string // Explicit mount points
	Brightness     string
	Units          string
	Load           bool
	Memory         bool
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use flags and defaults
}

var (
	initOpts   InitOptions
	initGlobal bool
)

// initCmd creates a new .panelstat.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .panelstat.yaml configuration",
	Long: `Create a panelstat config file with interactive prompts.

Writes .panelstat.yaml in the current directory, or the global config with
--global. The result is validated before it is written.

Examples:
  panelstat init
  panelstat init --global
  panelstat init --non-interactive --mount-folder /mnt --load`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := initOpts
		if initGlobal {
			opts.Path = config.GlobalPath()
		}
		fs := cmd.Flags()
		opts.Device, _ = fs.GetString("device")
		opts.MountFolder, _ = fs.GetString("mount-folder")
		opts.Disks, _ = fs.GetStringSlice("disk")
		opts.Brightness, _ = fs.GetString("brightness")
		opts.Units, _ = fs.GetString("units")
		opts.Load, _ = fs.GetBool("load")
		opts.Memory, _ = fs.GetBool("memory")
		return Init(opts, cmd.OutOrStdout())
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initOpts.Overwrite, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initOpts.NonInteractive, "non-interactive", false, "skip prompts and use flag values")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write ~/.config/panelstat/config.yaml")
}

// Init writes a new config file from opts, prompting for values unless
// NonInteractive is set.
func Init(opts InitOptions, out io.Writer) error {
	configPath := opts.Path
	if configPath == "" {
		configPath = filepath.Join(".", config.ConfigFileName)
	}

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := configFromOptions(opts)
	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.Write(configPath, cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config",
			"Check you have write permission for "+filepath.Dir(configPath))
	}

	fmt.Fprintf(out, "%s Created %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), configPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  %s\n", ui.MutedStyle().Render("panelstat doctor    # check the device and disks"))
	fmt.Fprintf(out, "  %s\n", ui.MutedStyle().Render("panelstat preview   # see the panel in the terminal"))
	return nil
}

// configFromOptions fills a default config with any values given in opts.
func configFromOptions(opts InitOptions) *config.Config {
	cfg := config.DefaultConfig()
	if opts.Device != "" {
		cfg.Device = opts.Device
	}
	cfg.MountFolder = opts.MountFolder
	cfg.Disks = opts.Disks
	if opts.Brightness != "" {
		cfg.Brightness = opts.Brightness
	}
	if opts.Units != "" {
		cfg.Units = opts.Units
	}
	cfg.Load = opts.Load
	cfg.Memory = opts.Memory
	return cfg
}

// promptConfig asks for each setting, using cfg's values as the defaults.
func promptConfig(cfg *config.Config) error {
	disks := strings.Join(cfg.Disks, " ")

	brightness := make([]huh.Option[string], 0, len(display.BrightnessNames()))
	for _, name := range display.BrightnessNames() {
		brightness = append(brightness, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("I2C device").
				Description("Character device the panel is attached to").
				Placeholder(config.DefaultDevice).
				Value(&cfg.Device).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("device is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Mount folder (optional)").
				Description("Each subdirectory is shown as a disk").
				Placeholder("/mnt").
				Value(&cfg.MountFolder),
			huh.NewInput().
				Title("Disks (optional)").
				Description("Space-separated mount points, or names under the mount folder").
				Placeholder("/mnt/data /mnt/backup").
				Value(&disks),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Brightness").
				Options(brightness...).
				Value(&cfg.Brightness),
			huh.NewSelect[string]().
				Title("Size units").
				Options(
					huh.NewOption("metric (1000)", "metric"),
					huh.NewOption("binary (1024)", "binary"),
				).
				Value(&cfg.Units),
			huh.NewConfirm().
				Title("Show CPU load graph?").
				Value(&cfg.Load),
			huh.NewConfirm().
				Title("Show memory graph?").
				Value(&cfg.Memory),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	cfg.MountFolder = strings.TrimSpace(cfg.MountFolder)
	cfg.Disks = strings.Fields(disks)
	return nil
}
