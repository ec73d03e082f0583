package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/panelstat/internal/logger"
	"github.com/rileyhilliard/panelstat/internal/ui"
)

// Global flags
var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "panelstat",
	Short: "Show disk and system status on an SSD1306 OLED panel",
	Long: `panelstat drives a 128x64 SSD1306 panel mounted in portrait and shows
the hostname, disk usage, uptime and optional load and memory graphs.

Run without a subcommand to start the display loop. It redraws once a
second until interrupted, then powers the panel off.

Examples:
  panelstat --mount-folder /mnt
  panelstat --disk /mnt/data --disk /mnt/backup --load
  panelstat preview`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		return daemonCommand(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.panelstat.yaml, then ~/.config/panelstat/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	AddPanelFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addDiskCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
