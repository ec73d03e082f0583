package cli

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/panelstat/internal/config"
	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/rileyhilliard/panelstat/internal/logger"
	"github.com/rileyhilliard/panelstat/internal/panel"
	"github.com/rileyhilliard/panelstat/internal/preview"
	"github.com/rileyhilliard/panelstat/internal/scheduler"
)

var previewInterval time.Duration

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the panel in the terminal",
	Long: `Run the same components and frame composer as the daemon, but draw each
frame in the terminal instead of on the panel. No I2C device is needed.

Keys:
  space  pause or resume
  n      draw one frame while paused
  b      cycle brightness
  ?      show all keys
  q      quit

Examples:
  panelstat preview
  panelstat preview --disk /mnt/data --load --memory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New(errors.ErrConfig,
				"Preview needs an interactive terminal",
				"Run 'panelstat preview' directly in a terminal, not through a pipe")
		}
		cfg, _, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		return previewCommand(cfg, previewInterval)
	},
}

func init() {
	previewCmd.Flags().DurationVar(&previewInterval, "interval", preview.DefaultInterval, "time between frames (e.g., 1s, 250ms)")
}

// previewCommand wires the panel pipeline to an in-memory transport and
// hands it to the terminal UI. Log output is captured so it does not tear
// the alternate screen.
func previewCommand(cfg *config.Config, interval time.Duration) error {
	log := logger.NewBoundedBufferLogger(preview.LogHistory)

	brightness, err := display.ParseBrightness(cfg.Brightness)
	if err != nil {
		return err
	}

	list, err := panel.Build(cfg, panel.SystemSources(), log)
	if err != nil {
		return err
	}

	screen := display.NewMemoryTransport(1)
	drawer, err := display.NewDrawer(screen, display.WithBrightness(brightness), display.WithLogger(log))
	if err != nil {
		return err
	}
	defer drawer.Close()

	loop := panel.NewLoop(scheduler.New(list, scheduler.WithLogger(log)), drawer, panel.WithLogger(log))
	loop.Start()

	p := tea.NewProgram(preview.New(loop, screen, log, interval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Preview failed",
			"Try a different terminal, or run with --verbose")
	}
	return nil
}
