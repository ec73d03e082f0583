package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/panelstat/internal/config"
	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/lock"
	"github.com/rileyhilliard/panelstat/internal/logger"
	"github.com/rileyhilliard/panelstat/internal/panel"
	"github.com/rileyhilliard/panelstat/internal/scheduler"
)

// daemonEnv is what the daemon touches outside the process.
type daemonEnv struct {
	sources panel.Sources
	lockDir string
	open    func(device string) display.Transport
}

func systemDaemonEnv() daemonEnv {
	return daemonEnv{
		sources: panel.SystemSources(),
		lockDir: lock.Dir(),
		open: func(device string) display.Transport {
			return display.NewSSD1306(device)
		},
	}
}

// daemonCommand builds the components, locks and opens the panel, and runs
// the display loop until SIGINT or SIGTERM. The panel is powered off on the
// way out.
func daemonCommand(ctx context.Context, cfg *config.Config) error {
	return runDaemon(ctx, cfg, systemDaemonEnv())
}

func runDaemon(ctx context.Context, cfg *config.Config, env daemonEnv) error {
	// installed before the lock and the bus so a signal during setup still
	// unwinds through the deferred release and power-off
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewEnvLogger("[panelstat]")

	brightness, err := display.ParseBrightness(cfg.Brightness)
	if err != nil {
		return err
	}

	list, err := panel.Build(cfg, env.sources, log)
	if err != nil {
		return err
	}

	devLock, err := lock.Acquire(env.lockDir, cfg.Device)
	if err != nil {
		return err
	}
	defer devLock.Release()

	drawer, err := display.NewDrawer(env.open(cfg.Device),
		display.WithBrightness(brightness),
		display.WithLogger(logger.NewEnvLogger("[drawer]")))
	if err != nil {
		return err
	}
	defer drawer.Close()

	if ctx.Err() != nil {
		log.Info("interrupted during startup")
		return nil
	}

	sched := scheduler.New(list, scheduler.WithLogger(logger.NewEnvLogger("[scheduler]")))
	return panel.NewLoop(sched, drawer, panel.WithLogger(log)).Run(ctx)
}
