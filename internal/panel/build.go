package panel

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rileyhilliard/panelstat/internal/component"
	"github.com/rileyhilliard/panelstat/internal/config"
	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/rileyhilliard/panelstat/internal/logger"
	"github.com/rileyhilliard/panelstat/internal/units"
)

// Build assembles the component list in render order: hostname, disks,
// load, memory, uptime and the update indicator. A disk that cannot be
// constructed is dropped with a warning; an unreadable mount folder is fatal.
func Build(cfg *config.Config, src Sources, log logger.Logger) ([]component.Component, error) {
	base, err := units.ParseBase(cfg.Units)
	if err != nil {
		return nil, err
	}

	disks, err := DiskPaths(cfg)
	if err != nil {
		return nil, err
	}

	var list []component.Component
	if cfg.Hostname != "" {
		list = append(list, component.NewStaticHostname(cfg.Hostname))
	} else {
		list = append(list, component.NewHostname(src.Hostname))
	}

	for _, path := range disks {
		d, err := component.NewDisk(path, src.FS, base)
		if err != nil {
			log.Warn("skipping disk %s: %s", path, errors.OneLine(err))
			continue
		}
		list = append(list, d)
	}

	if cfg.Load {
		list = append(list, component.NewLoad(src.CPU, display.Width))
	}
	if cfg.Memory {
		list = append(list, component.NewMemory(src.Memory, display.Width))
	}

	list = append(list, component.NewUptime(src.Uptime), component.NewUpdateIndicator())

	// the indicator draws in a fixed corner and needs no slot of its own;
	// the stack also drifts down by up to MaxBurnIn.Y
	slots := len(list) - 1
	if need := slots*display.LineHeight + display.MaxBurnIn.Y; need > display.Height {
		log.Warn("%d components need %dpx with burn-in drift but the panel is %dpx tall; the last ones will be cut off",
			slots, need, display.Height)
	}

	return list, nil
}

// DiskPaths resolves the configured disks, scanning the mount folder when no
// disks are listed.
func DiskPaths(cfg *config.Config) ([]string, error) {
	if len(cfg.Disks) == 0 {
		return DiscoverDisks(cfg.MountFolder)
	}
	paths := make([]string, len(cfg.Disks))
	for i, d := range cfg.Disks {
		paths[i] = cfg.DiskPath(d)
	}
	return paths, nil
}

// DiscoverDisks returns the immediate child directories of folder, sorted by
// name. Hidden entries are skipped.
func DiscoverDisks(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrIO,
			"Could not list mount folder "+folder,
			"Check that the folder exists and is readable")
	}

	var paths []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(folder, e.Name())
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}
