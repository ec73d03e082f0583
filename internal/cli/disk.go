package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/panelstat/internal/config"
	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/rileyhilliard/panelstat/internal/ui"
)

var addDiskCmd = &cobra.Command{
	Use:   "add-disk PATH",
	Short: "Add a mount point to the config",
	Long: `Append a mount point to the disks list in the config file. Comments and
layout of the file are kept. Adding a disk that is already listed does nothing.

Examples:
  panelstat add-disk /mnt/backup
  panelstat add-disk --config /etc/panelstat.yaml /srv/media`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Find(cfgFile)
		if err != nil {
			return err
		}
		if path == "" {
			return errors.New(errors.ErrConfig,
				"No config file found",
				"Run 'panelstat init' first, or pass --config")
		}

		added, err := addDisk(path, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s to %s\n",
			ui.SuccessStyle().Render(ui.SymbolSuccess), added, path)
		return nil
	},
}

// addDisk resolves mountPoint to an absolute path and records it in the
// config at path. It returns the path that was written.
func addDisk(path, mountPoint string) (string, error) {
	abs, err := filepath.Abs(config.ExpandTilde(mountPoint))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot resolve "+mountPoint,
			"Pass an absolute mount point")
	}
	if err := config.AddDisk(path, abs); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to update "+path,
			"Check the file is valid YAML and writable")
	}
	return abs, nil
}
