// Package cli implements the panelstat command-line interface.
//
// The root command runs the display daemon. Subcommands cover the rest of
// the lifecycle:
//
//	panelstat                  - Drive the OLED panel until interrupted
//	panelstat preview          - Render the panel in the terminal
//	panelstat init             - Create .panelstat.yaml
//	panelstat add-disk PATH    - Append a mount point to the config
//	panelstat doctor           - Diagnose device, disk and config problems
//	panelstat version          - Print build information
//
// # Configuration
//
// Settings come from, in increasing precedence: built-in defaults, the
// config file, PANELSTAT_* environment variables, and command-line flags.
// The panel flags (--device, --disk, --brightness, ...) are persistent so
// preview and doctor see exactly what the daemon would.
//
// The config is validated before any hardware is touched, so a typo in
// brightness or units fails fast with a suggestion instead of leaving the
// panel half initialized.
package cli
