package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// Build metadata. Release builds stamp the copies in main with -ldflags,
// which hands them over through SetVersionInfo.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show which panelstat build is running",
	Long: `Show the release, source commit and build time of this panelstat binary,
together with the Go toolchain and platform it targets. Include this output
when reporting a display problem.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return err
		}
		writeVersion(cmd.OutOrStdout(), short)
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "Print the bare release string, for scripts")
}

// writeVersion prints the release alone when short is set, otherwise a
// labelled block with the build details.
func writeVersion(w io.Writer, short bool) {
	if short {
		fmt.Fprintln(w, version)
		return
	}

	fmt.Fprintln(w, "panelstat "+releaseLabel(version))
	for _, row := range [][2]string{
		{"commit", commit},
		{"built", date},
		{"go", runtime.Version()},
		{"platform", runtime.GOOS + "/" + runtime.GOARCH},
	} {
		fmt.Fprintf(w, "  %-9s%s\n", row[0], row[1])
	}
}

// releaseLabel tags tagged releases with a leading v. Local builds keep
// their "dev" marker as is.
func releaseLabel(v string) string {
	if v == "" || v == "dev" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// SetVersionInfo records the build metadata main was linked with.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}
