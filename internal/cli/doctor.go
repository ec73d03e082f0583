package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rileyhilliard/panelstat/internal/config"
	"github.com/rileyhilliard/panelstat/internal/doctor"
	"github.com/rileyhilliard/panelstat/internal/panel"
	"github.com/rileyhilliard/panelstat/internal/ui"
	"github.com/rileyhilliard/panelstat/internal/units"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and hardware problems",
	Long: `Check the config file, the I2C device, every configured disk, and the
system counters the panel reads. Nothing is drawn on the panel.

Examples:
  panelstat doctor
  panelstat doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(cmd.Flags(), cmd.OutOrStdout(), panel.SystemSources())
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand implements the doctor command logic.
func doctorCommand(fs *pflag.FlagSet, out io.Writer, src panel.Sources) error {
	// Load errors are reported by the config checks rather than returned.
	cfg, path, loadErr := loadConfig(fs)
	if cfg != nil && loadErr != nil {
		// Validation failed; the check re-runs it and explains why.
		loadErr = nil
	}

	checks := collectChecks(path, cfg, loadErr, src)
	results := doctor.RunAll(checks)

	if doctorJSON {
		return outputDoctorJSON(out, checks, results)
	}
	outputDoctorText(out, checks, results)
	return nil
}

// collectChecks gathers all diagnostic checks based on available config.
func collectChecks(path string, cfg *config.Config, loadErr error, src panel.Sources) []doctor.Check {
	checks := doctor.NewConfigChecks(path, cfg, loadErr)

	device := config.DefaultDevice
	if cfg != nil {
		device = cfg.Device
	}
	checks = append(checks, doctor.NewDeviceCheck(device), doctor.NewDeviceLockCheck(device))

	// Disk checks need a config that at least parsed
	if cfg != nil {
		base, err := units.ParseBase(cfg.Units)
		if err != nil {
			base = units.Metric
		}
		paths, listErr := panel.DiskPaths(cfg)
		checks = append(checks, doctor.NewDiskChecks(paths, listErr, src.FS, base)...)
	}

	checks = append(checks, doctor.NewSourceChecks(src.Hostname, src.Uptime, src.Memory, src.CPU)...)
	return checks
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(out io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	grouped := make(map[string][]doctor.CheckResult)
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], results[i])
	}

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(grouped)),
	}
	for _, cat := range doctor.Categories {
		if rs, ok := grouped[cat]; ok {
			output.Categories = append(output.Categories, CategoryOutput{Name: cat, Results: rs})
		}
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText outputs results in human-readable format.
func outputDoctorText(out io.Writer, checks []doctor.Check, results []doctor.CheckResult) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.HeaderStyle().Render("panelstat Diagnostic Report"))
	fmt.Fprintln(out)

	grouped := make(map[string][]int) // category -> indices
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], i)
	}

	for _, category := range doctor.Categories {
		indices := grouped[category]
		if len(indices) == 0 {
			continue
		}

		fmt.Fprintln(out, ui.HeaderStyle().Render(category))
		for _, idx := range indices {
			renderCheckResult(out, results[idx])
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, strings.Repeat("━", 60))
	fmt.Fprintln(out)

	symbol := ui.SuccessStyle().Render(ui.SymbolSuccess)
	if doctor.HasIssues(results) {
		symbol = ui.ErrorStyle().Render(ui.SymbolFail)
	}
	fmt.Fprintf(out, "%s %s\n", symbol, doctor.Summary(results))
	fmt.Fprintln(out)
}

// renderCheckResult renders a single check result.
func renderCheckResult(out io.Writer, result doctor.CheckResult) {
	var symbol string
	var style lipgloss.Style

	switch result.Status {
	case doctor.StatusPass:
		symbol = ui.SymbolComplete
		style = ui.SuccessStyle()
	case doctor.StatusWarn:
		symbol = ui.SymbolWarn
		style = ui.WarnStyle()
	default:
		symbol = ui.SymbolFail
		style = ui.ErrorStyle()
	}

	fmt.Fprintf(out, "  %s %s\n", style.Render(symbol), result.Message)

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Fprintf(out, "    %s\n", ui.MutedStyle().Render(line))
		}
	}
}
