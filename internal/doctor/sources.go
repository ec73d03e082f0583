package doctor

import (
	"fmt"

	"github.com/rileyhilliard/panelstat/internal/component"
	"github.com/rileyhilliard/panelstat/internal/errors"
)

// SourceCheck runs one Update against a component's data source.
type SourceCheck struct {
	Component component.Component
	// Describe renders the freshly updated component for the report.
	Describe func() string
}

func (c *SourceCheck) Name() string     { return "source:" + c.Component.Name() }
func (c *SourceCheck) Category() string { return "SOURCES" }

func (c *SourceCheck) Run() CheckResult {
	if err := c.Component.Update(); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s: %s", c.Component.Name(), errors.OneLine(err)),
			Suggestion: "The panel will show a placeholder for this component",
		}
	}
	msg := c.Component.Name() + " readable"
	if c.Describe != nil {
		msg = fmt.Sprintf("%s: %s", c.Component.Name(), c.Describe())
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: msg,
	}
}

// NewSourceChecks returns the SOURCES category for hostname, uptime and memory.
// The CPU sampler needs a second pass a second later, so only Begin is exercised.
func NewSourceChecks(host component.HostnameReader, uptime component.UptimeReader,
	mem component.MemoryReader, cpu component.CPUSampler) []Check {
	h := component.NewHostname(host)
	u := component.NewUptime(uptime)
	m := component.NewMemory(mem, 1)
	l := component.NewLoad(cpu, 1)

	return []Check{
		&SourceCheck{Component: h, Describe: h.Value},
		&SourceCheck{Component: u, Describe: u.Label},
		&SourceCheck{Component: m, Describe: func() string {
			return fmt.Sprintf("%.0f%% used", 100*m.History().At(0))
		}},
		&SourceCheck{Component: l, Describe: func() string { return "sampling started" }},
	}
}
