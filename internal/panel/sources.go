package panel

import (
	"github.com/rileyhilliard/panelstat/internal/component"
	"github.com/rileyhilliard/panelstat/internal/sysstat"
)

// Sources bundles the data sources components are built from.
type Sources struct {
	FS       component.StatFS
	CPU      component.CPUSampler
	Memory   component.MemoryReader
	Uptime   component.UptimeReader
	Hostname component.HostnameReader
}

// SystemSources reads from the running machine.
func SystemSources() Sources {
	return Sources{
		FS:       sysstat.NewFS(),
		CPU:      sysstat.NewCPUSampler(),
		Memory:   sysstat.Memory{},
		Uptime:   sysstat.Uptime{},
		Hostname: sysstat.Hostname{},
	}
}
