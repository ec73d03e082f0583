package sysstat

import (
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/rileyhilliard/panelstat/internal/errors"
)

// MemStat holds total and free physical memory in bytes.
type MemStat struct {
	Total uint64
	Free  uint64
}

// UsedFraction is 1 - free/total, or 0 when total is unknown.
func (m MemStat) UsedFraction() float64 {
	if m.Total == 0 {
		return 0
	}
	return clamp01(1 - float64(m.Free)/float64(m.Total))
}

// Memory reads /proc/meminfo through gopsutil.
type Memory struct{}

// Memory returns the current totals.
func (Memory) Memory() (MemStat, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemStat{}, errors.Wrap(err, "Could not read memory counters")
	}
	return MemStat{Total: vm.Total, Free: vm.Free}, nil
}
