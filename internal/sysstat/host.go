package sysstat

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/rileyhilliard/panelstat/internal/errors"
)

// Uptime reports time since boot.
type Uptime struct{}

// Uptime returns the monotonic uptime.
func (Uptime) Uptime() (time.Duration, error) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, errors.Wrap(err, "Could not read uptime")
	}
	return time.Duration(secs) * time.Second, nil
}

// Hostname resolves the kernel hostname.
type Hostname struct{}

// Hostname returns the current hostname.
func (Hostname) Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", errors.FromOS(err, "Could not resolve hostname")
	}
	if name == "" {
		return "", errors.Messagef("hostname not available")
	}
	return name, nil
}
