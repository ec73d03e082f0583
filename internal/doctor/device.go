package doctor

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/rileyhilliard/panelstat/internal/lock"
)

// DeviceCheck verifies the I2C character device exists and is read-writable
// by the current user. It never talks to the bus.
type DeviceCheck struct {
	Path string

	stat   func(string) (os.FileInfo, error)
	access func(path string, mode uint32) error
}

// NewDeviceCheck checks path against the real filesystem.
func NewDeviceCheck(path string) *DeviceCheck {
	return &DeviceCheck{Path: path, stat: os.Stat, access: unix.Access}
}

func (c *DeviceCheck) Name() string     { return "device" }
func (c *DeviceCheck) Category() string { return "DEVICE" }

func (c *DeviceCheck) Run() CheckResult {
	info, err := c.stat(c.Path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Display device %s not found", c.Path),
			Suggestion: "Enable I2C (e.g. dtparam=i2c_arm=on) and load the i2c-dev module",
		}
	}

	if info.Mode()&os.ModeCharDevice == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s is not a character device", c.Path),
			Suggestion: "Point 'device' at an I2C bus such as /dev/i2c-1",
		}
	}

	if err := c.access(c.Path, unix.R_OK|unix.W_OK); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("No read/write access to %s", c.Path),
			Suggestion: "Add your user to the i2c group or run as root",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Display device %s is accessible", c.Path),
	}
}

// DeviceLockCheck warns when another panelstat already holds the device.
type DeviceLockCheck struct {
	Path string

	holder func() string
}

// NewDeviceLockCheck checks the real lock directory.
func NewDeviceLockCheck(path string) *DeviceLockCheck {
	return &DeviceLockCheck{Path: path, holder: func() string {
		return lock.Holder(lock.Dir(), path)
	}}
}

func (c *DeviceLockCheck) Name() string     { return "device_lock" }
func (c *DeviceLockCheck) Category() string { return "DEVICE" }

func (c *DeviceLockCheck) Run() CheckResult {
	if h := c.holder(); h != "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s is in use by %s", c.Path, h),
			Suggestion: "Only one panelstat can drive a display; stop it before starting another",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("No other panelstat is using %s", c.Path),
	}
}
