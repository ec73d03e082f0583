package component

import (
	"image"
	"math"
	"path/filepath"
	"time"

	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/rileyhilliard/panelstat/internal/units"
)

const (
	diskUnmountedInterval = 5 * time.Second
	diskMountedInterval   = 300 * time.Second

	diskBarHeight = 2
	notMounted    = "-/-"
)

// Disk shows capacity and usage of one mount point. Hot-plugged disks are
// picked up within seconds; a stable mounted disk is re-read every 5 minutes.
type Disk struct {
	name       string
	mountPoint string
	fs         StatFS
	base       units.Base

	mounted   bool
	size      uint64
	available uint64
}

// NewDisk verifies that mountPoint is reachable and returns its component.
// Mount state is not determined until the first Update.
func NewDisk(mountPoint string, fs StatFS, base units.Base) (*Disk, error) {
	abs, err := filepath.Abs(mountPoint)
	if err != nil {
		return nil, errors.FromOS(err, "could not resolve disk path "+mountPoint)
	}
	if _, err := fs.Statfs(abs); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrIO,
			"could not collect stats for disk '"+filepath.Base(abs)+"'", "")
	}
	return &Disk{
		name:       filepath.Base(abs),
		mountPoint: abs,
		fs:         fs,
		base:       base,
	}, nil
}

func (d *Disk) Name() string { return "Disk(" + d.name + ")" }

// MountPoint returns the absolute path being watched.
func (d *Disk) MountPoint() string { return d.mountPoint }

// Mounted reports the result of the last successful mount check.
func (d *Disk) Mounted() bool { return d.mounted }

// Size is the total capacity in bytes, valid while Mounted.
func (d *Disk) Size() uint64 { return d.size }

// Available is the space writable by a non-root user, valid while Mounted.
func (d *Disk) Available() uint64 { return d.available }

func (d *Disk) ShouldUpdate(sinceLast time.Duration) bool {
	if d.mounted {
		return sinceLast >= diskMountedInterval
	}
	return sinceLast >= diskUnmountedInterval
}

// Update re-checks the mount and, when mounted, reads capacity.
// Any failure leaves mounted, size and available untouched.
func (d *Disk) Update() error {
	mounted, err := IsMounted(d.fs, d.mountPoint)
	if err != nil {
		return err
	}
	if !mounted {
		d.mounted = false
		return nil
	}

	stat, err := d.fs.Statfs(d.mountPoint)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"could not collect stats for disk '"+d.name+"'", "")
	}

	size := stat.SizeBytes()
	available := stat.AvailableBytes()
	if available > size {
		available = size
	}

	d.mounted = true
	d.size = size
	d.available = available
	return nil
}

func (d *Disk) Render(c *display.Canvas, offset image.Point, _ uint64) error {
	label := notMounted
	if d.mounted {
		label = units.Format(d.size, d.base)
	}

	nameWidth := c.Width() - c.TextWidth(label) - c.TextWidth(" ")
	c.Text(offset, c.Fit(d.name, nameWidth))
	c.TextRight(offset.X+c.Width(), offset.Y, label)

	if d.mounted {
		top := offset.Y + c.TextStyle().Face.Metrics().Height.Ceil()
		filled := UsedWidth(c.Width(), d.size, d.available)
		c.FillRect(image.Rect(offset.X, top, offset.X+filled, top+diskBarHeight))
	}
	return nil
}

// UsedWidth is the number of bar pixels for the used share of size.
func UsedWidth(width int, size, available uint64) int {
	if size == 0 || width <= 0 {
		return 0
	}
	used := math.Floor(float64(width) * (1 - float64(available)/float64(size)))
	if used < 0 {
		return 0
	}
	if used > float64(width) {
		return width
	}
	return int(used)
}
