// Package lock keeps two panelstat daemons from driving the same display.
// A lock is a directory created with mkdir, which is atomic, holding an
// info.json that names the owning process. Locks whose owner has exited are
// taken over.
package lock

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/unix"

	"github.com/rileyhilliard/panelstat/internal/errors"
)

// DefaultDir is where device locks live when it exists.
const DefaultDir = "/run/lock"

const (
	infoFile  = "info.json"
	infoGrace = 5 * time.Second

	// startSlack absorbs clock granularity between a process starting and
	// it writing its lock info.
	startSlack = 2 * time.Second
)

// processAlive reports whether pid names a running process.
// EPERM means it exists but belongs to someone else.
var processAlive = func(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	return err == nil || stderrors.Is(err, unix.EPERM)
}

// processStarted returns when pid started.
var processStarted = func(pid int) (time.Time, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return time.Time{}, err
	}
	ms, err := p.CreateTime()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

// holderLive reports whether the process named in info still owns the lock.
// Our own PID is never a live holder: we have not taken this lock yet, so it
// was left by an earlier process that got the same PID. A live PID whose
// process started after the lock was written has been reused too.
func holderLive(info *Info) bool {
	if info.PID == os.Getpid() || !processAlive(info.PID) {
		return false
	}
	started, err := processStarted(info.PID)
	if err != nil || info.Started.IsZero() {
		return true
	}
	return !started.After(info.Started.Add(startSlack))
}

// Lock is an acquired device lock.
type Lock struct {
	Dir  string // The lock directory
	Info *Info  // Info about the lock holder (us)
}

// Dir returns the base directory for locks: DefaultDir if present, else the
// system temp directory.
func Dir() string {
	if st, err := os.Stat(DefaultDir); err == nil && st.IsDir() {
		return DefaultDir
	}
	return os.TempDir()
}

// PathFor returns the lock directory for device under base.
func PathFor(base, device string) string {
	name := strings.Trim(strings.ReplaceAll(filepath.Clean(device), "/", "-"), "-")
	return filepath.Join(base, "panelstat-"+name+".lock")
}

// Acquire takes the lock for device under base without waiting. If the lock
// is held by a live process the returned error wraps ErrLocked. A lock whose
// holder is gone, including one left under a since-reused PID, is removed
// and acquisition retried once.
func Acquire(base, device string) (*Lock, error) {
	lockDir := PathFor(base, device)
	info := NewInfo(device)

	for attempt := 0; attempt < 2; attempt++ {
		err := os.Mkdir(lockDir, 0o755)
		if err == nil {
			if err := writeInfo(lockDir, info); err != nil {
				os.RemoveAll(lockDir)
				return nil, err
			}
			return &Lock{Dir: lockDir, Info: info}, nil
		}
		if !os.IsExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrLock,
				"Failed to create lock directory "+lockDir,
				"Check permissions on "+base)
		}

		holder, _ := ReadHolder(lockDir)
		if holder != nil && holderLive(holder) {
			return nil, errors.WrapWithCode(ErrLocked, errors.ErrLock,
				device+" is already in use by "+holder.String(),
				"Stop the other panelstat, or point this one at a different --device")
		}
		if holder == nil && recentlyCreated(lockDir) {
			return nil, errors.WrapWithCode(ErrLocked, errors.ErrLock,
				device+" is being locked by another process",
				"Another panelstat may be starting at the same time; try again")
		}
		// Stale, or info never written
		if err := os.RemoveAll(lockDir); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrLock,
				"Failed to remove stale lock "+lockDir,
				"Remove it by hand")
		}
	}

	return nil, errors.WrapWithCode(ErrLocked, errors.ErrLock,
		device+" lock keeps reappearing",
		"Another panelstat may be starting at the same time; try again")
}

// Release removes the lock, allowing others to acquire it.
// Releasing a nil lock is a no-op.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	holder, err := ReadHolder(l.Dir)
	if err == nil && holder.PID != l.Info.PID {
		// Taken over after we were presumed dead; not ours to remove.
		return nil
	}
	if err := os.RemoveAll(l.Dir); err != nil {
		return errors.WrapWithCode(err, errors.ErrLock,
			"Failed to remove lock directory "+l.Dir,
			"Remove it by hand")
	}
	return nil
}

// ReadHolder returns the info of whoever holds lockDir.
func ReadHolder(lockDir string) (*Info, error) {
	data, err := os.ReadFile(filepath.Join(lockDir, infoFile))
	if err != nil {
		return nil, err
	}
	return ParseInfo(data)
}

// Holder describes the live holder of device's lock under base, or returns
// "" when the device is free or the lock is stale.
func Holder(base, device string) string {
	info, err := ReadHolder(PathFor(base, device))
	if err != nil || !holderLive(info) {
		return ""
	}
	return info.String()
}

// recentlyCreated covers the window between another process's mkdir and
// its info write.
func recentlyCreated(lockDir string) bool {
	st, err := os.Stat(lockDir)
	return err == nil && time.Since(st.ModTime()) < infoGrace
}

func writeInfo(lockDir string, info *Info) error {
	data, err := info.Marshal()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrLock,
			"Failed to serialize lock info",
			"This shouldn't happen")
	}
	if err := os.WriteFile(filepath.Join(lockDir, infoFile), data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrLock,
			"Failed to write lock info file",
			"Check disk space and permissions on "+filepath.Dir(lockDir))
	}
	return nil
}
