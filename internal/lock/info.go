package lock

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Info records which process holds a device lock.
type Info struct {
	PID      int       `json:"pid"`
	Hostname string    `json:"hostname"`
	Device   string    `json:"device"`
	Started  time.Time `json:"started"`
	Command  string    `json:"command,omitempty"`
}

// NewInfo describes the current process as the holder of device.
func NewInfo(device string) *Info {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	command := ""
	if len(os.Args) > 0 {
		command = os.Args[0]
	}
	return &Info{
		PID:      os.Getpid(),
		Hostname: hostname,
		Device:   device,
		Started:  time.Now(),
		Command:  command,
	}
}

// Age returns how long ago the lock was acquired.
func (i *Info) Age() time.Duration {
	return time.Since(i.Started)
}

// Marshal serializes the Info to JSON.
func (i *Info) Marshal() ([]byte, error) {
	return json.Marshal(i)
}

// ParseInfo deserializes JSON data into an Info.
func ParseInfo(data []byte) (*Info, error) {
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// String returns a human-readable description of who holds the lock.
func (i *Info) String() string {
	return fmt.Sprintf("pid %d on %s, running %s", i.PID, i.Hostname, i.Age().Truncate(time.Second))
}
