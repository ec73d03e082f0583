package display

// Transport is the display hardware boundary. Flush writes a whole frame;
// partial writes are never exposed.
type Transport interface {
	Init() error
	SetPower(on bool) error
	SetBrightness(b Brightness) error
	Flush(f *Frame) error
	Clear() error
	Close() error
}

// MemoryTransport keeps flushed frames in memory. Used by tests and the
// terminal preview.
type MemoryTransport struct {
	Frames     []*Frame
	Powered    bool
	Brightness Brightness
	Closed     bool

	// Calls records method names in order.
	Calls []string

	// Max bounds how many frames are retained, and how many calls per
	// frame. Zero keeps all of them.
	Max int

	InitErr  error
	FlushErr error
}

// NewMemoryTransport returns a transport that retains the last max frames.
func NewMemoryTransport(max int) *MemoryTransport {
	return &MemoryTransport{Max: max}
}

func (m *MemoryTransport) Init() error {
	m.record("init")
	return m.InitErr
}

func (m *MemoryTransport) SetPower(on bool) error {
	if on {
		m.record("power-on")
	} else {
		m.record("power-off")
	}
	m.Powered = on
	return nil
}

func (m *MemoryTransport) SetBrightness(b Brightness) error {
	m.record("brightness")
	m.Brightness = b
	return nil
}

func (m *MemoryTransport) Flush(f *Frame) error {
	m.record("flush")
	if m.FlushErr != nil {
		return m.FlushErr
	}
	m.Frames = append(m.Frames, f.Clone())
	if m.Max > 0 && len(m.Frames) > m.Max {
		m.Frames = m.Frames[len(m.Frames)-m.Max:]
	}
	return nil
}

func (m *MemoryTransport) Clear() error {
	m.record("clear")
	return nil
}

func (m *MemoryTransport) Close() error {
	m.record("close")
	m.Closed = true
	return nil
}

// callsPerFrame sizes the call history kept per retained frame.
const callsPerFrame = 4

func (m *MemoryTransport) record(call string) {
	m.Calls = append(m.Calls, call)
	if limit := m.Max * callsPerFrame; limit > 0 && len(m.Calls) > limit {
		m.Calls = m.Calls[len(m.Calls)-limit:]
	}
}

// Last returns the most recently flushed frame, or nil.
func (m *MemoryTransport) Last() *Frame {
	if len(m.Frames) == 0 {
		return nil
	}
	return m.Frames[len(m.Frames)-1]
}
