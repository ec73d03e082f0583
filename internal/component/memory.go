package component

import (
	"image"
	"time"

	"github.com/rileyhilliard/panelstat/internal/display"
)

const memoryInterval = 60 * time.Second

// Memory graphs the used share of physical memory once a minute.
type Memory struct {
	source  MemoryReader
	history *History
}

// NewMemory creates a memory graph holding width samples.
func NewMemory(source MemoryReader, width int) *Memory {
	return &Memory{source: source, history: NewHistory(width)}
}

func (m *Memory) Name() string { return "Memory" }

// History exposes the stored samples.
func (m *Memory) History() *History { return m.history }

func (m *Memory) ShouldUpdate(sinceLast time.Duration) bool {
	return sinceLast >= memoryInterval
}

func (m *Memory) Update() error {
	stat, err := m.source.Memory()
	if err != nil {
		return err
	}
	m.history.Push(stat.UsedFraction())
	return nil
}

func (m *Memory) Render(c *display.Canvas, offset image.Point, _ uint64) error {
	renderSparkline(c, offset, m.history)
	return nil
}
