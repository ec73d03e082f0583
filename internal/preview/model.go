// Package preview shows the panel in a terminal. It drives the same
// scheduler and drawer as the daemon, flushing into a memory transport
// instead of the I2C bus.
package preview

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/errors"
	"github.com/rileyhilliard/panelstat/internal/logger"
	"github.com/rileyhilliard/panelstat/internal/panel"
)

// DefaultInterval matches the daemon's one frame per second.
const DefaultInterval = time.Second

// LogHistory is how many log messages a preview session keeps.
const LogHistory = 100

// Model is the Bubble Tea model for the preview.
type Model struct {
	loop     *panel.Loop
	screen   *display.MemoryTransport
	log      *logger.BufferLogger
	interval time.Duration

	keys     KeyMap
	help     help.Model
	paused   bool
	quitting bool
	lastErr  error
}

// tickMsg signals a frame is due.
type tickMsg time.Time

// New creates a preview over a loop whose drawer flushes into screen.
// Warnings logged by the pipeline should go to log so they can be shown
// under the frame instead of corrupting the terminal.
func New(loop *panel.Loop, screen *display.MemoryTransport, log *logger.BufferLogger, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Model{
		loop:     loop,
		screen:   screen,
		log:      log,
		interval: interval,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init draws the first frame and starts the tick timer.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg(time.Now()) }
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tickMsg:
		if !m.paused {
			m.draw()
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.draw()
		}

	case key.Matches(msg, m.keys.Brightness):
		next := (m.screen.Brightness + 1) % (display.Brightest + 1)
		if err := m.screen.SetBrightness(next); err != nil {
			m.lastErr = err
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) draw() {
	if err := m.loop.Tick(); err != nil {
		m.lastErr = err
		return
	}
	m.lastErr = nil
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Paused reports whether frame updates are suspended.
func (m Model) Paused() bool { return m.paused }

// Err returns the last draw failure, if any.
func (m Model) Err() error { return m.lastErr }

func (m Model) lastWarning() string {
	if m.lastErr != nil {
		return errors.OneLine(m.lastErr)
	}
	if m.log == nil {
		return ""
	}
	for i := len(m.log.Messages) - 1; i >= 0; i-- {
		if lvl := m.log.Messages[i].Level; lvl == "warn" || lvl == "error" {
			return m.log.Messages[i].Message
		}
	}
	return ""
}
