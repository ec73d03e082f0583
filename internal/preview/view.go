package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/panelstat/internal/display"
	"github.com/rileyhilliard/panelstat/internal/ui"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	glassStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorMuted).
			Background(ui.ColorPanelGlass)
	statusStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	warnStyle   = lipgloss.NewStyle().Foreground(ui.ColorWarning)
)

// View renders the current frame, a status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("panelstat preview"))
	b.WriteString("\n")

	frame := m.screen.Last()
	if frame == nil {
		b.WriteString(statusStyle.Render("waiting for first frame..."))
		b.WriteString("\n")
	} else {
		ink := lipgloss.NewStyle().
			Foreground(ui.PanelInk(int(m.screen.Brightness))).
			Background(ui.ColorPanelGlass)
		bounds := frame.Bounds()
		b.WriteString(glassStyle.Render(ui.RenderHalfBlocks(frame, bounds.Dx(), bounds.Dy(), ink)))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")

	if w := m.lastWarning(); w != "" {
		b.WriteString(warnStyle.Render(ui.SymbolWarn + " " + w))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) statusLine() string {
	state := "live"
	if m.paused {
		state = "paused"
	}
	return fmt.Sprintf("%dx%d  frames %d  brightness %s  %s",
		display.Width, display.Height, m.loop.Frames(), m.screen.Brightness, state)
}
