package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// PanelInk returns the lit-pixel color for a brightness level from 0
// (dimmest) to 4 (brightest), approximating OLED contrast steps.
func PanelInk(level int) lipgloss.Color {
	ramp := []lipgloss.Color{"#3a6b7a", "#5a9bb0", "#7fc8e0", "#a8e4f5", "#e0f8ff"}
	if level < 0 {
		level = 0
	}
	if level >= len(ramp) {
		level = len(ramp) - 1
	}
	return ramp[level]
}

// ColorPanelGlass is the unlit background of the preview.
const ColorPanelGlass lipgloss.Color = "#050a0c"

// SuccessStyle renders passing results.
func SuccessStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorSuccess) }

// ErrorStyle renders failures.
func ErrorStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorError) }

// WarnStyle renders warnings.
func WarnStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorWarning) }

// MutedStyle renders secondary text.
func MutedStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorMuted) }

// HeaderStyle renders section headers.
func HeaderStyle() lipgloss.Style { return lipgloss.NewStyle().Bold(true) }

// DisableColors switches lipgloss to plain ASCII output.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
