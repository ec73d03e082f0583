// Package ui holds the terminal styling shared by panelstat's commands:
// the colour palette, status symbols, and a renderer that turns a 1-bit
// panel frame into half-block text for the preview.
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess (green)  - passing checks
//	ColorError   (red)    - failures
//	ColorWarning (yellow) - degraded but usable
//	ColorMuted   (gray)   - suggestions, help text
//
// Use DisableColors() to switch to monochrome output (for --no-color).
package ui
