// Package display composes status frames and pushes them to the panel.
//
// The logical frame is portrait, 64 pixels wide and 128 tall. Components are
// stacked in fixed LineHeight slots from the top. The whole stack is shifted by
// a slowly cycling burn-in offset so static content does not wear the same
// pixels for months.
//
//	Frame      - 1-bit bitmap
//	Canvas     - frame plus the text and stroke styles components draw with
//	Drawer     - clears, renders every item, flushes once per tick
//	Transport  - where frames go: SSD1306 over I2C, or memory for tests/preview
//
// The Drawer must be closed. Close powers the panel off before the transport is
// released.
package display
