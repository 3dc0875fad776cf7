// Package theme holds the process-wide light/dark color table.
//
// A Context owns the active Variant and the lipgloss Styles derived from its
// Palette. Presenters only see the Reader interface; the TUI shell is the
// single caller of Toggle.
package theme
