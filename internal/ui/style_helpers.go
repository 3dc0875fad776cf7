package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders runs of text on a fixed background color. lipgloss resets
// between styled segments leave gaps in a bar's background otherwise; see
// https://github.com/charmbracelet/lipgloss/discussions/78.
type BgStyle struct {
	bg lipgloss.Color
}

// NewBgStyle creates a helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	return BgStyle{bg: lipgloss.Color(bgColor)}
}

// Spaces returns n styled spaces, or nothing for n <= 0.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// FillLine pads rendered content to width with the background color.
func (b BgStyle) FillLine(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).MaxWidth(width).Render(content)
}
