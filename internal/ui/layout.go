package ui

import "github.com/rs/zerolog"

// Layout sizes.
const (
	// headerHeight and footerHeight are fixed single lines.
	headerHeight = 1
	footerHeight = 1

	// cardHeight is the rendered height of one result card, borders included.
	cardHeight = 4

	// maxSuggestions caps the recent-query dropdown.
	maxSuggestions = 5

	// LayoutCompactWidth is the width below which the footer drops key hints.
	LayoutCompactWidth = 80

	// maxContentWidth keeps cards and descriptions readable on wide terminals.
	maxContentWidth = 100
)

// Log overlay limits.
const (
	// LogTailLines is the number of trailing log lines read for the overlay.
	LogTailLines = 200

	// LogOverlayLevel hides debug chatter from the overlay.
	LogOverlayLevel = zerolog.InfoLevel
)

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
