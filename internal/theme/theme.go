package theme

import (
	"strings"
)

// Variant selects one of the fixed palettes.
type Variant int

const (
	Dark Variant = iota
	Light
)

func (v Variant) String() string {
	if v == Light {
		return "light"
	}
	return "dark"
}

// ParseVariant maps a prefs value to a Variant. Unknown names yield Dark.
func ParseVariant(name string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	}
	return Dark, false
}

// Palette maps semantic color roles to concrete hex values.
type Palette struct {
	Background  string // Outermost background
	Surface     string // Cards and panels
	SurfaceAlt  string // Header, footer, overlays
	Text        string
	Muted       string
	Faint       string
	Accent      string
	AccentSoft  string // Selected card fill
	Border      string
	BorderFocus string
	Success     string
	Warning     string
	Danger      string
	Info        string
	Selection   string
}

// PaletteFor returns the palette for v.
func PaletteFor(v Variant) Palette {
	if v == Light {
		return lightPalette()
	}
	return darkPalette()
}

func darkPalette() Palette {
	// Dracula: https://draculatheme.com/spec
	return Palette{
		Background:  "#191A21", // BGDarker
		Surface:     "#282A36", // Background
		SurfaceAlt:  "#21222C", // BGDark
		Text:        "#F8F8F2", // Foreground
		Muted:       "#6272A4", // Comment
		Faint:       "#44475A", // Selection
		Accent:      "#BD93F9", // Purple
		AccentSoft:  "#343746", // BGLight
		Border:      "#44475A",
		BorderFocus: "#BD93F9",
		Success:     "#50FA7B",
		Warning:     "#FFB86C",
		Danger:      "#FF5555",
		Info:        "#8BE9FD",
		Selection:   "#44475A",
	}
}

func lightPalette() Palette {
	return Palette{
		Background:  "#FFFFFF",
		Surface:     "#F8F9FA",
		SurfaceAlt:  "#E8EAED",
		Text:        "#202124",
		Muted:       "#5F6368",
		Faint:       "#9AA0A6",
		Accent:      "#1A73E8",
		AccentSoft:  "#E8F0FE",
		Border:      "#DADCE0",
		BorderFocus: "#1A73E8",
		Success:     "#34A853",
		Warning:     "#E37400",
		Danger:      "#D93025",
		Info:        "#12B5CB",
		Selection:   "#D2E3FC",
	}
}
