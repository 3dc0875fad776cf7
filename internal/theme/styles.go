package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains pre-built Lipgloss styles for a palette.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Input    lipgloss.Style
	Modal    lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Glyph        lipgloss.Style
	Badge        lipgloss.Style

	// Markdown
	Headings   [6]lipgloss.Style
	Emphasis   lipgloss.Style
	Strong     lipgloss.Style
	Code       lipgloss.Style
	CodeBlock  lipgloss.Style
	Quote      lipgloss.Style
	Link       lipgloss.Style
	Rule       lipgloss.Style
	ListMarker lipgloss.Style

	background string
}

func build(p Palette) Styles {
	s := Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Surface)).
			Foreground(lipgloss.Color(p.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(p.SurfaceAlt)).
			Foreground(lipgloss.Color(p.Text)),

		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		MutedText:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		FaintText:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Faint)),
		AccentText: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)).
			Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warning)),
		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Danger)).
			Bold(true),
		InfoText: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(p.SurfaceAlt)).
			Foreground(lipgloss.Color(p.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(p.SurfaceAlt)).
			Foreground(lipgloss.Color(p.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Selection)).
			Foreground(lipgloss.Color(p.Text)),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.BorderFocus)).
			Background(lipgloss.Color(p.SurfaceAlt)).
			Foreground(lipgloss.Color(p.Text)).
			Padding(1, 2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(p.BorderFocus)).
			Background(lipgloss.Color(p.AccentSoft)).
			Padding(0, 1),

		Glyph: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Background)).
			Background(lipgloss.Color(p.Accent)).
			Bold(true).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Background)).
			Background(lipgloss.Color(p.Success)).
			Padding(0, 1),

		Emphasis: lipgloss.NewStyle().Italic(true),
		Strong:   lipgloss.NewStyle().Bold(true),
		Code: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)).
			Background(lipgloss.Color(p.SurfaceAlt)),
		CodeBlock: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Background(lipgloss.Color(p.SurfaceAlt)).
			Padding(0, 1),
		Quote: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(p.Border)).
			PaddingLeft(1),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Underline(true),
		Rule:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Faint)),
		ListMarker: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),

		background: p.Background,
	}

	// Heading weight drops with level; H1 and H2 are also set off by color.
	s.Headings[0] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true).Underline(true)
	s.Headings[1] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true)
	s.Headings[2] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Bold(true)
	s.Headings[3] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Bold(true).Italic(true)
	s.Headings[4] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Bold(true)
	s.Headings[5] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Italic(true)
	return s
}

// Heading returns the style for a heading level, clamped to 1..6.
func (s Styles) Heading(level int) lipgloss.Style {
	level = max(1, min(level, len(s.Headings)))
	return s.Headings[level-1]
}

// WithBackground returns a copy of Styles with every text style carrying the
// given background, so styled runs inside a panel do not punch holes in it.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.InfoText = s.InfoText.Background(bg)
	out.Emphasis = s.Emphasis.Background(bg)
	out.Strong = s.Strong.Background(bg)
	out.Link = s.Link.Background(bg)
	out.Rule = s.Rule.Background(bg)
	out.ListMarker = s.ListMarker.Background(bg)
	for i := range s.Headings {
		out.Headings[i] = s.Headings[i].Background(bg)
	}
	return out
}

// BackgroundColor returns the palette background the styles were built from.
func (s Styles) BackgroundColor() string {
	return s.background
}
