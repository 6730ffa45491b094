package gridview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme bundles the styles the renderers apply per region.
type Theme struct {
	Header      lipgloss.Style // header rows in normal flow
	HeaderStuck lipgloss.Style // header rows while detached from flow
	Row         lipgloss.Style
	RowAlt      lipgloss.Style // zebra striping
	Selected    lipgloss.Style
	Footer      lipgloss.Style
	Filler      lipgloss.Style
	Track       lipgloss.Style // scrollbar track
	Thumb       lipgloss.Style // scrollbar thumb
}

// Base palette.
const (
	colorText      = "#c9c9c9"
	colorHeaderBG  = "#303030"
	colorStuckBG   = "#3d3d5c"
	colorSelection = "#1a1a1a"
	colorTrack     = "#4a4a4a"
	colorThumb     = "#9e9e9e"
)

// DefaultTheme returns the standard dark theme.
func DefaultTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(LiftColor(colorText))).
			Background(lipgloss.Color(colorHeaderBG)).
			Bold(true),
		HeaderStuck: lipgloss.NewStyle().
			Foreground(lipgloss.Color(LiftColor(colorText))).
			Background(lipgloss.Color(colorStuckBG)).
			Bold(true),
		Row:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
		RowAlt: lipgloss.NewStyle().Foreground(lipgloss.Color(DimColor(colorText))),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(LiftColor(colorText))).
			Background(lipgloss.Color(colorSelection)).
			Bold(true),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color(DimColor(colorText))).Italic(true),
		Filler: lipgloss.NewStyle(),
		Track:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorTrack)),
		Thumb:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorThumb)),
	}
}

// RowFor picks the style for a body row, preferring selection over zebra
// striping.
func (t Theme) RowFor(index, selected int) lipgloss.Style {
	if index == selected {
		return t.Selected
	}
	if index%2 == 1 {
		return t.RowAlt
	}
	return t.Row
}

// HeaderFor picks the header style for the given engagement state.
func (t Theme) HeaderFor(stuck bool) lipgloss.Style {
	if stuck {
		return t.HeaderStuck
	}
	return t.Header
}

// LiftColor brightens a hex color toward white for emphasis. Falls back
// to the input when it does not parse.
func LiftColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	l = l + (1.0-l)*0.4
	if l > 0.8 {
		l = 0.8
	}
	return colorful.Hsl(h, s, l).Hex()
}

// DimColor darkens a hex color for de-emphasis. Falls back to the input
// when it does not parse.
func DimColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	l = l * 0.6
	if l < 0.2 {
		l = 0.2
	}
	return colorful.Hsl(h, s, l).Hex()
}
