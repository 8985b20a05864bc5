package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/radiowaves/internal/mood"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - play button, focused items
	Secondary lipgloss.Color // Gold - likes, balloons

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	Border lipgloss.Color

	// Meter colors
	MeterBass   lipgloss.Color
	MeterMid    lipgloss.Color
	MeterTreble lipgloss.Color
	MeterEmpty  lipgloss.Color

	// Effect colors
	Firework lipgloss.Color
	Heart    lipgloss.Color
	Crying   lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style // Station name
	Playing lipgloss.Style // Play button while playing
	Success lipgloss.Style
	Error   lipgloss.Style
	Toast   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border: lipgloss.Color("#585858"),

	MeterBass:   lipgloss.Color("#ff6b6b"),
	MeterMid:    lipgloss.Color("#f1a208"),
	MeterTreble: lipgloss.Color("#4fc3f7"),
	MeterEmpty:  lipgloss.Color("#303030"),

	Firework: lipgloss.Color("#ffd166"),
	Heart:    lipgloss.Color("#ff4d8d"),
	Crying:   lipgloss.Color("#4fc3f7"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Toast: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),
	}
}

// MoodColors returns the gradient endpoints of a mood label.
func MoodColors(m mood.Mood) (from, to lipgloss.Color) {
	switch m {
	case mood.Club:
		return "#ff00cc", "#3333ff"
	case mood.Bass:
		return "#ff6b6b", "#f1a208"
	case mood.Slow:
		return "#4fc3f7", "#a78bfa"
	default:
		return "#42b883", "#4fc3f7"
	}
}
