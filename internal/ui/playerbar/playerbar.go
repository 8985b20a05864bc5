// Package playerbar renders the radio player panel.
package playerbar

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/radiowaves/internal/icons"
	"github.com/llehouerou/radiowaves/internal/mood"
	"github.com/llehouerou/radiowaves/internal/radio"
	"github.com/llehouerou/radiowaves/internal/ui/styles"
)

// Height is the panel height: 4 content rows plus the border.
const Height = 6

const (
	meterWidth  = 10
	volumeWidth = 10
	pulseDepth  = 0.6
)

// Stats are the station counters shown on the last row.
type Stats struct {
	Listeners int
	Likes     int
	Dislikes  int
}

// State holds everything needed to render the panel.
type State struct {
	Station  string
	Playing  bool
	Starting bool
	Volume   float64
	Mood     mood.Mood
	Band     mood.BandSample
	Stats    Stats
	Pulse    float64 // play button pulse phase in [0,1)
}

// NewState constructs a State from a radio snapshot.
func NewState(station string, snap radio.Snapshot, stats Stats, pulse float64) State {
	return State{
		Station:  station,
		Playing:  snap.Playing(),
		Starting: snap.Starting,
		Volume:   snap.Volume,
		Mood:     snap.Mood,
		Band:     snap.Band,
		Stats:    stats,
		Pulse:    pulse,
	}
}

// Render returns the panel string for the given outer width.
func Render(s State, width int) string {
	inner := max(width-4, 0) // border and padding

	lines := []string{
		row(titleText(s.Station, inner-moodWidth(s.Mood)-1), styles.MoodLabel(s.Mood), inner),
		row(playButton(s)+" "+statusText(s), RenderVolume(s.Volume, volumeWidth), inner),
		meters(s.Band),
		statsText(s.Stats),
	}
	for i, l := range lines {
		lines[i] = fit(l, inner)
	}

	return styles.PanelStyle(s.Playing).
		Width(max(width-2, 0)).
		Render(strings.Join(lines, "\n"))
}

func moodWidth(m mood.Mood) int {
	return lipgloss.Width(m.String())
}

func titleText(station string, maxWidth int) string {
	name := icons.FormatStation(sanitize(station))
	return styles.T().S().Title.Render(runewidth.Truncate(name, max(maxWidth, 0), "…"))
}

// playButton shows the play/pause glyph; it pulses while audio plays.
func playButton(s State) string {
	t := styles.T()
	style := t.S().Muted
	if s.Playing {
		style = t.S().Playing.Foreground(styles.Pulse(t.Primary, s.Pulse, pulseDepth))
	}
	return style.Render(icons.PlayButton(s.Playing))
}

func statusText(s State) string {
	switch {
	case s.Starting:
		return statusStyle(false).Render("connecting…")
	case s.Playing:
		return statusStyle(true).Render("LIVE")
	default:
		return statusStyle(false).Render("stopped")
	}
}

func meters(b mood.BandSample) string {
	t := styles.T()
	return strings.Join([]string{
		RenderMeter("BASS", b.Bass, meterWidth, t.MeterBass),
		RenderMeter("MID", b.Mid, meterWidth, t.MeterMid),
		RenderMeter("TREBLE", b.Treble, meterWidth, t.MeterTreble),
	}, "  ")
}

func statsText(s Stats) string {
	item := func(icon string, n int) string {
		return labelStyle().Render(icon) + " " + valueStyle().Render(humanize.Comma(int64(n)))
	}
	return strings.Join([]string{
		item(icons.Listener(), s.Listeners),
		item(icons.Like(), s.Likes),
		item(icons.Dislike(), s.Dislikes),
	}, "   ")
}

// row places left and right on one line separated by at least one space.
func row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// fit cuts a styled line that overflows width.
func fit(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// sanitize drops control characters from configured text.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
