package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/radiowaves/internal/ui/canvas"
	"github.com/llehouerou/radiowaves/internal/ui/overlay"
	"github.com/llehouerou/radiowaves/internal/ui/playerbar"
	"github.com/llehouerou/radiowaves/internal/ui/styles"
)

const maxPanelWidth = 72

// View renders the application UI: the player panel and toast centered above
// the help footer, with the effects layer composed on top.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	panel := playerbar.Render(
		playerbar.NewState(m.station, m.snap, m.stats, m.pulse()),
		min(m.Width, maxPanelWidth),
	)
	body := lipgloss.JoinVertical(lipgloss.Center, panel, m.renderToast())
	footer := m.help.View(m.helpKeys)

	bodyHeight := max(m.Height-lipgloss.Height(footer), 0)
	base := lipgloss.Place(m.Width, bodyHeight, lipgloss.Center, lipgloss.Center, body) +
		"\n" + footer

	layer := canvas.Render(canvas.Scene{
		Fireworks: m.snap.Fireworks,
		Hearts:    m.snap.Hearts,
		Crying:    m.snap.Crying,
		Balloons:  m.snap.ShowOverlay,
		TTL:       m.ttl,
		Now:       m.now,
	}, m.Width, m.Height)

	return overlay.Compose(base, layer, m.Width)
}

func (m Model) renderToast() string {
	if m.toast == "" {
		return ""
	}
	return styles.T().S().Toast.Render(m.toast)
}

// pulse returns the play button phase, one cycle per second.
func (m Model) pulse() float64 {
	if m.now.IsZero() {
		return 0
	}
	return float64(m.now.UnixMilli()%1000) / 1000
}
