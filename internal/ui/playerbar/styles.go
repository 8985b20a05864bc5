package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/radiowaves/internal/ui/styles"
)

func labelStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func valueStyle() lipgloss.Style {
	return styles.T().S().Base
}

func statusStyle(playing bool) lipgloss.Style {
	if playing {
		return styles.T().S().Success
	}
	return styles.T().S().Subtle
}

func meterStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}
