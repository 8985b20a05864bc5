package styles

import "github.com/charmbracelet/lipgloss"

var (
	idleBorderColor    = lipgloss.Color("240")
	playingBorderColor = lipgloss.Color("#a78bfa")

	idlePanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(idleBorderColor).
			Padding(0, 1)

	playingPanelStyle = idlePanelStyle.
				BorderForeground(playingBorderColor)
)

// PanelStyle returns the player panel style; a playing radio gets the accent
// border.
func PanelStyle(playing bool) lipgloss.Style {
	if playing {
		return playingPanelStyle
	}
	return idlePanelStyle
}
