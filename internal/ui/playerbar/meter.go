package playerbar

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/radiowaves/internal/ui/styles"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// filled returns how many of width cells a level in [0,1] fills.
func filled(level float64, width int) int {
	if math.IsNaN(level) || width <= 0 {
		return 0
	}
	return min(max(int(math.Round(level*float64(width))), 0), width)
}

// bar renders a block bar of width cells.
func bar(level float64, width int, c lipgloss.Color) string {
	n := filled(level, width)
	return meterStyle(c).Render(strings.Repeat(filledBlock, n)) +
		meterStyle(styles.T().MeterEmpty).Render(strings.Repeat(emptyBlock, width-n))
}

// RenderMeter renders a labelled band level. Format: "BASS ▓▓▓░░░"
func RenderMeter(label string, level float64, width int, c lipgloss.Color) string {
	return labelStyle().Render(label) + " " + bar(level, width, c)
}
