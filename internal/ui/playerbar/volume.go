package playerbar

import (
	"fmt"

	"github.com/llehouerou/radiowaves/internal/icons"
	"github.com/llehouerou/radiowaves/internal/ui/styles"
)

// RenderVolume renders the volume indicator.
// Format: "🔊 ▓▓▓▓▓▓▓░░░  70%"
func RenderVolume(level float64, width int) string {
	pct := filled(level, 100)
	return icons.Volume(level) + " " +
		bar(level, width, styles.T().Primary) +
		valueStyle().Render(fmt.Sprintf(" %3d%%", pct))
}
