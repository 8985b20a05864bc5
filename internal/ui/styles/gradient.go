package styles

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/radiowaves/internal/mood"
)

// ApplyGradient renders bold text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorToHex(colors[i]))).
			Bold(true).
			Render(cluster))
	}
	return b.String()
}

// MoodLabel renders the uppercase mood name in its gradient.
func MoodLabel(m mood.Mood) string {
	from, to := MoodColors(m)
	return ApplyGradient(strings.ToUpper(m.String()), from, to)
}

// Pulse returns c brightened towards white by a sine of phase, in [0, depth].
// A full cycle spans phase 0..1.
func Pulse(c lipgloss.Color, phase, depth float64) lipgloss.Color {
	base, _ := colorful.MakeColor(lipglossToColor(c))
	t := depth * (1 - math.Cos(2*math.Pi*phase)) / 2
	return lipgloss.Color(base.BlendHcl(colorful.Color{R: 1, G: 1, B: 1}, t).Clamped().Hex())
}

// Fade blends c towards black by t in [0,1], used for effects nearing expiry.
func Fade(c lipgloss.Color, t float64) lipgloss.Color {
	base, _ := colorful.MakeColor(lipglossToColor(c))
	t = min(max(t, 0), 1)
	return lipgloss.Color(base.BlendRgb(colorful.Color{}, t*0.7).Clamped().Hex())
}

// blendColors returns a slice of colors blended between from and to.
// Blending is done in HCL color space for perceptually uniform transitions.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size < 2 {
		return []color.Color{lipglossToColor(from)}
	}

	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t).Clamped()
	}
	return colors
}

// lipglossToColor converts a hex lipgloss.Color to a color.Color. ANSI
// indexes fall back to a neutral gray.
func lipglossToColor(c lipgloss.Color) color.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
