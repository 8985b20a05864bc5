package canvas

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/radiowaves/internal/effects"
	"github.com/llehouerou/radiowaves/internal/icons"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func lines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestGrid_EmptyIsTransparent(t *testing.T) {
	g := NewGrid(4, 2)
	assert.Equal(t, "    \n    ", g.String())
}

func TestGrid_Set(t *testing.T) {
	g := NewGrid(6, 1)
	s := lipgloss.NewStyle()

	assert.True(t, g.Set(1, 0, "😢", s))
	assert.False(t, g.Set(5, 0, "😢", s), "wide glyph past the edge")
	assert.False(t, g.Set(-1, 0, "x", s))
	assert.False(t, g.Set(0, 1, "x", s))
	assert.False(t, g.Set(0, 0, "", s))

	assert.Equal(t, "😢", g.At(1, 0))
	assert.Empty(t, g.At(2, 0))
	assert.Equal(t, " 😢   ", ansi.Strip(g.String()))
}

func TestGrid_OverwriteWideGlyph(t *testing.T) {
	g := NewGrid(5, 1)
	s := lipgloss.NewStyle()

	g.Set(1, 0, "😢", s)
	g.Set(2, 0, "x", s)

	assert.Empty(t, g.At(1, 0), "covered wide glyph is removed")
	assert.Equal(t, "  x  ", ansi.Strip(g.String()))
}

func TestRender_Size(t *testing.T) {
	out := lines(Render(Scene{}, 10, 3))
	require.Len(t, out, 3)
	for _, l := range out {
		assert.Equal(t, 10, ansi.StringWidth(l))
	}
}

func TestRender_ZeroSize(t *testing.T) {
	assert.Empty(t, Render(Scene{Balloons: true}, 0, 0))
}

func TestRender_FireworkOpens(t *testing.T) {
	icons.Init("none")
	fw := effects.Object{Kind: effects.Firework, X: 10, Y: 4, CreatedAt: epoch}
	scene := Scene{Fireworks: []effects.Object{fw}, TTL: effects.DefaultTTL()}

	scene.Now = epoch
	fresh := lines(Render(scene, 20, 9))
	assert.Equal(t, ".", string(fresh[4][10]))
	assert.Equal(t, 1, strings.Count(strings.Join(fresh, ""), "."), "no sparks at birth")

	scene.Now = epoch.Add(700 * time.Millisecond)
	open := lines(Render(scene, 20, 9))
	assert.Equal(t, "#", string(open[4][10]))
	assert.Equal(t, "#", string(open[2][10]), "spark above, radius 2")
	assert.Equal(t, "#", string(open[4][14]), "spark right, doubled columns")
	assert.Equal(t, 9, strings.Count(strings.Join(open, ""), "#"))
}

func TestRender_HeartRisesAndCryingFalls(t *testing.T) {
	icons.Init("none")
	ttl := effects.DefaultTTL()
	scene := Scene{
		Hearts: []effects.Object{{Kind: effects.HeartEmoji, X: 2, Y: 5, CreatedAt: epoch}},
		Crying: []effects.Object{{Kind: effects.CryingEmoji, X: 10, Y: 1, CreatedAt: epoch}},
		TTL:    ttl,
		Now:    epoch.Add(2500 * time.Millisecond),
	}

	out := lines(Render(scene, 16, 8))

	assert.Equal(t, "<3", out[3][2:4], "heart rose two rows")
	assert.Equal(t, ":'(", out[3][10:13], "crying fell two rows")
}

func TestRender_ObjectsOutsideAreSkipped(t *testing.T) {
	icons.Init("none")
	scene := Scene{
		Hearts: []effects.Object{
			{X: -3, Y: 1, CreatedAt: epoch},
			{X: 50, Y: 1, CreatedAt: epoch},
			{X: 1, Y: 90, CreatedAt: epoch},
		},
		TTL: effects.DefaultTTL(),
		Now: epoch,
	}
	assert.Equal(t, "      \n      ", ansi.Strip(Render(scene, 6, 2)))
}

func TestRender_Balloons(t *testing.T) {
	icons.Init("none")
	scene := Scene{Balloons: true, Now: epoch}

	out := lines(Render(scene, 14, 2))
	assert.Equal(t, "              ", out[0])
	assert.Equal(t, "o     o     o ", out[1])

	scene.Now = epoch.Add(balloonStep)
	out = lines(Render(scene, 14, 2))
	assert.Equal(t, " o     o     o", out[1], "balloons drift one cell")
}

func TestProgress(t *testing.T) {
	o := effects.Object{CreatedAt: epoch}
	assert.InDelta(t, 0.0, progress(o, epoch, 0), 1e-9)
	assert.InDelta(t, 0.5, progress(o, epoch.Add(time.Second), 2*time.Second), 1e-9)
	assert.InDelta(t, 1.0, progress(o, epoch.Add(time.Hour), time.Second), 1e-9)
	assert.InDelta(t, 0.0, progress(o, epoch.Add(-time.Second), time.Second), 1e-9)
}
