// Package canvas rasterizes live effect objects into a transparent cell layer
// that is composed over the player view.
package canvas

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/radiowaves/internal/effects"
	"github.com/llehouerou/radiowaves/internal/icons"
	"github.com/llehouerou/radiowaves/internal/ui/styles"
)

// Motion of the animated objects, in cells over a full lifetime.
const (
	fireworkRadius = 3
	heartRise      = 3
	cryingFall     = 3
	balloonSpacing = 6
	balloonStep    = 250 * time.Millisecond
)

// Scene is everything drawn on the effects layer for one frame.
type Scene struct {
	Fireworks []effects.Object
	Hearts    []effects.Object
	Crying    []effects.Object
	Balloons  bool
	TTL       effects.TTL
	Now       time.Time
}

type cell struct {
	glyph string
	style lipgloss.Style
	cont  bool // covered by the wide glyph on its left
}

// Grid is a fixed-size layer of cells. Empty cells render as spaces.
type Grid struct {
	width, height int
	cells         [][]cell
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	cells := make([][]cell, height)
	for i := range cells {
		cells[i] = make([]cell, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Set draws glyph with its left edge at (col, row). Glyphs that do not fit
// entirely inside the grid are skipped. It reports whether it drew.
func (g *Grid) Set(col, row int, glyph string, style lipgloss.Style) bool {
	w := runewidth.StringWidth(glyph)
	if w == 0 || row < 0 || row >= g.height || col < 0 || col+w > g.width {
		return false
	}
	line := g.cells[row]
	for c := col; c < col+w; c++ {
		g.clear(row, c)
	}
	line[col] = cell{glyph: glyph, style: style}
	for c := col + 1; c < col+w; c++ {
		line[c] = cell{cont: true}
	}
	return true
}

// clear empties the glyph occupying (row, col), including the rest of a wide
// glyph it belongs to.
func (g *Grid) clear(row, col int) {
	line := g.cells[row]
	start := col
	for start > 0 && line[start].cont {
		start--
	}
	line[start] = cell{}
	for c := start + 1; c < g.width && line[c].cont; c++ {
		line[c] = cell{}
	}
}

// At returns the glyph drawn at (col, row), empty for blank or covered cells.
func (g *Grid) At(col, row int) string {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return ""
	}
	return g.cells[row][col].glyph
}

// String renders the grid as height lines of width columns.
func (g *Grid) String() string {
	lines := make([]string, g.height)
	var b strings.Builder
	for i, line := range g.cells {
		b.Reset()
		for _, c := range line {
			switch {
			case c.cont:
			case c.glyph == "":
				b.WriteByte(' ')
			default:
				b.WriteString(c.style.Render(c.glyph))
			}
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Render draws a scene on a width x height grid. Object coordinates are cell
// columns and rows.
func Render(s Scene, width, height int) string {
	g := NewGrid(width, height)
	t := styles.T()

	if s.Balloons {
		drawBalloons(g, s.Now, t.Secondary)
	}
	for _, o := range s.Fireworks {
		drawFirework(g, o, progress(o, s.Now, s.TTL.Firework), t.Firework)
	}
	for _, o := range s.Crying {
		p := progress(o, s.Now, s.TTL.Crying)
		g.Set(int(o.X), int(o.Y)+int(p*cryingFall), icons.Crying(), fg(t.Crying, p))
	}
	for _, o := range s.Hearts {
		p := progress(o, s.Now, s.TTL.Heart)
		g.Set(int(o.X), int(o.Y)-int(p*heartRise), icons.Heart(), fg(t.Heart, p))
	}
	return g.String()
}

// progress returns the fraction of the lifetime an object has lived, in [0,1].
func progress(o effects.Object, now time.Time, ttl time.Duration) float64 {
	if ttl <= 0 {
		return 0
	}
	p := float64(o.Age(now)) / float64(ttl)
	return min(max(p, 0), 1)
}

func fg(c lipgloss.Color, fade float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.Fade(c, fade))
}

var sparkDirs = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// drawFirework draws the burst core and, once it opens, a ring of sparks that
// widens with age. Columns are doubled to keep the ring round in a terminal.
func drawFirework(g *Grid, o effects.Object, p float64, c lipgloss.Color) {
	col, row := int(o.X), int(o.Y)
	style := fg(c, p)
	glyph := icons.Firework(p)
	g.Set(col, row, glyph, style)

	r := int(p * fireworkRadius)
	if r == 0 {
		return
	}
	for _, d := range sparkDirs {
		g.Set(col+2*r*d[0], row+r*d[1], glyph, style)
	}
}

// drawBalloons fills the bottom row with balloons drifting one cell per step.
func drawBalloons(g *Grid, now time.Time, c lipgloss.Color) {
	row := g.height - 1
	if row < 0 {
		return
	}
	style := lipgloss.NewStyle().Foreground(c)
	shift := 0
	if !now.IsZero() {
		shift = int(now.UnixMilli()/balloonStep.Milliseconds()) % balloonSpacing
	}
	for col := shift; col < g.width; col += balloonSpacing {
		g.Set(col, row, icons.Balloon(), style)
	}
}
