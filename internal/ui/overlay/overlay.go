// Package overlay composes a sparse layer of styled glyphs over a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// Compose overlays content on top of a base view.
// Every run of non-space cells in overlay replaces the base at the same
// columns; spaces are transparent. Both inputs may carry ANSI styling. Lines
// are padded or cut to width, and overlay lines past the base are dropped.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}
		segs := segments(ansi.Strip(overlayLine))
		if len(segs) == 0 {
			continue
		}

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		var b strings.Builder
		col := 0
		for _, s := range segs {
			if s.start >= width {
				break
			}
			end := min(s.end, width)
			b.WriteString(ansi.Cut(baseLine, col, s.start))
			b.WriteString(ansi.Cut(overlayLine, s.start, end))
			col = end
		}
		if col < width {
			b.WriteString(ansi.Cut(baseLine, col, width))
		}
		baseLines[i] = b.String()
	}

	return strings.Join(baseLines, "\n")
}

type segment struct {
	start, end int // display columns, end exclusive
}

// segments returns the column ranges of the non-space runs of a plain line.
func segments(plain string) []segment {
	var segs []segment
	col, open, state := 0, -1, -1
	for plain != "" {
		var cluster string
		var width int
		cluster, plain, width, state = uniseg.FirstGraphemeClusterInString(plain, state)
		if cluster == " " {
			if open >= 0 {
				segs = append(segs, segment{open, col})
				open = -1
			}
			col++
			continue
		}
		if open < 0 {
			open = col
		}
		col += width
	}
	if open >= 0 {
		segs = append(segs, segment{open, col})
	}
	return segs
}
