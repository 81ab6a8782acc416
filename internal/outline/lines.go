package outline

import (
	"math"
	"sort"
	"strings"
)

// Line is a run of tokens sharing a vertical band, ordered left to right.
type Line []WordToken

func (l Line) First() WordToken { return l[0] }

func (l Line) Last() WordToken { return l[len(l)-1] }

// Text joins the token texts with single spaces.
func (l Line) Text() string {
	parts := make([]string, len(l))
	for i, w := range l {
		parts[i] = w.Text
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// GroupLines clusters tokens into visual lines. A token joins the first
// bucket whose key top lies within tolerance, not the nearest one, so the
// arrival order matters when two bands are closer than the tolerance.
func GroupLines(words []WordToken, tolerance float64) []Line {
	type bucket struct {
		top   float64
		words Line
	}
	var buckets []bucket
	for _, w := range words {
		placed := false
		for i := range buckets {
			if math.Abs(w.Top-buckets[i].top) <= tolerance {
				buckets[i].words = append(buckets[i].words, w)
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{top: w.Top, words: Line{w}})
		}
	}

	lines := make([]Line, len(buckets))
	for i, b := range buckets {
		lines[i] = b.words
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i][0].Top < lines[j][0].Top })
	for _, ln := range lines {
		sort.SliceStable(ln, func(i, j int) bool { return ln[i].X0 < ln[j].X0 })
	}
	return lines
}

// gapsAbove returns, for every line, the distance between its first token's
// top and the previous line's last token's bottom. The first line gets 0.
func gapsAbove(lines []Line) []float64 {
	gaps := make([]float64, len(lines))
	for i := 1; i < len(lines); i++ {
		gaps[i] = lines[i].First().Top - lines[i-1].Last().Bottom
	}
	return gaps
}

// averageGap averages the positive gaps, or returns def when there are none.
func averageGap(gaps []float64, def float64) float64 {
	var sum float64
	var n int
	for _, g := range gaps {
		if g > 0 {
			sum += g
			n++
		}
	}
	if n == 0 {
		return def
	}
	return sum / float64(n)
}
