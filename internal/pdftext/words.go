package pdftext

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
	rpdf "rsc.io/pdf"

	"github.com/thywilljoshua/pdf-digest/internal/outline"
)

type wordBuilder struct {
	text     strings.Builder
	font     string
	size     float64
	x0, x1   float64
	baseline float64
}

// assembleWords merges glyphs into words. Glyphs stay in one word while they
// share font and size, sit on the same baseline within tol and follow each
// other with a horizontal gap of at most tol. Whitespace glyphs always end a
// word. PDF coordinates grow upward; the tokens use top-down coordinates.
func assembleWords(glyphs []rpdf.Text, height, tol float64) []outline.WordToken {
	var words []outline.WordToken
	var cur *wordBuilder

	flush := func() {
		if cur == nil {
			return
		}
		if text := strings.TrimSpace(norm.NFKC.String(cur.text.String())); text != "" {
			words = append(words, outline.WordToken{
				Text:     text,
				Top:      round2(height - cur.baseline - cur.size),
				Bottom:   round2(height - cur.baseline),
				X0:       round2(cur.x0),
				FontSize: cur.size,
				FontName: cur.font,
			})
		}
		cur = nil
	}

	for _, g := range glyphs {
		if strings.TrimSpace(g.S) == "" {
			flush()
			continue
		}
		size := round2(g.FontSize)
		if cur != nil && !continues(cur, g, size, tol) {
			flush()
		}
		if cur == nil {
			cur = &wordBuilder{font: g.Font, size: size, x0: g.X, baseline: g.Y}
		}
		cur.text.WriteString(g.S)
		cur.x1 = g.X + g.W
	}
	flush()
	return words
}

func continues(w *wordBuilder, g rpdf.Text, size, tol float64) bool {
	if g.Font != w.font || size != w.size {
		return false
	}
	if math.Abs(g.Y-w.baseline) > tol {
		return false
	}
	gap := g.X - w.x1
	return gap >= -tol && gap <= tol
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
