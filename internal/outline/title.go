package outline

import (
	"strings"
	"unicode/utf8"
)

// DetectTitle looks for the most prominent short line in the top third of
// the first p.TitlePages pages. The first page that yields a title ends the
// scan, so a larger line on a later page never overrides it.
func DetectTitle(pages []Page, p Params) string {
	for i := 0; i < len(pages) && i < p.TitlePages; i++ {
		if title := pageTitle(pages[i], p); title != "" {
			return strings.TrimSpace(title)
		}
	}
	return ""
}

func pageTitle(page Page, p Params) string {
	var maxSize float64
	for _, w := range page.Words {
		if w.FontSize > maxSize {
			maxSize = w.FontSize
		}
	}
	for _, line := range GroupLines(page.Words, p.LineTolerance) {
		first := line.First()
		text := line.Text()
		if first.FontSize >= maxSize*p.TitleSizeRatio &&
			utf8.RuneCountInString(text) < p.MaxLineLength &&
			first.Top < page.Height/3 {
			return text
		}
	}
	return ""
}
