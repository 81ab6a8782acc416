package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var numberedSection = regexp.MustCompile(`^\d+(\.\d+)*\s+[A-Za-z]`)

var boldMarkers = []string{"bold", "black", "demi", "heavy"}

// IsBold reports whether a font name denotes a heavy weight.
func IsBold(fontName string) bool {
	name := strings.ToLower(fontName)
	for _, m := range boldMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// LineContext is what Score needs to know about a line's surroundings.
type LineContext struct {
	Profile  StyleProfile
	GapAbove float64
	AvgGap   float64
}

// Score is the additive heading heuristic for one line.
func Score(line Line, ctx LineContext, p Params) float64 {
	first := line.First()
	text := line.Text()
	body := ctx.Profile.BodyFontSize

	var score float64
	if first.FontSize > body*p.BodySizeRatio {
		score += 2
		switch ctx.Profile.headingRank(first.FontSize) {
		case 0:
			score += 3
		case 1:
			score += 2
		case 2:
			score++
		}
	}
	if IsBold(first.FontName) {
		score += 2
	}
	if first.Fill.Valid() && !ctx.Profile.isCommonColor(first.Fill) {
		score++
	}
	if first.X0 < p.IndentLimit {
		score++
	}
	if ctx.GapAbove > ctx.AvgGap*p.GapRatio {
		score++
	}

	lower := strings.ToLower(text)
	if isUpper(text) && utf8.RuneCountInString(text) < p.UpperMaxLength {
		score += 1.5
	} else if isTitle(text) && !strings.HasPrefix(lower, "the ") && !strings.HasPrefix(lower, "a ") {
		score++
	}

	if numberedSection.MatchString(text) {
		score += 2
	}
	return score
}

// IsHeading applies the score threshold and the bold fallback, which catches
// bold lines only slightly larger than body text that stand out by spacing or
// numbering instead.
func IsHeading(line Line, ctx LineContext, p Params) bool {
	if Score(line, ctx, p) >= p.HeadingScore {
		return true
	}
	first := line.First()
	return first.FontSize > ctx.Profile.BodyFontSize &&
		IsBold(first.FontName) &&
		(ctx.GapAbove > ctx.AvgGap*p.FallbackGapRatio || numberedSection.MatchString(line.Text()))
}

// rejected reports whether a line's text is too short or too long to ever
// be a heading.
func rejected(text string, p Params) bool {
	n := utf8.RuneCountInString(text)
	return n == 0 || n > p.MaxLineLength || n < p.MinLineLength
}

// isUpper: at least one cased rune and no lowercase ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// isTitle: every uppercase rune starts a word and every lowercase rune
// follows a cased one, with at least one cased rune overall.
func isTitle(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased = true
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}
