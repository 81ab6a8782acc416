package rank

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/thywilljoshua/pdf-digest/internal/keywords"
)

var (
	lowerUpperRe  = regexp.MustCompile(`([a-z])([A-Z])`)
	digitLetterRe = regexp.MustCompile(`([0-9])([a-zA-Z])`)
	letterDigitRe = regexp.MustCompile(`([a-zA-Z])([0-9])`)
	punctAlnumRe  = regexp.MustCompile(`([.,;?!])([a-zA-Z0-9])`)
)

// NormalizeSpace collapses every whitespace run into one space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RepairConcatenation puts spaces back where PDF extraction glued words
// together: "DataSet2023Results" becomes "Data Set 2023 Results".
func RepairConcatenation(s string) string {
	s = lowerUpperRe.ReplaceAllString(s, "${1} ${2}")
	s = digitLetterRe.ReplaceAllString(s, "${1} ${2}")
	s = letterDigitRe.ReplaceAllString(s, "${1} ${2}")
	s = punctAlnumRe.ReplaceAllString(s, "${1} ${2}")
	return s
}

// SplitSentences splits on whitespace that follows '.', '!' or '?'.
// Empty pieces are dropped.
func SplitSentences(s string) []string {
	var out []string
	runes := []rune(s)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !unicode.IsSpace(runes[i]) || i == 0 || !isSentenceEnd(runes[i-1]) {
			continue
		}
		if piece := strings.TrimSpace(string(runes[start:i])); piece != "" {
			out = append(out, piece)
		}
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		start = i
		i--
	}
	if piece := strings.TrimSpace(string(runes[start:])); piece != "" {
		out = append(out, piece)
	}
	return out
}

func isSentenceEnd(r rune) bool { return r == '.' || r == '!' || r == '?' }

type pageKey struct {
	document string
	page     int
}

// summarizer picks excerpt sentences and remembers which pages already
// produced one.
type summarizer struct {
	query keywords.Set
	p     Params
	seen  map[pageKey]bool
}

func newSummarizer(q Query, p Params) *summarizer {
	return &summarizer{query: q.Keywords, p: p, seen: make(map[pageKey]bool)}
}

type scoredSentence struct {
	text  string
	score int
}

func (s *summarizer) summarize(sec ScoredSection) (Excerpt, bool) {
	key := pageKey{sec.Document, sec.Page}
	if s.seen[key] {
		return Excerpt{}, false
	}

	text := RepairConcatenation(NormalizeSpace(sec.Content))
	var sentences []scoredSentence
	for _, st := range SplitSentences(text) {
		sentences = append(sentences, scoredSentence{
			text:  st,
			score: s.query.CountIn(keywords.Extract(st)),
		})
	}
	sort.SliceStable(sentences, func(i, j int) bool { return sentences[i].score > sentences[j].score })

	var picked []string
	for _, st := range sentences {
		if st.score > 0 && len(strings.Fields(st.text)) > s.p.MinSentenceWords {
			picked = append(picked, st.text)
			if len(picked) >= s.p.MaxSentences {
				break
			}
		}
	}
	if len(picked) == 0 {
		return Excerpt{}, false
	}
	s.seen[key] = true
	return Excerpt{Document: sec.Document, Page: sec.Page, RefinedText: strings.Join(picked, " ")}, true
}
