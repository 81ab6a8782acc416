// Package rank scores outline sections against a persona/job query and picks
// the most relevant sentences of the winners.
package rank

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/thywilljoshua/pdf-digest/internal/keywords"
	"github.com/thywilljoshua/pdf-digest/internal/outline"
)

// Query is the persona/job pair with its extracted keywords.
type Query struct {
	Persona  string
	Job      string
	Keywords keywords.Set
}

func NewQuery(persona, job string) Query {
	return Query{
		Persona:  persona,
		Job:      job,
		Keywords: keywords.Extract(persona).Union(keywords.Extract(job)),
	}
}

// Document is one input file's outline.
type Document struct {
	Name    string
	Outline outline.DocumentOutline
}

type ScoredSection struct {
	Document string
	Page     int
	Title    string
	Level    outline.Level
	Content  string
	Score    float64
}

type RankedSection struct {
	Document string
	Page     int
	Title    string
	Rank     int
}

type Excerpt struct {
	Document    string
	Page        int
	RefinedText string
}

type Result struct {
	Sections []RankedSection
	Excerpts []Excerpt
}

// Score rates every section of every document and sorts them by descending
// score. Ties keep document order, then outline order.
func Score(docs []Document, q Query, p Params) []ScoredSection {
	p = p.WithDefaults()
	phrases := jobPhrases(q.Job, p.JobPhraseMinLen)

	var out []ScoredSection
	for _, d := range docs {
		for _, sec := range d.Outline.Sections {
			out = append(out, ScoredSection{
				Document: d.Name,
				Page:     sec.Page,
				Title:    sec.Text,
				Level:    sec.Level,
				Content:  sec.Content,
				Score:    sectionScore(sec, q, phrases, p),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func sectionScore(sec outline.Section, q Query, phrases []string, p Params) float64 {
	title := keywords.Extract(sec.Text)
	content := keywords.Extract(NormalizeSpace(sec.Content))

	score := p.TitleWeight*float64(q.Keywords.CountIn(title)) +
		p.ContentWeight*float64(q.Keywords.CountIn(content))

	lowerTitle := strings.ToLower(sec.Text)
	for _, ph := range phrases {
		if strings.Contains(lowerTitle, ph) {
			score += p.JobPhraseBonus
			break
		}
	}
	if (sec.Level == outline.H1 || sec.Level == outline.H2) && score > 0 {
		score *= p.LevelBoost
	}
	return score
}

// jobPhrases returns the lowercased whitespace-separated job words longer
// than minLen runes.
func jobPhrases(job string, minLen int) []string {
	var out []string
	for _, f := range strings.Fields(job) {
		if utf8.RuneCountInString(f) > minLen {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}

// Rank scores all sections and keeps those with a positive score plus the
// first p.MinResults overall, so there is always something to report. Each
// kept section may contribute one excerpt for its (document, page).
func Rank(docs []Document, q Query, p Params) Result {
	p = p.WithDefaults()
	scored := Score(docs, q, p)

	var res Result
	sum := newSummarizer(q, p)
	for i, sec := range scored {
		if sec.Score <= 0 && i >= p.MinResults {
			continue
		}
		res.Sections = append(res.Sections, RankedSection{
			Document: sec.Document,
			Page:     sec.Page,
			Title:    sec.Title,
			Rank:     i + 1,
		})
		if ex, ok := sum.summarize(sec); ok {
			res.Excerpts = append(res.Excerpts, ex)
		}
	}
	return res
}
