package outline

import (
	"slices"
	"strings"
)

// Build infers the outline of one document in three passes: a style profile
// over the first pages, a title scan, then a fold over every line that turns
// headings into sections and feeds the rest into the open section.
//
// When the document has no font information Build returns an empty outline
// together with ErrNoLayoutSignal.
func Build(pages []Page, p Params) (DocumentOutline, error) {
	p = p.WithDefaults()

	profile, err := Profile(pages, p)
	if err != nil {
		return DocumentOutline{}, err
	}
	title := DetectTitle(pages, p)

	st := newFoldState()
	for i, page := range pages {
		if page.Number == 0 {
			page.Number = i + 1
		}
		st = foldPage(st, page, profile, title, p)
	}
	return DocumentOutline{Title: title, Sections: st.finish()}, nil
}

// foldState is the accumulator threaded through the line fold.
type foldState struct {
	sections []Section
	open     int
	buf      []string
}

func newFoldState() foldState { return foldState{open: -1} }

func (s foldState) appendContent(text string) foldState {
	if s.open < 0 {
		return s
	}
	s.buf = append(slices.Clip(s.buf), text)
	return s
}

// duplicates reports whether text repeats or continues the last heading.
func (s foldState) duplicates(text string) bool {
	if len(s.sections) == 0 {
		return false
	}
	last := strings.ToLower(s.sections[len(s.sections)-1].Text)
	lower := strings.ToLower(text)
	return lower == last || strings.HasPrefix(lower, last)
}

// openSection and flush copy the section slice before writing so that
// earlier states never observe the change.
func (s foldState) openSection(sec Section) foldState {
	s = s.flush()
	s.sections = append(slices.Clip(s.sections), sec)
	s.open = len(s.sections) - 1
	return s
}

func (s foldState) flush() foldState {
	if s.open >= 0 && len(s.buf) > 0 {
		s.sections = slices.Clone(s.sections)
		s.sections[s.open].Content = strings.TrimSpace(strings.Join(s.buf, "\n"))
	}
	s.buf = nil
	return s
}

func (s foldState) finish() []Section {
	return s.flush().sections
}

func foldPage(st foldState, page Page, profile StyleProfile, title string, p Params) foldState {
	lines := GroupLines(page.Words, p.LineTolerance)
	gaps := gapsAbove(lines)
	avg := averageGap(gaps, p.DefaultGap)
	lowerTitle := strings.ToLower(title)

	for i, line := range lines {
		text := line.Text()
		if rejected(text, p) {
			st = st.appendContent(text)
			continue
		}

		ctx := LineContext{Profile: profile, GapAbove: gaps[i], AvgGap: avg}
		if !IsHeading(line, ctx, p) {
			st = st.appendContent(text)
			continue
		}

		if title != "" && strings.ToLower(text) == lowerTitle {
			continue
		}
		if st.duplicates(text) {
			continue
		}
		st = st.openSection(Section{
			Level: profile.LevelFor(line.First().FontSize),
			Text:  text,
			Page:  page.Number,
		})
	}
	return st
}
