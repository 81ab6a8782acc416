package rank

import (
	"math"
	"reflect"
	"testing"

	"github.com/thywilljoshua/pdf-digest/internal/outline"
)

func researchQuery() Query {
	return NewQuery("PhD Researcher in Biology", "identify key findings")
}

func TestNewQuery(t *testing.T) {
	q := researchQuery()
	want := []string{"biology", "findings", "identify", "key", "phd", "researcher"}
	if got := q.Keywords.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords = %v, want %v", got, want)
	}
}

func TestScoreWeights(t *testing.T) {
	docs := []Document{{Name: "a.pdf", Outline: outline.DocumentOutline{Sections: []outline.Section{
		{Level: outline.H1, Text: "Key Findings", Page: 1, Content: "cells divide faster"},
		{Level: outline.H3, Text: "Biology Notes", Page: 2, Content: "a researcher\nwrote\tthis"},
		{Level: outline.H2, Text: "Logistics", Page: 3, Content: "nothing to see"},
	}}}}
	scored := Score(docs, researchQuery(), DefaultParams())
	want := []struct {
		title string
		score float64
	}{
		// 2 title hits * 3 + "findings" job phrase bonus, boosted for H1.
		{"Key Findings", (6 + 2) * 1.2},
		// 1 title hit * 3 + 1 content hit, no boost for H3.
		{"Biology Notes", 4},
		{"Logistics", 0},
	}
	if len(scored) != len(want) {
		t.Fatalf("got %d scored sections, want %d", len(scored), len(want))
	}
	for i, w := range want {
		if scored[i].Title != w.title || math.Abs(scored[i].Score-w.score) > 1e-9 {
			t.Errorf("scored[%d] = %q %.2f, want %q %.2f", i, scored[i].Title, scored[i].Score, w.title, w.score)
		}
	}
}

func TestRankPositiveBeforeFallback(t *testing.T) {
	docs := []Document{
		{Name: "shop.pdf", Outline: outline.DocumentOutline{Sections: []outline.Section{
			{Level: outline.H1, Text: "Shipping", Page: 1, Content: "parcels leave daily"},
			{Level: outline.H1, Text: "Returns", Page: 2, Content: "send items back"},
			{Level: outline.H1, Text: "Warranty", Page: 3, Content: "two years cover"},
			{Level: outline.H1, Text: "Contact", Page: 4, Content: "call us"},
		}}},
		{Name: "paper.pdf", Outline: outline.DocumentOutline{Sections: []outline.Section{
			{Level: outline.H1, Text: "Key Findings", Page: 1},
			{Level: outline.H2, Text: "Biology Background", Page: 2},
		}}},
	}
	res := Rank(docs, researchQuery(), DefaultParams())

	want := []RankedSection{
		{Document: "paper.pdf", Page: 1, Title: "Key Findings", Rank: 1},
		{Document: "paper.pdf", Page: 2, Title: "Biology Background", Rank: 2},
		{Document: "shop.pdf", Page: 1, Title: "Shipping", Rank: 3},
		{Document: "shop.pdf", Page: 2, Title: "Returns", Rank: 4},
		{Document: "shop.pdf", Page: 3, Title: "Warranty", Rank: 5},
	}
	if !reflect.DeepEqual(res.Sections, want) {
		t.Errorf("Sections =\n%+v\nwant\n%+v", res.Sections, want)
	}
	for i, s := range res.Sections {
		if s.Rank != i+1 {
			t.Errorf("rank %d at position %d is not dense", s.Rank, i)
		}
	}
}

func TestRankKeepsAllPositive(t *testing.T) {
	var secs []outline.Section
	for i := 1; i <= 8; i++ {
		secs = append(secs, outline.Section{Level: outline.H3, Text: "Biology", Page: i})
	}
	res := Rank([]Document{{Name: "d.pdf", Outline: outline.DocumentOutline{Sections: secs}}}, researchQuery(), DefaultParams())
	if len(res.Sections) != 8 {
		t.Errorf("got %d sections, want all 8 positive ones", len(res.Sections))
	}
}

func TestRankExcerptsOnePerPage(t *testing.T) {
	content := "Cell biology is a key field of modern research. Short key one. " +
		"Another unrelated sentence without matches at all here. " +
		"The key findings show the researcher identified biology markers clearly."
	docs := []Document{{Name: "paper.pdf", Outline: outline.DocumentOutline{Sections: []outline.Section{
		{Level: outline.H1, Text: "Key Findings", Page: 3, Content: content},
		{Level: outline.H2, Text: "Biology", Page: 3, Content: content},
		{Level: outline.H3, Text: "Other", Page: 4, Content: "nothing matches in this rather long sentence here."},
	}}}}
	res := Rank(docs, researchQuery(), DefaultParams())

	if len(res.Excerpts) != 1 {
		t.Fatalf("got %d excerpts, want 1: %+v", len(res.Excerpts), res.Excerpts)
	}
	ex := res.Excerpts[0]
	want := "The key findings show the researcher identified biology markers clearly. " +
		"Cell biology is a key field of modern research."
	if ex.Document != "paper.pdf" || ex.Page != 3 || ex.RefinedText != want {
		t.Errorf("excerpt = %+v, want text %q", ex, want)
	}

	seen := map[pageKey]bool{}
	for _, e := range res.Excerpts {
		k := pageKey{e.Document, e.Page}
		if seen[k] {
			t.Errorf("duplicate excerpt for %+v", k)
		}
		seen[k] = true
	}
}

func TestRankIsDeterministic(t *testing.T) {
	docs := []Document{{Name: "x.pdf", Outline: outline.DocumentOutline{Sections: []outline.Section{
		{Level: outline.H1, Text: "Key Results", Page: 1, Content: "The key biology results were identified by each researcher today."},
		{Level: outline.H2, Text: "Findings", Page: 2, Content: "More findings about biology appear in this section of text."},
	}}}}
	a := Rank(docs, researchQuery(), DefaultParams())
	b := Rank(docs, researchQuery(), DefaultParams())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("rank is not deterministic:\n%+v\n%+v", a, b)
	}
}
