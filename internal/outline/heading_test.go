package outline

import "testing"

func TestIsBold(t *testing.T) {
	tests := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"ABCDEF+Arial-BoldMT", true},
		{"Lato-Black", true},
		{"AvenirNext-DemiBold", true},
		{"Roboto-Heavy", true},
		{"Times-Roman", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsBold(tt.font); got != tt.want {
			t.Errorf("IsBold(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}

func TestTextShape(t *testing.T) {
	tests := []struct {
		text         string
		upper, title bool
	}{
		{"INTRODUCTION", true, false},
		{"1. OVERVIEW", true, false},
		{"Introduction", false, true},
		{"Getting Started", false, true},
		{"1. Introduction", false, true},
		{"Getting started", false, false},
		{"iPhone Sales", false, false},
		{"2024", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := isUpper(tt.text); got != tt.upper {
			t.Errorf("isUpper(%q) = %v, want %v", tt.text, got, tt.upper)
		}
		if got := isTitle(tt.text); got != tt.title {
			t.Errorf("isTitle(%q) = %v, want %v", tt.text, got, tt.title)
		}
	}
}

func TestScore(t *testing.T) {
	prof := StyleProfile{BodyFontSize: 10, HeadingSizes: []float64{18, 14, 12}}
	ctx := LineContext{Profile: prof, GapAbove: 0, AvgGap: 5}
	p := DefaultParams()

	tests := []struct {
		name string
		line Line
		ctx  LineContext
		want float64
	}{
		{
			name: "plain body line",
			line: makeLine("the quick brown fox", 100, 300, 10, "Times"),
			ctx:  ctx,
			want: 0,
		},
		{
			name: "h1 size bold indented title case",
			line: makeLine("Methods", 72, 300, 18, "Times-Bold"),
			ctx:  ctx,
			want: 2 + 3 + 2 + 1 + 1,
		},
		{
			name: "h3 size all caps",
			line: makeLine("RESULTS", 100, 300, 12, "Times"),
			ctx:  ctx,
			want: 2 + 1 + 1.5,
		},
		{
			name: "numbered section with gap above",
			line: makeLine("2.1 overview of data", 100, 300, 10, "Times"),
			ctx:  LineContext{Profile: prof, GapAbove: 20, AvgGap: 5},
			want: 1 + 2,
		},
		{
			name: "title case starting with The gets nothing",
			line: makeLine("The End", 100, 300, 10, "Times"),
			ctx:  ctx,
			want: 0,
		},
		{
			name: "size just above body but under ratio",
			line: makeLine("tiny bump", 100, 300, 10.4, "Times"),
			ctx:  ctx,
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.line, tt.ctx, p); got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreDistinctColor(t *testing.T) {
	prof := StyleProfile{BodyFontSize: 10, CommonColors: []Color{Gray(0)}}
	p := DefaultParams()
	line := makeLine("accent words", 100, 300, 10, "Times")
	line[0].Fill = RGB(0.8, 0, 0)
	if got := Score(line, LineContext{Profile: prof, AvgGap: 5}, p); got != 1 {
		t.Errorf("Score() with distinctive colour = %v, want 1", got)
	}
	line[0].Fill = Gray(0)
	if got := Score(line, LineContext{Profile: prof, AvgGap: 5}, p); got != 0 {
		t.Errorf("Score() with common colour = %v, want 0", got)
	}
}

func TestIsHeadingFallback(t *testing.T) {
	prof := StyleProfile{BodyFontSize: 10, HeadingSizes: []float64{10.2}}
	p := DefaultParams()
	// 10.2 is above body but below the 1.05 ratio: score is bold(2) only.
	line := makeLine("some bold words", 100, 300, 10.2, "Arial-Bold")

	if IsHeading(line, LineContext{Profile: prof, GapAbove: 6, AvgGap: 5}, p) {
		t.Error("bold line without spacing cue should not be a heading")
	}
	if !IsHeading(line, LineContext{Profile: prof, GapAbove: 11, AvgGap: 5}, p) {
		t.Error("bold line with a wide gap above should be a heading")
	}
	numbered := makeLine("3 bold words", 100, 300, 10.2, "Arial-Bold")
	if !IsHeading(numbered, LineContext{Profile: prof, AvgGap: 5}, p) {
		t.Error("bold numbered line should be a heading")
	}
	plain := makeLine("3 plain words", 100, 300, 10.2, "Arial")
	if IsHeading(plain, LineContext{Profile: prof, GapAbove: 11, AvgGap: 5}, p) {
		t.Error("non-bold line must not use the fallback")
	}
}
