package outline

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildNumberedIntroduction(t *testing.T) {
	page := makePage(1,
		makeLine("1. Introduction", 72, 400, 18, "Helvetica-Bold"),
		makeLine("This paragraph explains the research background in detail.", 72, 430, 10, "Helvetica"),
		makeLine("It continues on a second line of body text.", 72, 444, 10, "Helvetica"),
	)
	out, err := Build([]Page{page}, DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if out.Title != "" {
		t.Errorf("Title = %q, want empty", out.Title)
	}
	if len(out.Sections) != 1 {
		t.Fatalf("got %d sections, want 1: %+v", len(out.Sections), out.Sections)
	}
	sec := out.Sections[0]
	if sec.Level != H1 || sec.Text != "1. Introduction" || sec.Page != 1 {
		t.Errorf("section = %+v", sec)
	}
	want := "This paragraph explains the research background in detail.\nIt continues on a second line of body text."
	if sec.Content != want {
		t.Errorf("Content = %q, want %q", sec.Content, want)
	}
}

func TestBuildSkipsTitleAndRepeatedHeadings(t *testing.T) {
	pages := []Page{
		makePage(1,
			makeLine("Field Guide", 72, 50, 24, "Helvetica-Bold"),
			makeLine("text before any heading is dropped", 100, 120, 10, "Helvetica"),
			makeLine("Results", 72, 300, 16, "Helvetica-Bold"),
			makeLine("Results and Discussion", 72, 330, 16, "Helvetica-Bold"),
			makeLine("measurements were taken every morning", 100, 360, 10, "Helvetica"),
		),
		makePage(2,
			makeLine("Field Guide", 72, 50, 24, "Helvetica-Bold"),
			makeLine("Methods", 72, 300, 16, "Helvetica-Bold"),
			makeLine("samples were collected by hand", 100, 330, 10, "Helvetica"),
		),
	}
	out, err := Build(pages, DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if out.Title != "Field Guide" {
		t.Errorf("Title = %q, want Field Guide", out.Title)
	}
	if len(out.Sections) != 2 {
		t.Fatalf("got %d sections, want 2: %+v", len(out.Sections), out.Sections)
	}
	if s := out.Sections[0]; s.Text != "Results" || s.Level != H2 || s.Page != 1 ||
		s.Content != "measurements were taken every morning" {
		t.Errorf("section 0 = %+v", s)
	}
	if s := out.Sections[1]; s.Text != "Methods" || s.Page != 2 || s.Content != "samples were collected by hand" {
		t.Errorf("section 1 = %+v", s)
	}
	for _, s := range out.Sections {
		if strings.EqualFold(s.Text, out.Title) {
			t.Errorf("section %q repeats the title", s.Text)
		}
	}
}

func TestBuildShortLinesBecomeContent(t *testing.T) {
	page := makePage(1,
		makeLine("Overview", 72, 300, 16, "Helvetica-Bold"),
		makeLine("ok", 72, 330, 16, "Helvetica-Bold"),
		makeLine("the rest of the paragraph", 100, 345, 10, "Helvetica"),
	)
	out, err := Build([]Page{page}, DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Sections) != 1 {
		t.Fatalf("got %d sections, want 1: %+v", len(out.Sections), out.Sections)
	}
	if got, want := out.Sections[0].Content, "ok\nthe rest of the paragraph"; got != want {
		t.Errorf("Content = %q, want %q", got, want)
	}
}

func TestBuildNoLayoutSignal(t *testing.T) {
	out, err := Build([]Page{{Number: 1, Height: 792}}, DefaultParams())
	if !errors.Is(err, ErrNoLayoutSignal) {
		t.Fatalf("err = %v, want ErrNoLayoutSignal", err)
	}
	if out.Title != "" || len(out.Sections) != 0 {
		t.Errorf("outline = %+v, want empty", out)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	pages := []Page{makePage(1,
		makeLine("Scope", 72, 300, 16, "Helvetica-Bold"),
		makeLine("details about the scope of work", 100, 330, 10, "Helvetica"),
		makeLine("Budget", 72, 380, 14, "Helvetica-Bold"),
		makeLine("figures and totals for the year", 100, 410, 10, "Helvetica"),
	)}
	a, err := Build(pages, DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Build(pages, DefaultParams())
	if len(a.Sections) != len(b.Sections) {
		t.Fatalf("runs differ: %+v vs %+v", a, b)
	}
	for i := range a.Sections {
		if a.Sections[i] != b.Sections[i] {
			t.Errorf("section %d differs: %+v vs %+v", i, a.Sections[i], b.Sections[i])
		}
	}
}

func TestTree(t *testing.T) {
	flat := []Section{
		{Level: H1, Text: "A"},
		{Level: H2, Text: "A.1"},
		{Level: H3, Text: "A.1.a"},
		{Level: H2, Text: "A.2"},
		{Level: H1, Text: "B"},
		{Level: H3, Text: "B.x"},
	}
	tree := Tree(flat)
	if len(tree) != 2 {
		t.Fatalf("got %d roots, want 2", len(tree))
	}
	a := tree[0]
	if a.Text != "A" || len(a.Children) != 2 {
		t.Fatalf("root A = %+v", a)
	}
	if len(a.Children[0].Children) != 1 || a.Children[0].Children[0].Text != "A.1.a" {
		t.Errorf("A.1 children = %+v", a.Children[0].Children)
	}
	if b := tree[1]; b.Text != "B" || len(b.Children) != 1 || b.Children[0].Text != "B.x" {
		t.Errorf("root B = %+v", b)
	}

	tree = Tree([]Section{{Level: H3, Text: "x"}, {Level: H1, Text: "y"}})
	if len(tree) != 2 {
		t.Errorf("H3 before H1 should give two roots, got %+v", tree)
	}
}

func TestFoldStateIsPersistent(t *testing.T) {
	base := newFoldState().openSection(Section{Level: H1, Text: "Intro", Page: 1})
	withText := base.appendContent("first paragraph")
	branch := base.appendContent("other paragraph")

	left := withText.finish()
	right := branch.finish()
	if left[0].Content != "first paragraph" || right[0].Content != "other paragraph" {
		t.Errorf("branches interfered: %q / %q", left[0].Content, right[0].Content)
	}
	if got := base.sections[0].Content; got != "" {
		t.Errorf("base state mutated: Content = %q", got)
	}

	next := withText.openSection(Section{Level: H2, Text: "Details", Page: 1})
	if len(withText.sections) != 1 || withText.sections[0].Content != "" {
		t.Errorf("openSection mutated the previous state: %+v", withText.sections)
	}
	if len(next.sections) != 2 || next.sections[0].Content != "first paragraph" {
		t.Errorf("next = %+v", next.sections)
	}
}
