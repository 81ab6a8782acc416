// Package report assembles, validates and writes the ranked digest.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/thywilljoshua/pdf-digest/internal/persona"
	"github.com/thywilljoshua/pdf-digest/internal/rank"
)

type Report struct {
	Metadata           Metadata            `json:"metadata"`
	ExtractedSections  []ExtractedSection  `json:"extracted_sections"`
	SubSectionAnalysis []SubSectionExcerpt `json:"sub_section_analysis"`
}

type Metadata struct {
	InputDocuments      []string        `json:"input_documents"`
	Persona             persona.Profile `json:"persona"`
	JobToBeDone         string          `json:"job_to_be_done"`
	ProcessingTimestamp string          `json:"processing_timestamp"`
}

type ExtractedSection struct {
	Document       string `json:"document"`
	PageNumber     int    `json:"page_number"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
}

type SubSectionExcerpt struct {
	Document    string `json:"document"`
	PageNumber  int    `json:"page_number"`
	RefinedText string `json:"refined_text"`
}

// Build lays the ranking result out in report order.
func Build(documents []string, p persona.Profile, job string, res rank.Result, at time.Time) Report {
	r := Report{
		Metadata: Metadata{
			InputDocuments:      append([]string{}, documents...),
			Persona:             p,
			JobToBeDone:         job,
			ProcessingTimestamp: at.Format(time.RFC3339Nano),
		},
		ExtractedSections:  make([]ExtractedSection, 0, len(res.Sections)),
		SubSectionAnalysis: make([]SubSectionExcerpt, 0, len(res.Excerpts)),
	}
	for _, s := range res.Sections {
		r.ExtractedSections = append(r.ExtractedSections, ExtractedSection{
			Document:       s.Document,
			PageNumber:     s.Page,
			SectionTitle:   s.Title,
			ImportanceRank: s.Rank,
		})
	}
	for _, e := range res.Excerpts {
		r.SubSectionAnalysis = append(r.SubSectionAnalysis, SubSectionExcerpt{
			Document:    e.Document,
			PageNumber:  e.Page,
			RefinedText: e.RefinedText,
		})
	}
	return r
}

// Encode writes r as indented JSON without HTML escaping.
func Encode(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// WriteJSON validates r and writes it to path.
func WriteJSON(path string, r Report) error {
	if err := Validate(r); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, r); err != nil {
		f.Close()
		return fmt.Errorf("encode report: %w", err)
	}
	return f.Close()
}
