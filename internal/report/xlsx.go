package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the report as a workbook with Metadata, Sections and
// Excerpts sheets.
func WriteXLSX(path string, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	meta := [][]any{
		{"Input Documents", strings.Join(r.Metadata.InputDocuments, ", ")},
		{"Role", r.Metadata.Persona.Role},
		{"Expertise", r.Metadata.Persona.Expertise},
		{"Focus Areas", r.Metadata.Persona.FocusAreas},
		{"Job To Be Done", r.Metadata.JobToBeDone},
		{"Processed At", r.Metadata.ProcessingTimestamp},
	}
	if err := writeSheet(f, "Metadata", nil, meta); err != nil {
		return err
	}

	var sections [][]any
	for _, s := range r.ExtractedSections {
		sections = append(sections, []any{s.ImportanceRank, s.Document, s.PageNumber, s.SectionTitle})
	}
	if err := writeSheet(f, "Sections", []string{"Rank", "Document", "Page", "Section Title"}, sections); err != nil {
		return err
	}

	var excerpts [][]any
	for _, e := range r.SubSectionAnalysis {
		excerpts = append(excerpts, []any{e.Document, e.PageNumber, e.RefinedText})
	}
	if err := writeSheet(f, "Excerpts", []string{"Document", "Page", "Refined Text"}, excerpts); err != nil {
		return err
	}

	_ = f.SetColWidth("Metadata", "A", "A", 18)
	_ = f.SetColWidth("Metadata", "B", "B", 80)
	_ = f.SetColWidth("Sections", "B", "B", 32)
	_ = f.SetColWidth("Sections", "D", "D", 60)
	_ = f.SetColWidth("Excerpts", "A", "A", 32)
	_ = f.SetColWidth("Excerpts", "C", "C", 100)

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsx cleanup: %w", err)
	}
	if idx, err := f.GetSheetIndex("Sections"); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("xlsx sheet %s: %w", sheet, err)
	}
	row := 1
	if len(headers) > 0 {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, h)
		}
		row++
	}
	for _, values := range rows {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("xlsx cell %s!%s: %w", sheet, cell, err)
			}
		}
		row++
	}
	return nil
}
