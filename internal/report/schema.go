package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["metadata", "extracted_sections", "sub_section_analysis"],
  "properties": {
    "metadata": {
      "type": "object",
      "required": ["input_documents", "persona", "job_to_be_done", "processing_timestamp"],
      "properties": {
        "input_documents": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}},
        "persona": {
          "type": "object",
          "required": ["role", "expertise", "focus_areas"],
          "properties": {
            "role": {"type": "string"},
            "expertise": {"type": "string"},
            "focus_areas": {"type": "string"}
          }
        },
        "job_to_be_done": {"type": "string", "minLength": 1},
        "processing_timestamp": {"type": "string", "minLength": 1}
      }
    },
    "extracted_sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["document", "page_number", "section_title", "importance_rank"],
        "properties": {
          "document": {"type": "string"},
          "page_number": {"type": "integer", "minimum": 1},
          "section_title": {"type": "string"},
          "importance_rank": {"type": "integer", "minimum": 1}
        }
      }
    },
    "sub_section_analysis": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["document", "page_number", "refined_text"],
        "properties": {
          "document": {"type": "string"},
          "page_number": {"type": "integer", "minimum": 1},
          "refined_text": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("report.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile("report.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// Validate checks the report's JSON form against the report schema and the
// one-excerpt-per-page rule.
func Validate(r Report) error {
	s, err := compiled()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	var v any
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		return fmt.Errorf("unmarshal report: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("report does not match schema: %w", err)
	}

	type key struct {
		doc  string
		page int
	}
	seen := make(map[key]bool, len(r.SubSectionAnalysis))
	for _, e := range r.SubSectionAnalysis {
		k := key{e.Document, e.PageNumber}
		if seen[k] {
			return fmt.Errorf("duplicate excerpt for %s page %d", e.Document, e.PageNumber)
		}
		seen[k] = true
	}
	return nil
}
