package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing GOOGLE_API_KEY")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: c, model: model}, nil
}

func (g *Gemini) prompt(ctx context.Context, text string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}, nil)
	if err != nil {
		return "", err
	}
	return res.Text(), nil
}

// StructurePersona asks the model to fill the persona shape. The reply must
// be a single JSON object; code fences and surrounding chatter are tolerated.
func (g *Gemini) StructurePersona(ctx context.Context, persona, job string) (Persona, error) {
	var out Persona
	if g.client == nil {
		return out, errors.New("gemini not configured")
	}
	prompt := `Return ONLY valid JSON - no markdown code blocks, no explanations.

Describe the reader below with this exact structure:
{"role": "short job title", "expertise": "comma separated domains", "focus_areas": "comma separated topics from the task"}

Reader: ` + persona + `
Task: ` + job + `
`
	js, err := g.prompt(ctx, prompt)
	if err != nil {
		return out, fmt.Errorf("gemini API call failed: %w", err)
	}
	js = stripCodeFences(js)
	if err := json.Unmarshal([]byte(js), &out); err != nil {
		s := findFirstJSON(js)
		if s == "" {
			return out, fmt.Errorf("failed to parse Gemini response - no JSON found: %w", err)
		}
		if err2 := json.Unmarshal([]byte(s), &out); err2 != nil {
			return out, fmt.Errorf("failed to parse Gemini response as JSON: %w (original error: %v)", err2, err)
		}
	}
	return out, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// findFirstJSON returns the first balanced {...} block in s.
func findFirstJSON(s string) string {
	start := -1
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			if start == -1 {
				start = i
			}
			depth++
		case '}':
			if start != -1 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
