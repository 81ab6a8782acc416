// Package persona reduces the free-text persona and job descriptions to the
// role/expertise/focus-areas shape carried in the report metadata.
package persona

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/thywilljoshua/pdf-digest/internal/ai"
	"github.com/thywilljoshua/pdf-digest/internal/keywords"
)

type Profile = ai.Persona

// KnownRoles are matched verbatim before falling back to the leading clause.
var KnownRoles = []string{
	"PhD Researcher",
	"Investment Analyst",
	"Undergraduate Chemistry Student",
	"Travel Planner",
	"HR Professional",
	"Food Contractor",
	"Journalist",
}

var expertiseRe = regexp.MustCompile(`\bin\s+(.+)`)

// Parse is the rule-based structurer.
func Parse(persona, job string) Profile {
	persona = strings.TrimSpace(persona)
	p := Profile{
		Role:       role(persona),
		FocusAreas: strings.Join(keywords.Extract(job).Sorted(), ", "),
	}
	if m := expertiseRe.FindStringSubmatch(persona); m != nil {
		p.Expertise = strings.TrimSpace(strings.TrimRight(m[1], "."))
	}
	return p
}

func role(persona string) string {
	for _, r := range KnownRoles {
		if strings.Contains(persona, r) {
			return r
		}
	}
	lead := persona
	if i := strings.Index(lead, " in "); i >= 0 {
		lead = lead[:i]
	}
	if i := strings.Index(lead, ","); i >= 0 {
		lead = lead[:i]
	}
	return strings.TrimSpace(lead)
}

// Structure runs Parse and lets the enhancer override any field it fills.
// Enhancer failures are logged and the rule-based profile is kept.
func Structure(ctx context.Context, enh ai.Enhancer, persona, job string, logger *slog.Logger) Profile {
	if logger == nil {
		logger = slog.Default()
	}
	p := Parse(persona, job)
	if enh == nil {
		return p
	}
	refined, err := enh.StructurePersona(ctx, persona, job)
	if err != nil {
		logger.Warn("persona.enhance.failed", "error", err)
		return p
	}
	if v := strings.TrimSpace(refined.Role); v != "" {
		p.Role = v
	}
	if v := strings.TrimSpace(refined.Expertise); v != "" {
		p.Expertise = v
	}
	if v := strings.TrimSpace(refined.FocusAreas); v != "" {
		p.FocusAreas = v
	}
	return p
}
