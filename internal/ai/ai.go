package ai

import "context"

// Persona is the fixed shape a free-text persona is reduced to.
type Persona struct {
	Role       string `json:"role"`
	Expertise  string `json:"expertise"`
	FocusAreas string `json:"focus_areas"`
}

// Enhancer refines metadata that the heuristics only approximate. It never
// takes part in ranking.
type Enhancer interface {
	StructurePersona(ctx context.Context, persona, job string) (Persona, error)
}

type Noop struct{}

func (Noop) StructurePersona(ctx context.Context, persona, job string) (Persona, error) {
	return Persona{}, nil
}
