// Package plan declares the fixed delivery plan the starter kit assumes: an
// ordered sequence of phases with rough durations. The plan feeds the project
// summary export and the TUI overview; it carries no execution semantics.
package plan

import (
	"fmt"
	"strings"
)

// Phase is one ordered stage of the delivery plan.
type Phase struct {
	Name        string
	Description string
	Weeks       int
}

// Validate ensures the phase is well-formed.
func (p Phase) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("plan: phase name is required")
	}
	if p.Weeks <= 0 {
		return fmt.Errorf("plan: phase %s: weeks must be positive", p.Name)
	}
	return nil
}

// Phases returns the delivery phases in order.
func Phases() []Phase {
	return []Phase{
		{Name: "Foundation", Description: "Repo, pipelines, and environments stood up", Weeks: 2},
		{Name: "Infrastructure", Description: "Bicep stack deployed to dev and test", Weeks: 3},
		{Name: "Ingestion", Description: "Extraction and chunking pipelines running", Weeks: 3},
		{Name: "Enrichment", Description: "Cognitive enrichment and vector index populated", Weeks: 2},
		{Name: "Operations", Description: "Monitoring, runbook, and handover", Weeks: 2},
	}
}

// Names returns the ordered phase names.
func Names() []string {
	phases := Phases()
	names := make([]string, len(phases))
	for i, phase := range phases {
		names[i] = phase.Name
	}
	return names
}

// Timeline summarizes the total duration, e.g. "12 weeks across 5 phases".
func Timeline() string {
	phases := Phases()
	weeks := 0
	for _, phase := range phases {
		weeks += phase.Weeks
	}
	return fmt.Sprintf("%d weeks across %d phases", weeks, len(phases))
}
