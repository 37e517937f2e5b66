package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/quarrydev/quarry/internal/catalog"
	"github.com/quarrydev/quarry/internal/fsutil"
	"github.com/quarrydev/quarry/internal/plan"
)

// SummaryName is the fixed file name of the exported project summary.
const SummaryName = "project-summary.json"

// Summary is the secondary deliverable exported alongside the archive: a
// small JSON description of the kit and the delivery plan it assumes.
type Summary struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Created     string   `json:"created"`
	ExportID    string   `json:"exportId"`
	Components  []string `json:"components"`
	Timeline    string   `json:"timeline"`
	Phases      []string `json:"phases"`
}

// ProjectMeta carries the identity stamped into the summary.
type ProjectMeta struct {
	Name        string
	Version     string
	Description string
}

// BuildSummary assembles the summary for the given catalog and project
// identity. The export ID is a fresh UUID so separate exports can be told
// apart in the logbook.
func BuildSummary(cat *catalog.Catalog, meta ProjectMeta, now time.Time) Summary {
	components := cat.Components()
	keys := make([]string, len(components))
	for i, comp := range components {
		keys[i] = comp.Key
	}
	return Summary{
		Name:        meta.Name,
		Version:     meta.Version,
		Description: meta.Description,
		Created:     now.UTC().Format(time.RFC3339),
		ExportID:    uuid.New().String(),
		Components:  keys,
		Timeline:    plan.Timeline(),
		Phases:      plan.Names(),
	}
}

// Encode renders the summary as indented JSON.
func (s Summary) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("archive: encode summary: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile writes the summary into dir under its fixed name and returns the
// full path.
func (s Summary) WriteFile(dir string) (string, error) {
	data, err := s.Encode()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("archive: ensure export dir: %w", err)
	}
	path := filepath.Join(dir, SummaryName)
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("archive: %w", err)
	}
	return path, nil
}
