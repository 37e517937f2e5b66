// Package plugins loads user-supplied template definitions from the
// .quarry/templates directory. Definitions come either as plain YAML files or
// as interpreted Go files, and are merged into the catalog's "custom"
// component before construction, so plugin templates ride through validation
// and export exactly like built-ins.
package plugins

import (
	"fmt"
	"strings"

	"github.com/quarrydev/quarry/internal/catalog"
)

// TemplateDefinition describes one plugin-contributed artifact.
//
// The struct mirrors the on-disk schema under .quarry/templates/*.yaml and is
// intentionally narrow: a path, display metadata, and the literal content the
// export should carry.
type TemplateDefinition struct {
	Path        string `json:"path" yaml:"path"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Content     string `json:"content" yaml:"content"`
}

// Normalized returns a trimmed copy of the definition. Content is kept
// verbatim apart from guaranteeing a trailing newline.
func (def TemplateDefinition) Normalized() TemplateDefinition {
	clone := TemplateDefinition{
		Path:        strings.TrimSpace(def.Path),
		Title:       strings.TrimSpace(def.Title),
		Description: strings.TrimSpace(def.Description),
		Content:     def.Content,
	}
	if clone.Content != "" && !strings.HasSuffix(clone.Content, "\n") {
		clone.Content += "\n"
	}
	return clone
}

// Validate ensures the definition is well-formed and its path is usable as a
// catalog path.
func (def TemplateDefinition) Validate() error {
	normalized := def.Normalized()
	if normalized.Path == "" {
		return fmt.Errorf("plugin: path is required")
	}
	if err := catalog.Path(normalized.Path).Validate(); err != nil {
		return fmt.Errorf("plugin: %w", err)
	}
	if strings.TrimSpace(normalized.Content) == "" {
		return fmt.Errorf("plugin %s: content is required", normalized.Path)
	}
	return nil
}
