package catalog

import (
	"fmt"
	"strings"

	"github.com/quarrydev/quarry/internal/checklist"
)

// Component is a named, UI-facing grouping of related artifacts. Grouping is
// purely presentational: it never changes where an artifact lands in the
// exported archive.
type Component struct {
	Key         string
	Title       string
	Description string
	Files       []Path
}

// Validate ensures the component is well-formed.
func (c Component) Validate() error {
	if strings.TrimSpace(c.Key) == "" {
		return fmt.Errorf("catalog: component key is required")
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("catalog: component %s: title is required", c.Key)
	}
	if len(c.Files) == 0 {
		return fmt.Errorf("catalog: component %s: at least one file is required", c.Key)
	}
	for _, path := range c.Files {
		if err := path.Validate(); err != nil {
			return fmt.Errorf("catalog: component %s: %w", c.Key, err)
		}
	}
	return nil
}

// Definition declares the full catalog contents before construction. Plugins
// may append to it; New freezes and validates the result.
type Definition struct {
	Components   []Component
	ProjectFiles []Path
	Checklists   []checklist.Checklist
}

// Catalog is the constructed, immutable template catalog. It is built once at
// startup and handed to whichever component needs it; there is no package
// global.
type Catalog struct {
	components []Component
	byKey      map[string]int
	project    []Path
	checklists []checklist.Checklist
	registry   *Registry
}

// New validates the definition against the registry and returns the frozen
// catalog. Construction fails if any path is duplicated, any declared path
// lacks a generator, or any registered generator is not declared — so an
// "unknown path" cannot survive past startup.
func New(def Definition, reg *Registry) (*Catalog, error) {
	if reg == nil {
		return nil, fmt.Errorf("catalog: registry is required")
	}
	cat := &Catalog{
		byKey:    make(map[string]int, len(def.Components)),
		registry: reg,
	}

	seen := map[Path]string{}
	claim := func(path Path, owner string) error {
		if prev, dup := seen[path]; dup {
			return fmt.Errorf("catalog: %s declared by both %s and %s", path, prev, owner)
		}
		seen[path] = owner
		return nil
	}

	for _, path := range def.ProjectFiles {
		if err := path.Validate(); err != nil {
			return nil, err
		}
		if err := claim(path, "project"); err != nil {
			return nil, err
		}
		cat.project = append(cat.project, path)
	}
	for i, comp := range def.Components {
		if err := comp.Validate(); err != nil {
			return nil, err
		}
		if _, exists := cat.byKey[comp.Key]; exists {
			return nil, fmt.Errorf("catalog: duplicate component key %s", comp.Key)
		}
		for _, path := range comp.Files {
			if err := claim(path, comp.Key); err != nil {
				return nil, err
			}
		}
		cat.byKey[comp.Key] = i
		cat.components = append(cat.components, cloneComponent(comp))
	}
	for _, list := range def.Checklists {
		if err := list.Validate(); err != nil {
			return nil, err
		}
		cat.checklists = append(cat.checklists, list.Clone())
	}

	for path, owner := range seen {
		if !reg.Has(path) {
			return nil, fmt.Errorf("catalog: %s (%s) has no registered generator", path, owner)
		}
	}
	for _, path := range reg.Paths() {
		if _, declared := seen[path]; !declared {
			return nil, fmt.Errorf("catalog: generator for %s is not declared by any component", path)
		}
	}
	return cat, nil
}

// Components returns the components in definition order.
func (c *Catalog) Components() []Component {
	out := make([]Component, len(c.components))
	for i, comp := range c.components {
		out[i] = cloneComponent(comp)
	}
	return out
}

// Component looks up a component by key. A missing key is a recoverable
// condition, reported through ok rather than an error.
func (c *Catalog) Component(key string) (Component, bool) {
	idx, ok := c.byKey[key]
	if !ok {
		return Component{}, false
	}
	return cloneComponent(c.components[idx]), true
}

// Checklists returns the checklist definitions in definition order, with any
// persisted completion state not yet applied.
func (c *Catalog) Checklists() []checklist.Checklist {
	out := make([]checklist.Checklist, len(c.checklists))
	for i, list := range c.checklists {
		out[i] = list.Clone()
	}
	return out
}

// AllArtifactPaths returns every path the archive must materialize: the fixed
// project-level files followed by each component's files in definition order.
// The result is duplicate-free by construction.
func (c *Catalog) AllArtifactPaths() []Path {
	var out []Path
	out = append(out, c.project...)
	for _, comp := range c.components {
		out = append(out, comp.Files...)
	}
	return out
}

// Generate resolves content for one path through the registry.
func (c *Catalog) Generate(path Path) (string, error) {
	return c.registry.Generate(path)
}

func cloneComponent(comp Component) Component {
	clone := comp
	clone.Files = append([]Path{}, comp.Files...)
	return clone
}
