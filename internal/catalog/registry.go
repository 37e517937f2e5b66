package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// Generator produces the full text content for one artifact. Generators take
// no arguments: content is a pure function of the template definition, except
// for the handful that stamp the current date into their output. A returned
// error aborts the surrounding export.
type Generator func() (string, error)

// Registry maps artifact paths to their content generators.
type Registry struct {
	mu         sync.RWMutex
	generators map[Path]Generator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{generators: map[Path]Generator{}}
}

// Register installs a generator. Returns an error if the path is malformed or
// already registered.
func (r *Registry) Register(path Path, gen Generator) error {
	if err := path.Validate(); err != nil {
		return err
	}
	if gen == nil {
		return fmt.Errorf("catalog: generator is required for %s", path)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.generators[path]; exists {
		return fmt.Errorf("catalog: %s already registered", path)
	}
	r.generators[path] = gen
	return nil
}

// MustRegister panics if registration fails. Built-in templates use this at
// wiring time so a duplicate path is caught before the app starts.
func (r *Registry) MustRegister(path Path, gen Generator) {
	if err := r.Register(path, gen); err != nil {
		panic(err)
	}
}

// Has reports whether a generator is registered for path.
func (r *Registry) Has(path Path) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.generators[path]
	return ok
}

// Generate returns the content for path. An unregistered path yields a marked
// placeholder rather than an error, so one missing generator never blocks the
// rest of an export. A generator that itself fails returns an error, which
// aborts the export.
func (r *Registry) Generate(path Path) (string, error) {
	r.mu.RLock()
	gen, ok := r.generators[path]
	r.mu.RUnlock()
	if !ok {
		return Placeholder(path), nil
	}
	content, err := gen()
	if err != nil {
		return "", fmt.Errorf("catalog: generate %s: %w", path, err)
	}
	return content, nil
}

// Paths returns the registered paths in sorted order.
func (r *Registry) Paths() []Path {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]Path, 0, len(r.generators))
	for path := range r.generators {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })
	return paths
}

// Placeholder is the content emitted for a path with no registered generator.
func Placeholder(path Path) string {
	return fmt.Sprintf("# content not found\n\nNo template is registered for %s.\n", path)
}
