package plugins

import (
	"fmt"

	"github.com/quarrydev/quarry/internal/catalog"
)

// CustomComponentKey is the catalog component plugin templates land in.
const CustomComponentKey = "custom"

// Discover loads every YAML and Go template definition under dir, in a
// stable order, rejecting duplicate paths across plugin files.
func Discover(dir string) ([]DefinitionFile, error) {
	yamlDefs, err := LoadDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	goDefs, err := LoadGoDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	all := append(yamlDefs, goDefs...)

	seen := make(map[string]string, len(all))
	for _, file := range all {
		path := file.Definition.Path
		if prev, dup := seen[path]; dup {
			return nil, fmt.Errorf("plugin: duplicate template path %s (%s and %s)", path, prev, file.Source)
		}
		seen[path] = file.Source
	}
	return all, nil
}

// Apply registers the discovered templates and appends them to the catalog
// definition as the "custom" component. Built-in paths win: registering a
// plugin over an existing path fails, which surfaces the collision at startup
// instead of silently shadowing a built-in artifact.
func Apply(def *catalog.Definition, reg *catalog.Registry, files []DefinitionFile) error {
	if def == nil || reg == nil || len(files) == 0 {
		return nil
	}
	custom := catalog.Component{
		Key:         CustomComponentKey,
		Title:       "Custom Templates",
		Description: "User templates loaded from .quarry/templates",
	}
	for _, file := range files {
		path := catalog.Path(file.Definition.Path)
		content := file.Definition.Content
		if err := reg.Register(path, func() (string, error) {
			return content, nil
		}); err != nil {
			return fmt.Errorf("plugin: %s: %w", file.Source, err)
		}
		custom.Files = append(custom.Files, path)
	}
	def.Components = append(def.Components, custom)
	return nil
}
