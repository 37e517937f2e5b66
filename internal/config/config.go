// internal/config/config.go
//
// This package handles configuration and the .quarry directory structure.
// Every project that uses quarry gets a .quarry/ folder created in its root.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// QuarryDir is the name of the directory we create in each project.
	QuarryDir = ".quarry"

	defaultProjectName = "data-platform"
)

const defaultProjectConfigYAML = `# quarry project configuration
version: 1

# Identity stamped into the exported kit and the project summary.
project:
  name: data-platform
  version: 0.1.0
  description: Azure data platform starter kit

# Where exported archives and summaries are written, relative to the project
# root. Leave as default to use .quarry/exports.
export:
  output_dir: .quarry/exports
`

// ProjectIdentity is the metadata stamped into exports.
type ProjectIdentity struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// ExportConfig captures export preferences.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir,omitempty"`
}

// ProjectConfig models .quarry/config.yaml.
type ProjectConfig struct {
	Version int             `yaml:"version"`
	Project ProjectIdentity `yaml:"project"`
	Export  ExportConfig    `yaml:"export"`
}

// Config holds the runtime configuration for quarry.
type Config struct {
	// ProjectDir is the directory where the user ran `quarry` from.
	ProjectDir string

	// QuarryProjectDir is ProjectDir/.quarry.
	QuarryProjectDir string

	Project ProjectConfig
}

// InitQuarryDir creates the .quarry directory structure in the given project
// directory. This is called when the TUI starts up.
//
// Structure created:
// .quarry/
// ├── state/      <- Persisted checklist state
// ├── logs/       <- Best-effort activity log
// ├── templates/  <- User template plugins (YAML or Go definitions)
// └── exports/    <- Exported archives, summaries, and checklists
func InitQuarryDir(projectDir string) error {
	quarryDir := filepath.Join(projectDir, QuarryDir)

	dirs := []string{
		filepath.Join(quarryDir, "state"),
		filepath.Join(quarryDir, "logs"),
		filepath.Join(quarryDir, "templates"),
		filepath.Join(quarryDir, "exports"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return ensureProjectConfig(filepath.Join(quarryDir, "config.yaml"))
}

// NewConfig creates a Config populated with project settings.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:       projectDir,
		QuarryProjectDir: filepath.Join(projectDir, QuarryDir),
		Project:          defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StateDir returns the path to the state directory.
func (c *Config) StateDir() string {
	return filepath.Join(c.QuarryProjectDir, "state")
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.QuarryProjectDir, "logs")
}

// TemplatesDir returns the directory scanned for template plugins.
func (c *Config) TemplatesDir() string {
	return filepath.Join(c.QuarryProjectDir, "templates")
}

// ChecklistStatePath returns the file holding persisted checklist state.
func (c *Config) ChecklistStatePath() string {
	return filepath.Join(c.StateDir(), "checklists.json")
}

// LogbookPath returns the file backing the activity log.
func (c *Config) LogbookPath() string {
	return filepath.Join(c.LogsDir(), "quarry.log")
}

// ExportDir resolves the directory exported deliverables are written to.
func (c *Config) ExportDir() string {
	out := strings.TrimSpace(c.Project.Export.OutputDir)
	if out == "" {
		return filepath.Join(c.QuarryProjectDir, "exports")
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(c.ProjectDir, out)
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.QuarryProjectDir, "config.yaml")
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if strings.TrimSpace(parsed.Project.Name) == "" {
		parsed.Project.Name = defaultProjectName
	}
	if parsed.Version == 0 {
		parsed.Version = 1
	}
	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	var parsed ProjectConfig
	// The embedded default is under our control, so this cannot fail.
	if err := yaml.Unmarshal([]byte(defaultProjectConfigYAML), &parsed); err != nil {
		panic(fmt.Sprintf("config: default config is invalid: %v", err))
	}
	return parsed
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	return nil
}
