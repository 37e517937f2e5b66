package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitQuarryDirCreatesStructure(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitQuarryDir(projectDir); err != nil {
		t.Fatalf("init: %v", err)
	}
	for _, sub := range []string{"state", "logs", "templates", "exports"} {
		info, err := os.Stat(filepath.Join(projectDir, QuarryDir, sub))
		if err != nil {
			t.Fatalf("missing %s: %v", sub, err)
		}
		if !info.IsDir() {
			t.Fatalf("%s is not a directory", sub)
		}
	}
	if _, err := os.Stat(filepath.Join(projectDir, QuarryDir, "config.yaml")); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestInitQuarryDirKeepsExistingConfig(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitQuarryDir(projectDir); err != nil {
		t.Fatalf("first init: %v", err)
	}
	path := filepath.Join(projectDir, QuarryDir, "config.yaml")
	custom := []byte("version: 1\nproject:\n  name: custom\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}
	if err := InitQuarryDir(projectDir); err != nil {
		t.Fatalf("second init: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != string(custom) {
		t.Fatalf("init overwrote an existing config")
	}
}

func TestNewConfigLoadsProjectIdentity(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitQuarryDir(projectDir); err != nil {
		t.Fatalf("init: %v", err)
	}
	path := filepath.Join(projectDir, QuarryDir, "config.yaml")
	custom := []byte("version: 1\nproject:\n  name: search-platform\n  version: 2.0.0\nexport:\n  output_dir: out\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Project.Project.Name != "search-platform" {
		t.Fatalf("name = %s", cfg.Project.Project.Name)
	}
	if got, want := cfg.ExportDir(), filepath.Join(projectDir, "out"); got != want {
		t.Fatalf("export dir = %s, want %s", got, want)
	}
	if got, want := cfg.ChecklistStatePath(), filepath.Join(projectDir, QuarryDir, "state", "checklists.json"); got != want {
		t.Fatalf("state path = %s, want %s", got, want)
	}
}

func TestNewConfigDefaultsWhenConfigMissing(t *testing.T) {
	projectDir := t.TempDir()
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config without init: %v", err)
	}
	if cfg.Project.Project.Name != "data-platform" {
		t.Fatalf("default name = %s", cfg.Project.Project.Name)
	}
	if got, want := cfg.ExportDir(), filepath.Join(projectDir, QuarryDir, "exports"); got != want {
		t.Fatalf("export dir = %s, want %s", got, want)
	}
}
