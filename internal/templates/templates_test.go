package templates

import (
	"strings"
	"testing"

	"github.com/quarrydev/quarry/internal/catalog"
)

func TestNewCatalogValidates(t *testing.T) {
	cat, err := NewCatalog()
	if err != nil {
		t.Fatalf("built-in catalog must construct cleanly: %v", err)
	}
	paths := cat.AllArtifactPaths()
	if len(paths) == 0 {
		t.Fatalf("catalog has no paths")
	}
	seen := map[catalog.Path]bool{}
	for _, path := range paths {
		if seen[path] {
			t.Fatalf("duplicate path %s", path)
		}
		seen[path] = true
	}
	// Project-level files lead the export set.
	if paths[0] != catalog.PathRootReadme {
		t.Fatalf("paths[0] = %s, want %s", paths[0], catalog.PathRootReadme)
	}
}

func TestEveryBuiltinGeneratesNonEmptyContent(t *testing.T) {
	cat, err := NewCatalog()
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	for _, path := range cat.AllArtifactPaths() {
		content, err := cat.Generate(path)
		if err != nil {
			t.Fatalf("generate %s: %v", path, err)
		}
		if strings.TrimSpace(content) == "" {
			t.Fatalf("generate %s: empty content", path)
		}
		if strings.Contains(content, "content not found") {
			t.Fatalf("generate %s: placeholder leaked into built-ins", path)
		}
	}
}

func TestReadmeStampsDate(t *testing.T) {
	content, err := projectReadme()
	if err != nil {
		t.Fatalf("readme: %v", err)
	}
	if !strings.Contains(content, "Generated by quarry on 2") {
		t.Fatalf("readme missing generation date:\n%s", content[:120])
	}
}

func TestComponentFilesShareComponentPrefix(t *testing.T) {
	cat, err := NewCatalog()
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	comp, ok := cat.Component("infrastructure")
	if !ok {
		t.Fatalf("infrastructure component missing")
	}
	for _, path := range comp.Files {
		if !strings.HasPrefix(string(path), "infrastructure/") {
			t.Fatalf("infrastructure file %s outside its tree", path)
		}
	}
}
