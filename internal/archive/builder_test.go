package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/quarrydev/quarry/internal/catalog"
)

func buildTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	reg := catalog.NewRegistry()
	for _, path := range []catalog.Path{"a.json", "b.yml", "c.py", "README.md"} {
		p := path
		reg.MustRegister(p, func() (string, error) { return "content of " + string(p), nil })
	}
	cat, err := catalog.New(catalog.Definition{
		Components: []catalog.Component{
			{Key: "devops", Title: "DevOps", Description: "Pipelines", Files: []catalog.Path{"a.json", "b.yml"}},
			{Key: "data", Title: "Data", Description: "Skeletons", Files: []catalog.Path{"c.py"}},
		},
		ProjectFiles: []catalog.Path{"README.md"},
	}, reg)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return cat
}

func readEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	entries := map[string]string{}
	for _, file := range reader.File {
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", file.Name, err)
		}
		if _, dup := entries[file.Name]; dup {
			t.Fatalf("duplicate entry %s", file.Name)
		}
		entries[file.Name] = string(content)
	}
	return entries
}

func TestBuildContainsEveryPathExactlyOnce(t *testing.T) {
	cat := buildTestCatalog(t)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	builder := NewBuilder(cat, WithClock(func() time.Time { return fixed }))

	bundle, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if bundle.Name != DeliverableName {
		t.Fatalf("name = %s, want %s", bundle.Name, DeliverableName)
	}
	if bundle.FileCount != 4 {
		t.Fatalf("file count = %d, want 4", bundle.FileCount)
	}
	if !bundle.CreatedAt.Equal(fixed) {
		t.Fatalf("created at = %v, want %v", bundle.CreatedAt, fixed)
	}

	entries := readEntries(t, bundle.Data)
	if len(entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(entries))
	}
	for _, path := range cat.AllArtifactPaths() {
		content, ok := entries[string(path)]
		if !ok {
			t.Fatalf("missing entry %s", path)
		}
		if content == "" {
			t.Fatalf("entry %s is empty", path)
		}
		want, err := cat.Generate(path)
		if err != nil {
			t.Fatalf("generate %s: %v", path, err)
		}
		if content != want {
			t.Fatalf("entry %s = %q, want %q", path, content, want)
		}
	}
}

func TestBuildFailsAtomicallyOnGeneratorError(t *testing.T) {
	reg := catalog.NewRegistry()
	reg.MustRegister("good.txt", func() (string, error) { return "fine", nil })
	boom := errors.New("disk full")
	reg.MustRegister("bad.txt", func() (string, error) { return "", boom })
	cat, err := catalog.New(catalog.Definition{
		Components: []catalog.Component{
			{Key: "mixed", Title: "Mixed", Description: "One good, one bad", Files: []catalog.Path{"good.txt", "bad.txt"}},
		},
	}, reg)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	bundle, err := NewBuilder(cat).Build(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected generator error, got %v", err)
	}
	if bundle != nil {
		t.Fatalf("failed build must not return a partial archive")
	}
}

func TestBuildHonorsCanceledContext(t *testing.T) {
	cat := buildTestCatalog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewBuilder(cat).Build(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
