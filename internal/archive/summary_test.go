package archive

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBuildSummaryFields(t *testing.T) {
	cat := buildTestCatalog(t)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	meta := ProjectMeta{Name: "data-platform", Version: "0.1.0", Description: "starter kit"}

	summary := BuildSummary(cat, meta, fixed)
	if summary.Name != "data-platform" || summary.Version != "0.1.0" {
		t.Fatalf("identity not carried: %+v", summary)
	}
	if summary.Created != "2024-05-01T12:00:00Z" {
		t.Fatalf("created = %s", summary.Created)
	}
	if summary.ExportID == "" {
		t.Fatalf("export id must be set")
	}
	wantComponents := []string{"devops", "data"}
	if len(summary.Components) != len(wantComponents) {
		t.Fatalf("components = %v", summary.Components)
	}
	for i, key := range wantComponents {
		if summary.Components[i] != key {
			t.Fatalf("components[%d] = %s, want %s", i, summary.Components[i], key)
		}
	}
	if len(summary.Phases) == 0 || summary.Timeline == "" {
		t.Fatalf("plan data missing: %+v", summary)
	}
}

func TestSummaryWriteFileRoundTrips(t *testing.T) {
	cat := buildTestCatalog(t)
	dir := t.TempDir()
	summary := BuildSummary(cat, ProjectMeta{Name: "p"}, time.Now())

	path, err := summary.WriteFile(dir)
	if err != nil {
		t.Fatalf("write summary: %v", err)
	}
	if filepath.Base(path) != SummaryName {
		t.Fatalf("path = %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var decoded Summary
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Name != "p" || decoded.ExportID != summary.ExportID {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestArchiveWriteFile(t *testing.T) {
	cat := buildTestCatalog(t)
	bundle, err := NewBuilder(cat).Build(context.Background())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	dir := t.TempDir()
	path, err := bundle.WriteFile(filepath.Join(dir, "exports"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("archive file is empty")
	}
	entries := readEntries(t, bundle.Data)
	if len(entries) != bundle.FileCount {
		t.Fatalf("entries = %d, want %d", len(entries), bundle.FileCount)
	}
}
