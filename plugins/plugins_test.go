package plugins

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quarrydev/quarry/internal/catalog"
)

const sampleYAML = `path: docs/team-charter.md
title: Team Charter
description: Working agreement for the platform team
content: |
  # Team Charter

  Fill in the team's working agreement here.
`

func writePlugin(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write plugin %s: %v", name, err)
	}
	return path
}

func TestParseDefinitionYAML(t *testing.T) {
	def, err := ParseDefinitionYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Path != "docs/team-charter.md" {
		t.Fatalf("path = %s", def.Path)
	}
	if !strings.HasSuffix(def.Content, "\n") {
		t.Fatalf("content must keep a trailing newline")
	}
}

func TestParseDefinitionYAMLRejectsBadPayloads(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"no path":      "content: hello\n",
		"no content":   "path: a.txt\n",
		"bad path":     "path: /abs.txt\ncontent: hello\n",
		"invalid yaml": "path: [\n",
	}
	for name, payload := range cases {
		if _, err := ParseDefinitionYAML([]byte(payload)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadDefinitionDirMissingIsEmpty(t *testing.T) {
	defs, err := LoadDefinitionDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir must not error: %v", err)
	}
	if defs != nil {
		t.Fatalf("expected no definitions, got %d", len(defs))
	}
}

func TestDiscoverMergesAndSorts(t *testing.T) {
	dir := t.TempDir()
	writePlugin(t, dir, "b.yaml", sampleYAML)
	writePlugin(t, dir, "a.yaml", strings.Replace(sampleYAML, "docs/team-charter.md", "docs/onboarding.md", 1))
	writePlugin(t, dir, "ignored.txt", "not a plugin")

	defs, err := Discover(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("defs = %d, want 2", len(defs))
	}
	if defs[0].Definition.Path != "docs/onboarding.md" {
		t.Fatalf("defs not sorted by source: %+v", defs[0])
	}
}

func TestDiscoverRejectsDuplicatePaths(t *testing.T) {
	dir := t.TempDir()
	writePlugin(t, dir, "a.yaml", sampleYAML)
	writePlugin(t, dir, "b.yaml", sampleYAML)
	if _, err := Discover(dir); err == nil {
		t.Fatalf("duplicate paths across plugins must fail")
	}
}

func TestLoadGoDefinitionDir(t *testing.T) {
	dir := t.TempDir()
	writePlugin(t, dir, "charter.go", `package main

func TemplateDefinitions() ([]map[string]any, error) {
	return []map[string]any{
		{
			"path":    "docs/decision-log.md",
			"title":   "Decision Log",
			"content": "# Decision Log\n\nRecord decisions here.\n",
		},
	}, nil
}
`)
	defs, err := LoadGoDefinitionDir(dir)
	if err != nil {
		t.Fatalf("load go definitions: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("defs = %d, want 1", len(defs))
	}
	if defs[0].Definition.Path != "docs/decision-log.md" {
		t.Fatalf("path = %s", defs[0].Definition.Path)
	}
}

func TestApplyAddsCustomComponent(t *testing.T) {
	reg := catalog.NewRegistry()
	reg.MustRegister("README.md", func() (string, error) { return "readme", nil })
	def := catalog.Definition{ProjectFiles: []catalog.Path{"README.md"}}

	files := []DefinitionFile{
		{Definition: TemplateDefinition{Path: "docs/x.md", Content: "x\n"}.Normalized(), Source: "a.yaml"},
	}
	if err := Apply(&def, reg, files); err != nil {
		t.Fatalf("apply: %v", err)
	}
	cat, err := catalog.New(def, reg)
	if err != nil {
		t.Fatalf("catalog with plugins: %v", err)
	}
	comp, ok := cat.Component(CustomComponentKey)
	if !ok {
		t.Fatalf("custom component missing")
	}
	if len(comp.Files) != 1 || comp.Files[0] != "docs/x.md" {
		t.Fatalf("unexpected custom files: %v", comp.Files)
	}
	content, err := cat.Generate("docs/x.md")
	if err != nil || content != "x\n" {
		t.Fatalf("plugin content = %q, %v", content, err)
	}
}

func TestApplyRejectsBuiltinCollision(t *testing.T) {
	reg := catalog.NewRegistry()
	reg.MustRegister("README.md", func() (string, error) { return "readme", nil })
	def := catalog.Definition{ProjectFiles: []catalog.Path{"README.md"}}

	files := []DefinitionFile{
		{Definition: TemplateDefinition{Path: "README.md", Content: "hijack\n"}.Normalized(), Source: "evil.yaml"},
	}
	if err := Apply(&def, reg, files); err == nil {
		t.Fatalf("plugin shadowing a built-in must fail")
	}
}
