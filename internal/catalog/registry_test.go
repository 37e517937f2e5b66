package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	gen := func() (string, error) { return "content", nil }
	if err := reg.Register("a.txt", gen); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := reg.Register("a.txt", gen); err == nil {
		t.Fatalf("duplicate register should fail")
	}
}

func TestRegisterValidatesPath(t *testing.T) {
	reg := NewRegistry()
	gen := func() (string, error) { return "content", nil }
	for _, path := range []Path{"", "/abs.txt", "a\\b.txt", "a/../b.txt", "a//b.txt", " padded.txt"} {
		if err := reg.Register(path, gen); err == nil {
			t.Fatalf("register %q should fail", path)
		}
	}
}

func TestGenerateUnknownPathYieldsPlaceholder(t *testing.T) {
	reg := NewRegistry()
	content, err := reg.Generate("missing/file.txt")
	if err != nil {
		t.Fatalf("unknown path must not error: %v", err)
	}
	if !strings.Contains(content, "content not found") {
		t.Fatalf("placeholder missing marker: %q", content)
	}
	if !strings.Contains(content, "missing/file.txt") {
		t.Fatalf("placeholder should name the path: %q", content)
	}
}

func TestGeneratePropagatesGeneratorFailure(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("boom")
	reg.MustRegister("broken.txt", func() (string, error) { return "", boom })
	_, err := reg.Generate("broken.txt")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped generator error, got %v", err)
	}
}

func TestPathsSorted(t *testing.T) {
	reg := NewRegistry()
	gen := func() (string, error) { return "x", nil }
	reg.MustRegister("b.txt", gen)
	reg.MustRegister("a.txt", gen)
	reg.MustRegister("c/d.txt", gen)
	paths := reg.Paths()
	want := []Path{"a.txt", "b.txt", "c/d.txt"}
	if len(paths) != len(want) {
		t.Fatalf("len = %d, want %d", len(paths), len(want))
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}
}
