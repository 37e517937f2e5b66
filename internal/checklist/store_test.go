package checklist

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "checklists.json")
	fixed := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	return NewStore(path, WithClock(func() time.Time { return fixed }))
}

func TestLoadOnEmptyStoreReturnsDefaults(t *testing.T) {
	store := testStore(t)
	lists, err := store.Load()
	if err != nil {
		t.Fatalf("load on fresh store: %v", err)
	}
	defaults := Defaults()
	if len(lists) != len(defaults) {
		t.Fatalf("lists = %d, want %d", len(lists), len(defaults))
	}
	for _, cl := range lists {
		for _, item := range cl.Items {
			if item.Status != StatusPending {
				t.Fatalf("%s / %q: status = %s, want pending", cl.Title, item.Name, item.Status)
			}
		}
	}
}

func TestToggleSaveLoadRoundTrip(t *testing.T) {
	store := testStore(t)
	lists, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	lists[0].Toggle(2)
	if err := store.Save(lists); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded[0].Items[2].Status; got != StatusCompleted {
		t.Fatalf("item 3 status = %s, want completed", got)
	}
	if got := reloaded[0].Completed(); got != 1 {
		t.Fatalf("completed = %d, want 1", got)
	}
	// Toggle back and persist again: no terminal state.
	reloaded[0].Toggle(2)
	if err := store.Save(reloaded); err != nil {
		t.Fatalf("save again: %v", err)
	}
	final, err := store.Load()
	if err != nil {
		t.Fatalf("final load: %v", err)
	}
	if got := final[0].Items[2].Status; got != StatusPending {
		t.Fatalf("item 3 status = %s, want pending", got)
	}
}

func TestLoadOnCorruptStateFallsBackToDefaults(t *testing.T) {
	store := testStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt state: %v", err)
	}
	lists, err := store.Load()
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
	if len(lists) != len(Defaults()) {
		t.Fatalf("corrupt load must still return defaults")
	}
}

func TestSaveWritesSnapshotShape(t *testing.T) {
	store := testStore(t)
	lists, _ := store.Load()
	if err := store.Save(lists); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read state: %v", err)
	}
	var state PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.LastAccessed != "2024-05-01T09:30:00Z" {
		t.Fatalf("lastAccessed = %s", state.LastAccessed)
	}
	if len(state.Checklists) != len(lists) {
		t.Fatalf("checklists = %d, want %d", len(state.Checklists), len(lists))
	}
	for _, cl := range lists {
		if _, ok := state.Checklists[cl.Title]; !ok {
			t.Fatalf("missing checklist %q in snapshot", cl.Title)
		}
	}
}

func TestLoadDropsUnknownItemsAndChecklists(t *testing.T) {
	store := testStore(t)
	state := PersistedState{
		Checklists: map[string][]Item{
			"Infrastructure Checklist": {
				{Name: "Bicep templates reviewed and linted", Status: StatusCompleted},
				{Name: "An item that no longer exists", Status: StatusCompleted},
			},
			"Retired Checklist": {{Name: "whatever", Status: StatusCompleted}},
		},
		LastAccessed: "2024-01-01T00:00:00Z",
	}
	data, _ := json.Marshal(state)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(store.Path(), data, 0o644); err != nil {
		t.Fatalf("seed state: %v", err)
	}

	lists, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	infra := lists[0]
	if infra.Title != "Infrastructure Checklist" {
		t.Fatalf("unexpected first checklist %q", infra.Title)
	}
	if got := infra.Completed(); got != 1 {
		t.Fatalf("completed = %d, want 1 (only the surviving item)", got)
	}
	for _, cl := range lists {
		if cl.Title == "Retired Checklist" {
			t.Fatalf("retired checklist must not resurrect")
		}
	}
}
