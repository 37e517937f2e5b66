package checklist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/quarrydev/quarry/internal/fsutil"
)

// PersistedState is the on-disk snapshot: item state per checklist title plus
// the time of the last access. It lives as a single JSON file, overwritten
// whole on every save.
type PersistedState struct {
	Checklists   map[string][]Item `json:"checklists"`
	LastAccessed string            `json:"lastAccessed"`
}

// ErrCorruptState marks persisted data that could not be decoded. Load still
// returns usable defaults alongside it; callers typically log and move on.
var ErrCorruptState = errors.New("checklist: corrupt persisted state")

// Store persists checklist completion state across sessions.
type Store struct {
	path     string
	defaults func() []Checklist
	now      func() time.Time
}

// StoreOption customizes a Store during construction.
type StoreOption func(*Store)

// WithClock overrides the clock used for the lastAccessed stamp.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = clock
	}
}

// WithDefaults overrides the built-in checklist definitions.
func WithDefaults(defaults func() []Checklist) StoreOption {
	return func(s *Store) {
		s.defaults = defaults
	}
}

// NewStore builds a store writing to the given file path.
func NewStore(path string, opts ...StoreOption) *Store {
	store := &Store{
		path:     path,
		defaults: Defaults,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Path returns the file backing this store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted state and applies it on top of the default
// definitions. A store that has never been written returns the defaults with
// a nil error; unreadable or undecodable state returns the defaults with a
// non-nil error so the failure stays visible to tests, but the caller always
// receives a usable checklist set.
func (s *Store) Load() ([]Checklist, error) {
	lists := s.defaults()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lists, nil
		}
		return lists, fmt.Errorf("checklist: read %s: %w", s.path, err)
	}
	var state PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return lists, fmt.Errorf("%w: %s: %v", ErrCorruptState, s.path, err)
	}
	applyState(lists, state)
	return lists, nil
}

// Save overwrites the full persisted snapshot. The write is atomic, so a
// failed save leaves the previous snapshot intact.
func (s *Store) Save(lists []Checklist) error {
	state := PersistedState{
		Checklists:   make(map[string][]Item, len(lists)),
		LastAccessed: s.now().UTC().Format(time.RFC3339),
	}
	for _, list := range lists {
		state.Checklists[list.Title] = append([]Item{}, list.Items...)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("checklist: encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("checklist: ensure state dir: %w", err)
	}
	if err := fsutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("checklist: write state: %w", err)
	}
	return nil
}

// applyState copies persisted statuses onto the default definitions, matching
// checklists by title and items by name. Anything the defaults no longer
// declare is dropped; anything persisted state lacks stays pending. This
// keeps old snapshots loadable across checklist revisions.
func applyState(lists []Checklist, state PersistedState) {
	for li := range lists {
		saved, ok := state.Checklists[lists[li].Title]
		if !ok {
			continue
		}
		byName := make(map[string]Status, len(saved))
		for _, item := range saved {
			if item.Status.Valid() {
				byName[item.Name] = item.Status
			}
		}
		for ii := range lists[li].Items {
			if status, ok := byName[lists[li].Items[ii].Name]; ok {
				lists[li].Items[ii].Status = status
			}
		}
	}
}
