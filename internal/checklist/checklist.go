// Package checklist tracks delivery checklist completion state. Definitions
// are fixed at startup; only item status changes, and the whole state is
// persisted under .quarry/state on every mutation.

package checklist

import (
	"fmt"
	"strings"
)

// Status is the completion state of a single checklist item.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Valid reports whether the status is one of the known values. Persisted data
// is untrusted, so loaders normalize anything else back to pending.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Item is one completion-trackable entry.
type Item struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// Checklist is a named ordered list of items. Toggling flips a single item
// between pending and completed; there is no terminal state.
type Checklist struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Validate ensures the checklist is well-formed.
func (c Checklist) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("checklist: title is required")
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("checklist %s: at least one item is required", c.Title)
	}
	seen := map[string]struct{}{}
	for i, item := range c.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("checklist %s: item %d: name is required", c.Title, i+1)
		}
		if _, dup := seen[item.Name]; dup {
			return fmt.Errorf("checklist %s: duplicate item %q", c.Title, item.Name)
		}
		seen[item.Name] = struct{}{}
		if !item.Status.Valid() {
			return fmt.Errorf("checklist %s: item %q: unknown status %q", c.Title, item.Name, item.Status)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (c Checklist) Clone() Checklist {
	clone := Checklist{Title: c.Title}
	clone.Items = append([]Item{}, c.Items...)
	return clone
}

// Toggle flips the status of the item at index. Out-of-range indexes are a
// no-op so a stale UI cursor can never corrupt state.
func (c *Checklist) Toggle(index int) {
	if index < 0 || index >= len(c.Items) {
		return
	}
	if c.Items[index].Status == StatusCompleted {
		c.Items[index].Status = StatusPending
	} else {
		c.Items[index].Status = StatusCompleted
	}
}

// Completed returns how many items are completed.
func (c Checklist) Completed() int {
	count := 0
	for _, item := range c.Items {
		if item.Status == StatusCompleted {
			count++
		}
	}
	return count
}
