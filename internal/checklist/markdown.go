package checklist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quarrydev/quarry/internal/fsutil"
)

// ExportMarkdown renders a checklist as a Markdown document: a title header,
// a generation-date line, then a numbered list of checkbox items. Output is
// deterministic for a given checklist except for the embedded timestamp.
func ExportMarkdown(c Checklist, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02"))
	for i, item := range c.Items {
		mark := " "
		if item.Status == StatusCompleted {
			mark = "x"
		}
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, mark, item.Name)
	}
	return b.String()
}

// WriteMarkdown renders the checklist and writes it into dir under a slug of
// its title, returning the full path.
func WriteMarkdown(c Checklist, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("checklist: ensure export dir: %w", err)
	}
	path := filepath.Join(dir, slug(c.Title)+".md")
	if err := fsutil.WriteFileAtomic(path, []byte(ExportMarkdown(c, now)), 0o644); err != nil {
		return "", fmt.Errorf("checklist: %w", err)
	}
	return path, nil
}

func slug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
