// cmd/quarry/main.go
//
// This is the entry point for the quarry CLI.
//
// Flow:
// 1. Initialize the .quarry folder in the working directory
// 2. Build the catalog (built-ins plus any template plugins)
// 3. Run the requested subcommand, or launch the TUI when none is given

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quarrydev/quarry/internal/archive"
	"github.com/quarrydev/quarry/internal/catalog"
	"github.com/quarrydev/quarry/internal/checklist"
	"github.com/quarrydev/quarry/internal/config"
	"github.com/quarrydev/quarry/internal/logbook"
	"github.com/quarrydev/quarry/internal/templates"
	"github.com/quarrydev/quarry/internal/tui"
	"github.com/quarrydev/quarry/plugins"
)

func main() {
	projectDir := flag.String("project", "", "path to the project directory (defaults to cwd)")
	flag.Usage = usage
	flag.Parse()

	project := *projectDir
	if project == "" {
		var err error
		project, err = os.Getwd()
		if err != nil {
			die("determine working directory: %v", err)
		}
	}
	absoluteProject, err := filepath.Abs(project)
	if err != nil {
		die("resolve project dir: %v", err)
	}

	if err := config.InitQuarryDir(absoluteProject); err != nil {
		die("init .quarry: %v", err)
	}
	cfg, err := config.NewConfig(absoluteProject)
	if err != nil {
		die("load config: %v", err)
	}
	cat, err := buildCatalog(cfg)
	if err != nil {
		die("build catalog: %v", err)
	}
	book, err := logbook.New(cfg.LogbookPath())
	if err != nil {
		die("open logbook: %v", err)
	}
	store := checklist.NewStore(cfg.ChecklistStatePath())

	args := flag.Args()
	if len(args) == 0 {
		runTUI(cfg, cat, store, book)
		return
	}

	switch args[0] {
	case "export":
		runExport(cfg, cat, book)
	case "summary":
		runSummary(cfg, cat, book)
	case "checklist":
		runChecklistExport(cfg, store, book, args[1:])
	default:
		usage()
		os.Exit(2)
	}
}

// buildCatalog wires built-in templates plus any plugins found under
// .quarry/templates into one validated catalog.
func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	def := templates.Definition()
	reg := templates.NewRegistry()
	files, err := plugins.Discover(cfg.TemplatesDir())
	if err != nil {
		return nil, err
	}
	if err := plugins.Apply(&def, reg, files); err != nil {
		return nil, err
	}
	return catalog.New(def, reg)
}

func runTUI(cfg *config.Config, cat *catalog.Catalog, store *checklist.Store, book *logbook.Logbook) {
	book.Info("session opened")
	p := tea.NewProgram(
		tui.NewApp(cfg, cat, store, book),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		die("run TUI: %v", err)
	}
}

func runExport(cfg *config.Config, cat *catalog.Catalog, book *logbook.Logbook) {
	builder := archive.NewBuilder(cat)
	bundle, err := builder.Build(context.Background())
	if err != nil {
		book.Error("kit export failed: %v", err)
		die("export: %v", err)
	}
	path, err := bundle.WriteFile(cfg.ExportDir())
	if err != nil {
		book.Error("kit export failed: %v", err)
		die("export: %v", err)
	}
	book.Info("kit export written to %s", path)
	fmt.Printf("Wrote %s (%d files)\n", path, bundle.FileCount)
}

func runSummary(cfg *config.Config, cat *catalog.Catalog, book *logbook.Logbook) {
	meta := archive.ProjectMeta{
		Name:        cfg.Project.Project.Name,
		Version:     cfg.Project.Project.Version,
		Description: cfg.Project.Project.Description,
	}
	summary := archive.BuildSummary(cat, meta, time.Now())
	path, err := summary.WriteFile(cfg.ExportDir())
	if err != nil {
		book.Error("summary export failed: %v", err)
		die("summary: %v", err)
	}
	book.Info("summary export written to %s", path)
	fmt.Printf("Wrote %s\n", path)
}

func runChecklistExport(cfg *config.Config, store *checklist.Store, book *logbook.Logbook, args []string) {
	if len(args) == 0 {
		die("usage: quarry checklist <title>")
	}
	title := strings.Join(args, " ")
	lists, err := store.Load()
	if err != nil {
		book.Warn("checklist state unreadable, using defaults: %v", err)
	}
	for _, cl := range lists {
		if !strings.EqualFold(cl.Title, title) {
			continue
		}
		path, err := checklist.WriteMarkdown(cl, cfg.ExportDir(), time.Now())
		if err != nil {
			die("checklist export: %v", err)
		}
		book.Info("checklist export written to %s", path)
		fmt.Printf("Wrote %s\n", path)
		return
	}
	die("unknown checklist %q", title)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: quarry [-project dir] [command]

Commands:
  (none)             launch the interactive TUI
  export             write the full starter kit archive
  summary            write project-summary.json
  checklist <title>  export one checklist as Markdown
`)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "quarry: "+format+"\n", args...)
	os.Exit(1)
}
