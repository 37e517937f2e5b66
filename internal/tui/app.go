// internal/tui/app.go
//
// This is the main TUI for quarry. It uses bubbletea, which follows The Elm
// Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/quarrydev/quarry/internal/archive"
	"github.com/quarrydev/quarry/internal/catalog"
	"github.com/quarrydev/quarry/internal/checklist"
	"github.com/quarrydev/quarry/internal/config"
	"github.com/quarrydev/quarry/internal/logbook"
)

// appState represents which "screen" we're on.
type appState int

const (
	stateMainMenu       appState = iota // Top-level menu
	stateComponents                     // Component browser
	stateFiles                          // Files inside one component
	statePreview                        // Rendered artifact content
	stateChecklists                     // Checklist picker
	stateChecklistItems                 // Items inside one checklist, toggleable
)

// exportDoneMsg reports the outcome of an archive or summary export running
// as a background command.
type exportDoneMsg struct {
	label string
	path  string
	err   error
}

// App is the main application model. In bubbletea, this holds ALL the state.
type App struct {
	state   appState
	config  *config.Config
	catalog *catalog.Catalog
	store   *checklist.Store
	logbook *logbook.Logbook
	builder *archive.Builder

	// Live checklist state, hydrated from the store at startup.
	checklists   []checklist.Checklist
	activeList   int // index into checklists while on stateChecklistItems
	itemCursor   int
	activeComp   string // component key while on stateFiles
	previewTitle string

	// UI components
	mainMenu      list.Model
	componentMenu list.Model
	fileMenu      list.Model
	checklistMenu list.Model
	preview       viewport.Model

	exporting bool
	statusMsg string
	width     int
	height    int
}

// menuItem implements list.Item for our menu lists.
type menuItem struct {
	id    string
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// NewApp creates the application model. The catalog, store, and logbook are
// injected so tests can run the model against a temp directory.
func NewApp(cfg *config.Config, cat *catalog.Catalog, store *checklist.Store, book *logbook.Logbook) *App {
	lists, err := store.Load()
	if err != nil {
		book.Warn("checklist state unreadable, using defaults: %v", err)
	}

	app := &App{
		state:      stateMainMenu,
		config:     cfg,
		catalog:    cat,
		store:      store,
		logbook:    book,
		builder:    archive.NewBuilder(cat),
		checklists: lists,
	}
	app.mainMenu = newMenu("QUARRY · "+cfg.Project.Project.Name, buildMainMenu())
	app.componentMenu = newMenu("Components", buildComponentMenu(cat))
	app.fileMenu = newMenu("Files", nil)
	app.checklistMenu = newMenu("Checklists", nil)
	app.refreshChecklistMenu()
	return app
}

func newMenu(title string, items []list.Item) list.Model {
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = title
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	return menu
}

func buildMainMenu() []list.Item {
	return []list.Item{
		menuItem{id: "components", title: "Browse Components", desc: "Preview the templates in each category"},
		menuItem{id: "checklists", title: "Checklists", desc: "Track delivery progress across sessions"},
		menuItem{id: "export-kit", title: "Export Starter Kit", desc: "Write the full kit as a zip archive"},
		menuItem{id: "export-summary", title: "Export Project Summary", desc: "Write project-summary.json"},
		menuItem{id: "quit", title: "Exit", desc: "Quit quarry"},
	}
}

func buildComponentMenu(cat *catalog.Catalog) []list.Item {
	components := cat.Components()
	items := make([]list.Item, len(components))
	for i, comp := range components {
		items[i] = menuItem{
			id:    comp.Key,
			title: comp.Title,
			desc:  fmt.Sprintf("%s · %d files", comp.Description, len(comp.Files)),
		}
	}
	return items
}

func (a *App) refreshChecklistMenu() {
	items := make([]list.Item, len(a.checklists))
	for i, cl := range a.checklists {
		items[i] = menuItem{
			id:    cl.Title,
			title: cl.Title,
			desc:  fmt.Sprintf("%d of %d complete", cl.Completed(), len(cl.Items)),
		}
	}
	a.checklistMenu.SetItems(items)
}

func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		listWidth := max(0, msg.Width-4)
		listHeight := max(0, msg.Height-8)
		a.mainMenu.SetSize(listWidth, listHeight)
		a.componentMenu.SetSize(listWidth, listHeight)
		a.fileMenu.SetSize(listWidth, listHeight)
		a.checklistMenu.SetSize(listWidth, listHeight)
		a.preview.Width = listWidth
		a.preview.Height = listHeight
		return a, nil

	case exportDoneMsg:
		a.exporting = false
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("%s failed: %v", msg.label, msg.err)
			a.logbook.Error("%s failed: %v", msg.label, msg.err)
		} else {
			a.statusMsg = fmt.Sprintf("%s written to %s", msg.label, msg.path)
			a.logbook.Info("%s written to %s", msg.label, msg.path)
		}
		return a, nil

	case tea.KeyMsg:
		if model, cmd, handled := a.handleKey(msg.String()); handled {
			return model, cmd
		}
	}

	return a.routeToActiveList(msg)
}

// handleKey processes the keys we care about. Returns handled=false for keys
// the active list should consume instead (cursor movement and the like).
func (a *App) handleKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "ctrl+c":
		return a, tea.Quit, true
	case "q":
		if a.state == stateMainMenu {
			return a, tea.Quit, true
		}
	case "esc":
		if a.state != stateMainMenu {
			model, cmd := a.goBack()
			return model, cmd, true
		}
	case "enter":
		model, cmd := a.handleSelection()
		return model, cmd, true
	case " ":
		if a.state == stateChecklistItems {
			a.toggleSelectedItem()
			return a, nil, true
		}
	case "m":
		if a.state == stateChecklistItems {
			model, cmd := a.exportActiveChecklist()
			return model, cmd, true
		}
	case "up", "k":
		if a.state == stateChecklistItems {
			if a.itemCursor > 0 {
				a.itemCursor--
			}
			return a, nil, true
		}
	case "down", "j":
		if a.state == stateChecklistItems {
			if a.itemCursor < len(a.activeChecklist().Items)-1 {
				a.itemCursor++
			}
			return a, nil, true
		}
	}
	return a, nil, false
}

func (a *App) routeToActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.state {
	case stateMainMenu:
		a.mainMenu, cmd = a.mainMenu.Update(msg)
	case stateComponents:
		a.componentMenu, cmd = a.componentMenu.Update(msg)
	case stateFiles:
		a.fileMenu, cmd = a.fileMenu.Update(msg)
	case stateChecklists:
		a.checklistMenu, cmd = a.checklistMenu.Update(msg)
	case statePreview:
		a.preview, cmd = a.preview.Update(msg)
	}
	return a, cmd
}

func (a *App) handleSelection() (tea.Model, tea.Cmd) {
	switch a.state {
	case stateMainMenu:
		return a.handleMainMenuSelection()
	case stateComponents:
		return a.openComponent()
	case stateFiles:
		return a.openPreview()
	case stateChecklists:
		return a.openChecklist()
	case stateChecklistItems:
		a.toggleSelectedItem()
		return a, nil
	}
	return a, nil
}

func (a *App) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	switch item.id {
	case "components":
		a.state = stateComponents
		a.statusMsg = ""
	case "checklists":
		a.state = stateChecklists
		a.statusMsg = ""
	case "export-kit":
		return a.startArchiveExport()
	case "export-summary":
		return a.startSummaryExport()
	case "quit":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) openComponent() (tea.Model, tea.Cmd) {
	item, ok := a.componentMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	comp, found := a.catalog.Component(item.id)
	if !found {
		// Unknown keys are recoverable by design: stay where we are.
		return a, nil
	}
	items := make([]list.Item, len(comp.Files))
	for i, path := range comp.Files {
		items[i] = menuItem{id: string(path), title: string(path), desc: ""}
	}
	a.activeComp = comp.Key
	a.fileMenu.Title = comp.Title
	a.fileMenu.SetItems(items)
	a.state = stateFiles
	return a, nil
}

func (a *App) openPreview() (tea.Model, tea.Cmd) {
	item, ok := a.fileMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	content, err := a.catalog.Generate(catalog.Path(item.id))
	if err != nil {
		a.statusMsg = fmt.Sprintf("preview failed: %v", err)
		return a, nil
	}
	a.previewTitle = item.id
	a.preview = viewport.New(max(20, a.width-4), max(10, a.height-8))
	a.preview.SetContent(content)
	a.state = statePreview
	return a, nil
}

func (a *App) openChecklist() (tea.Model, tea.Cmd) {
	item, ok := a.checklistMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	for i, cl := range a.checklists {
		if cl.Title == item.id {
			a.activeList = i
			a.itemCursor = 0
			a.state = stateChecklistItems
			return a, nil
		}
	}
	return a, nil
}

func (a *App) activeChecklist() *checklist.Checklist {
	if a.activeList < 0 || a.activeList >= len(a.checklists) {
		return &checklist.Checklist{}
	}
	return &a.checklists[a.activeList]
}

// toggleSelectedItem flips the item under the cursor and persists the whole
// snapshot. Persistence failures are logged and swallowed: checklist state is
// best-effort by contract.
func (a *App) toggleSelectedItem() {
	cl := a.activeChecklist()
	cl.Toggle(a.itemCursor)
	if err := a.store.Save(a.checklists); err != nil {
		a.logbook.Warn("persist checklist state: %v", err)
	}
	a.refreshChecklistMenu()
}

func (a *App) exportActiveChecklist() (tea.Model, tea.Cmd) {
	cl := a.activeChecklist().Clone()
	dir := a.config.ExportDir()
	return a, func() tea.Msg {
		path, err := checklist.WriteMarkdown(cl, dir, time.Now())
		return exportDoneMsg{label: "Checklist export", path: path, err: err}
	}
}

// startArchiveExport kicks off the kit export as a background command. The
// trigger is disabled while one is running, so exports never overlap.
func (a *App) startArchiveExport() (tea.Model, tea.Cmd) {
	if a.exporting {
		a.statusMsg = "Export already running"
		return a, nil
	}
	a.exporting = true
	a.statusMsg = "Exporting starter kit..."
	builder := a.builder
	dir := a.config.ExportDir()
	return a, func() tea.Msg {
		bundle, err := builder.Build(context.Background())
		if err != nil {
			return exportDoneMsg{label: "Kit export", err: err}
		}
		path, err := bundle.WriteFile(dir)
		return exportDoneMsg{label: "Kit export", path: path, err: err}
	}
}

func (a *App) startSummaryExport() (tea.Model, tea.Cmd) {
	if a.exporting {
		a.statusMsg = "Export already running"
		return a, nil
	}
	a.exporting = true
	a.statusMsg = "Exporting project summary..."
	meta := archive.ProjectMeta{
		Name:        a.config.Project.Project.Name,
		Version:     a.config.Project.Project.Version,
		Description: a.config.Project.Project.Description,
	}
	cat := a.catalog
	dir := a.config.ExportDir()
	return a, func() tea.Msg {
		summary := archive.BuildSummary(cat, meta, time.Now())
		path, err := summary.WriteFile(dir)
		return exportDoneMsg{label: "Summary export", path: path, err: err}
	}
}

func (a *App) goBack() (tea.Model, tea.Cmd) {
	switch a.state {
	case stateFiles:
		a.state = stateComponents
	case statePreview:
		a.state = stateFiles
	case stateChecklistItems:
		a.state = stateChecklists
		a.refreshChecklistMenu()
	default:
		a.state = stateMainMenu
	}
	return a, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
