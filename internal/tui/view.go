package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/quarrydev/quarry/internal/checklist"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E8A33D")).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			MarginTop(1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E8A33D"))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3DBE6C"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

func (a *App) View() string {
	header := headerStyle.Render("⬡ QUARRY")

	var content string
	switch a.state {
	case stateMainMenu:
		content = a.mainMenu.View()
	case stateComponents:
		content = a.componentMenu.View()
	case stateFiles:
		content = a.fileMenu.View()
	case statePreview:
		content = a.renderPreview()
	case stateChecklists:
		content = a.checklistMenu.View()
	case stateChecklistItems:
		content = a.renderChecklistItems()
	}

	sections := []string{header, content}
	if a.statusMsg != "" {
		sections = append(sections, statusStyle.Render(a.statusMsg))
	}
	if panel := a.renderLogPanel(); panel != "" {
		sections = append(sections, panel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderPreview() string {
	title := titleStyle.Render(a.previewTitle)
	help := helpStyle.Render("esc back · up/down scroll")
	return lipgloss.JoinVertical(lipgloss.Left, title, a.preview.View(), help)
}

func (a *App) renderChecklistItems() string {
	cl := a.activeChecklist()
	var b strings.Builder
	b.WriteString(titleStyle.Render(cl.Title))
	b.WriteString("\n\n")
	for i, item := range cl.Items {
		mark := "[ ]"
		line := fmt.Sprintf("%s %s", mark, item.Name)
		if item.Status == checklist.StatusCompleted {
			line = completedStyle.Render(fmt.Sprintf("[x] %s", item.Name))
		}
		if i == a.itemCursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("space/enter toggle · m export markdown · esc back"))
	return b.String()
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, _ := a.logbook.Tail(3)
	if len(lines) == 0 {
		return ""
	}
	return logStyle.Render(strings.Join(lines, "\n"))
}
