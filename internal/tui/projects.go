// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the project list view: a table of all registered
// projects with creation and deletion shortcuts.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/trackmaster/client"
	"github.com/toeirei/trackmaster/internal/i18n"
	"github.com/toeirei/trackmaster/internal/model"
)

// backToListMsg signals a sub-view should give way to the project list.
type backToListMsg struct{}

// backToMenuMsg signals the active view should give way to the main menu.
type backToMenuMsg struct{}

// projectsLoadedMsg delivers the refreshed project list.
type projectsLoadedMsg struct {
	projects []model.Project
	err      error
}

// projectDeletedMsg reports the outcome of a delete.
type projectDeletedMsg struct {
	key string
	err error
}

// openProjectFormMsg asks the router to open the creation form.
type openProjectFormMsg struct{}

// projectsModel holds the state for the project list view.
type projectsModel struct {
	registry client.Registry
	table    table.Model
	projects []model.Project
	status   string
	err      error
}

// newProjectsModel creates the project list view.
func newProjectsModel(registry client.Registry) projectsModel {
	columns := []table.Column{
		{Title: "Key", Width: 24},
		{Title: "Name", Width: 40},
		{Title: "Created", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorHighlight).
		Bold(false)
	t.SetStyles(s)

	return projectsModel{registry: registry, table: t}
}

// Init kicks off the initial project load.
func (m projectsModel) Init() tea.Cmd {
	return loadProjectsCmd(m.registry)
}

// loadProjectsCmd fetches all projects from the registry.
func loadProjectsCmd(registry client.Registry) tea.Cmd {
	return func() tea.Msg {
		projects, err := registry.ListProjects(context.Background())
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

// deleteProjectCmd removes the project with the given key.
func deleteProjectCmd(registry client.Registry, key string) tea.Cmd {
	return func() tea.Msg {
		err := registry.DeleteProject(context.Background(), key)
		return projectDeletedMsg{key: key, err: err}
	}
}

// selectedKey returns the key of the highlighted row, or "".
func (m projectsModel) selectedKey() string {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

// rebuildRows repopulates the table from the current project list.
func (m *projectsModel) rebuildRows() {
	rows := make([]table.Row, 0, len(m.projects))
	for _, p := range m.projects {
		ts := p.CreatedAt
		if len(ts) > 19 {
			ts = ts[:19]
		}
		rows = append(rows, table.Row{p.Key, p.Name, ts})
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// Update handles messages for the project list view.
func (m projectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "n":
			return m, func() tea.Msg { return openProjectFormMsg{} }
		case "r":
			return m, loadProjectsCmd(m.registry)
		case "d":
			if key := m.selectedKey(); key != "" {
				return m, deleteProjectCmd(m.registry, key)
			}
			return m, nil
		}

	case projectsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.projects = msg.projects
			m.rebuildRows()
		}
		return m, nil

	case projectDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf(i18n.T("projects.deleted"), msg.key)
		return m, loadProjectsCmd(m.registry)

	case projectCreatedMsg:
		if len(msg.keys) > 0 {
			m.status = fmt.Sprintf(i18n.T("projects.created"), strings.Join(msg.keys, ", "))
		}
		return m, loadProjectsCmd(m.registry)
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the project list view.
func (m projectsModel) View() string {
	title := mainTitleStyle.Render("📁 " + i18n.T("projects.title"))

	var body string
	switch {
	case m.err != nil:
		body = errorStyle.Render(fmt.Sprintf(i18n.T("projects.load_error"), m.err))
	case len(m.projects) == 0:
		body = helpStyle.Render(i18n.T("projects.empty"))
	default:
		body = m.table.View()
	}

	var footer []string
	if m.status != "" {
		footer = append(footer, statusMessageStyle.Render(m.status))
	}
	footer = append(footer, helpStyle.Render(i18n.T("projects.help")))

	sections := []string{title, body, ""}
	sections = append(sections, footer...)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
