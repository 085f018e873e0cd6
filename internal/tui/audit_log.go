// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the audit log viewer: a filterable table of every
// recorded registry mutation.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/trackmaster/internal/db"
	"github.com/toeirei/trackmaster/internal/i18n"
	"github.com/toeirei/trackmaster/internal/model"
)

type auditLogModel struct {
	table       table.Model
	allEntries  []model.AuditLogEntry // Master list of all log entries
	filter      textinput.Model
	isFiltering bool
	err         error
}

func newAuditLogModel() auditLogModel {
	m := auditLogModel{}
	entries, err := db.GetAllAuditLogEntries()
	if err != nil {
		m.err = err
		return m
	}
	m.allEntries = entries

	columns := []table.Column{
		{Title: "Timestamp", Width: 20},
		{Title: "User", Width: 15},
		{Title: "Action", Width: 25},
		{Title: "Details", Width: 50},
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

	fi := textinput.New()
	fi.Placeholder = "filter..."
	fi.Prompt = "/ "
	fi.Width = 32

	m.table = t
	m.filter = fi
	m.rebuildTableRows()
	return m
}

// rebuildTableRows filters the master list of entries and populates the table.
func (m *auditLogModel) rebuildTableRows() {
	var rows []table.Row
	lowerFilter := strings.ToLower(m.filter.Value())

	for _, entry := range m.allEntries {
		if lowerFilter != "" {
			match := strings.Contains(strings.ToLower(entry.Timestamp), lowerFilter) ||
				strings.Contains(strings.ToLower(entry.Username), lowerFilter) ||
				strings.Contains(strings.ToLower(entry.Action), lowerFilter) ||
				strings.Contains(strings.ToLower(entry.Details), lowerFilter)
			if !match {
				continue
			}
		}

		ts := entry.Timestamp
		if len(ts) > 19 {
			ts = ts[:19] // Truncate fractional seconds for cleaner display
		}

		actionCell := entry.Action
		switch {
		case strings.HasPrefix(entry.Action, "ADD"):
			actionCell = successStyle.Render(entry.Action)
		case strings.HasPrefix(entry.Action, "DELETE_"):
			actionCell = specialStyle.Render(entry.Action)
		}

		rows = append(rows, table.Row{ts, entry.Username, actionCell, entry.Details})
	}

	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m auditLogModel) Init() tea.Cmd {
	return nil
}

func (m auditLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.isFiltering {
			switch keyMsg.String() {
			case "enter", "esc":
				m.isFiltering = false
				m.filter.Blur()
				return m, nil
			default:
				m.filter, cmd = m.filter.Update(msg)
				m.rebuildTableRows()
				return m, cmd
			}
		}

		switch keyMsg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "/":
			m.isFiltering = true
			return m, m.filter.Focus()
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m auditLogModel) View() string {
	title := mainTitleStyle.Render("📜 " + i18n.T("audit.title"))

	var body string
	switch {
	case m.err != nil:
		body = errorStyle.Render(m.err.Error())
	case len(m.allEntries) == 0:
		body = helpStyle.Render(i18n.T("audit.empty"))
	default:
		body = m.table.View()
	}

	sections := []string{title}
	if m.isFiltering || m.filter.Value() != "" {
		sections = append(sections, m.filter.View())
	}
	sections = append(sections, body, "", helpStyle.Render("/: filter | q: back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
