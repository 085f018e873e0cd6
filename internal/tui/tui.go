// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Trackmaster.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other sub-views.
package tui // import "github.com/toeirei/trackmaster/internal/tui"

import (
	"context"
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/toeirei/trackmaster/client"
	"github.com/toeirei/trackmaster/internal/i18n"
	"github.com/toeirei/trackmaster/internal/logging"
	"github.com/toeirei/trackmaster/internal/model"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// menuView is the main dashboard and navigation menu.
	menuView viewState = iota
	projectsView
	projectFormView
	auditLogView
	languageView
)

// ConfigSaver persists the active configuration after in-TUI changes such
// as switching the language.
type ConfigSaver interface {
	Save() error
}

type noopConfigSaver struct{}

func (noopConfigSaver) Save() error { return nil }

// configSaver is replaced by the CLI layer with a real file writer.
var configSaver ConfigSaver = noopConfigSaver{}

// SetConfigSaver installs the saver used when settings change inside the TUI.
func SetConfigSaver(s ConfigSaver) {
	if s != nil {
		configSaver = s
	}
}

// dashboardDataMsg is a message containing the data for the main menu dashboard.
type dashboardDataMsg struct {
	data dashboardData
}

// languageChangedMsg is a message to signal that the language has changed and the UI should be re-initialized.
type languageChangedMsg struct{}

// dashboardData holds the summary information for the main menu view.
type dashboardData struct {
	projectCount int
	recentLogs   []model.AuditLogEntry
	err          error
}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active sub-model.
type mainModel struct {
	registry  client.Registry
	state     viewState
	menu      menuModel
	projects  projectsModel
	form      projectFormModel
	auditLog  auditLogModel
	language  languageModel
	dashboard dashboardData
	width     int
	height    int
	err       error
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string // The menu items to show.
	cursor  int      // Which menu item our cursor is pointing at.
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices     map[string]string // map of lang code to display name
	orderedKeys []string          // for stable iteration
	cursor      int
}

// initialModel creates the starting state of the TUI, beginning at the main menu.
func initialModel(registry client.Registry) mainModel {
	return mainModel{
		registry: registry,
		state:    menuView,
		menu: menuModel{
			choices: []string{
				i18n.T("menu.projects"),
				i18n.T("menu.new_project"),
				i18n.T("menu.audit_log"),
				i18n.T("menu.language"),
			},
		},
	}
}

// refreshDashboardCmd loads the summary data shown on the main menu.
func refreshDashboardCmd(registry client.Registry) tea.Cmd {
	return func() tea.Msg {
		var data dashboardData
		projects, err := registry.ListProjects(context.Background())
		if err != nil {
			data.err = err
			return dashboardDataMsg{data: data}
		}
		data.projectCount = len(projects)
		return dashboardDataMsg{data: data}
	}
}

// Init is the first function that will be called by the Bubble Tea runtime.
// It kicks off the initial command to load data for the dashboard.
func (m mainModel) Init() tea.Cmd {
	return refreshDashboardCmd(m.registry)
}

// Update is the main message loop. It handles all events (like key presses and
// window size changes) and delegates them to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case dashboardDataMsg:
		m.dashboard = msg.data
		if msg.data.err != nil {
			m.err = msg.data.err
		}
		return m, nil

	case languageChangedMsg:
		// The language has changed. Re-initialize the entire model to apply new translations everywhere.
		newModel := initialModel(m.registry)
		// Preserve the current window dimensions so the layout remains correct.
		newModel.width = m.width
		newModel.height = m.height
		return newModel, newModel.Init()
	}

	// Delegate updates to the currently active view.
	switch m.state {
	case projectsView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshDashboardCmd(m.registry)
		}
		if _, ok := msg.(openProjectFormMsg); ok {
			m.state = projectFormView
			m.form = newProjectFormModel(m.registry)
			return m, m.form.Init()
		}
		var newProjectsModel tea.Model
		newProjectsModel, cmd = m.projects.Update(msg)
		m.projects = newProjectsModel.(projectsModel)

	case projectFormView:
		if _, ok := msg.(backToListMsg); ok {
			m.state = projectsView
			m.projects = newProjectsModel(m.registry)
			return m, m.projects.Init()
		}
		// A successful creation returns to the list, which shows the new key.
		if created, ok := msg.(projectCreatedMsg); ok {
			m.state = projectsView
			m.projects = newProjectsModel(m.registry)
			var listModel tea.Model
			listModel, cmd = m.projects.Update(created)
			m.projects = listModel.(projectsModel)
			return m, cmd
		}
		var newFormModel tea.Model
		newFormModel, cmd = m.form.Update(msg)
		m.form = newFormModel.(projectFormModel)

	case auditLogView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshDashboardCmd(m.registry)
		}
		var newAuditLogModel tea.Model
		newAuditLogModel, cmd = m.auditLog.Update(msg)
		m.auditLog = newAuditLogModel.(auditLogModel)

	case languageView:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q", "esc":
				m.state = menuView
				return m, refreshDashboardCmd(m.registry)
			case "up", "k":
				if m.language.cursor > 0 {
					m.language.cursor--
				}
			case "down", "j":
				if m.language.cursor < len(m.language.orderedKeys)-1 {
					m.language.cursor++
				}
			case "enter":
				langCode := m.language.orderedKeys[m.language.cursor]
				i18n.SetLang(langCode)
				viper.Set("language", langCode)
				if err := configSaver.Save(); err != nil {
					m.err = fmt.Errorf("failed to save config: %w", err)
				}

				// Signal that the language has changed so the entire UI can be re-initialized.
				return m, func() tea.Msg { return languageChangedMsg{} }
			}
		}

	default: // menuView
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.menu.cursor > 0 {
					m.menu.cursor--
				}
			case "down", "j":
				if m.menu.cursor < len(m.menu.choices)-1 {
					m.menu.cursor++
				}
			case "enter":
				switch m.menu.cursor {
				case 0: // Manage Projects
					m.state = projectsView
					m.projects = newProjectsModel(m.registry)
					return m, m.projects.Init()
				case 1: // Create Project
					m.state = projectFormView
					m.form = newProjectFormModel(m.registry)
					return m, m.form.Init()
				case 2: // View Audit Log
					m.state = auditLogView
					m.auditLog = newAuditLogModel()
					return m, nil
				case 3: // Language
					m.state = languageView
					m.language = newLanguageModel()
					return m, nil
				}
			case "L":
				// "L" opens the language menu from anywhere on the dashboard.
				m.state = languageView
				m.language = newLanguageModel()
				return m, nil
			}
		}
	}

	return m, cmd
}

// View renders the TUI. It's called after every Update and delegates rendering
// to the currently active sub-model.
func (m mainModel) View() string {
	if m.err != nil {
		// A simple error view
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
		return errStyle.Render(fmt.Sprintf("An error occurred: %v", m.err))
	}

	// Delegate rendering to the currently active view.
	switch m.state {
	case projectsView:
		return m.projects.View()
	case projectFormView:
		return m.form.View()
	case auditLogView:
		return m.auditLog.View()
	case languageView:
		return m.language.View()
	default: // menuView
		return m.menu.View(m.dashboard)
	}
}

// View renders the main menu and dashboard.
func (m menuModel) View(data dashboardData) string {
	title := mainTitleStyle.Render("📋 " + i18n.T("app.title"))

	var menuItems []string
	for i, choice := range m.choices {
		if m.cursor == i {
			menuItems = append(menuItems, selectedItemStyle.Render("▸ "+choice))
		} else {
			menuItems = append(menuItems, itemStyle.Render("  "+choice))
		}
	}
	menuContent := lipgloss.JoinVertical(lipgloss.Left, menuItems...)

	status := helpStyle.Render(fmt.Sprintf("%d projects registered", data.projectCount))

	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(1, 2).
		Width(40)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		paneStyle.Render(menuContent),
		"",
		status,
		helpStyle.Render("enter: select | q: quit"),
	)
}

// newLanguageModel creates a new model for the language selection view.
func newLanguageModel() languageModel {
	// Get the dynamically discovered locales from the i18n package.
	choices := i18n.GetAvailableLocales()

	// Create a sorted list of keys for stable iteration and display order.
	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return languageModel{
		choices:     choices,
		orderedKeys: keys,
		cursor:      0,
	}
}

// Init for languageModel.
func (m languageModel) Init() tea.Cmd { return nil }

// Update for languageModel.
func (m languageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

// View for languageModel.
func (m languageModel) View() string {
	title := mainTitleStyle.Render("🌐 " + i18n.T("language.title"))

	var listItems []string
	for i, langCode := range m.orderedKeys {
		displayName := m.choices[langCode]
		if m.cursor == i {
			listItems = append(listItems, selectedItemStyle.Render("▸ "+displayName))
		} else {
			listItems = append(listItems, itemStyle.Render("  "+displayName))
		}
	}

	paneStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle).Padding(1, 2)
	listPane := paneStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))

	return lipgloss.JoinVertical(lipgloss.Left, title, listPane, "", helpStyle.Render("enter: select | esc: back"))
}

// Run is the main entrypoint for the TUI. It initializes and runs the Bubble Tea program.
func Run(registry client.Registry) {
	if _, err := tea.NewProgram(initialModel(registry)).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		os.Exit(1)
	}
}
