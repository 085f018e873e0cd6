// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/trackmaster/client"
	"github.com/toeirei/trackmaster/internal/i18n"
	"github.com/toeirei/trackmaster/internal/model"
)

func listOnlyRegistry(projects []model.Project) client.Registry {
	return client.NewMockRegistry(nil, client.MockRegistryOverwrites{
		ListProjects: func(ctx context.Context) ([]model.Project, error) {
			return projects, nil
		},
	})
}

func TestMainMenuNavigatesToProjects(t *testing.T) {
	i18n.Init("en")
	m := initialModel(listOnlyRegistry([]model.Project{{ID: 1, Key: "WEB", Name: "Website"}}))

	mdl, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = mdl.(mainModel)
	if m.state != projectsView {
		t.Fatalf("expected projectsView, got %v", m.state)
	}
	if cmd == nil {
		t.Fatal("expected an initial load command")
	}

	// Deliver the load result and check it lands in the list.
	mdl, _ = m.Update(cmd())
	m = mdl.(mainModel)
	if len(m.projects.projects) != 1 || m.projects.projects[0].Key != "WEB" {
		t.Fatalf("unexpected loaded projects: %+v", m.projects.projects)
	}
}

func TestProjectsViewOpensForm(t *testing.T) {
	i18n.Init("en")
	m := initialModel(listOnlyRegistry(nil))
	m.state = projectsView
	m.projects = newProjectsModel(m.registry)

	mdl, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = mdl.(mainModel)
	if cmd == nil {
		t.Fatal("expected a command from the list view")
	}
	mdl, _ = m.Update(cmd())
	m = mdl.(mainModel)
	if m.state != projectFormView {
		t.Fatalf("expected projectFormView after 'n', got %v", m.state)
	}
}

func TestFormReturnsToListOnEscape(t *testing.T) {
	i18n.Init("en")
	m := initialModel(listOnlyRegistry(nil))
	m.state = projectFormView
	m.form = newProjectFormModel(m.registry)

	mdl, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = mdl.(mainModel)
	if cmd == nil {
		t.Fatal("expected a back command")
	}
	mdl, _ = m.Update(cmd())
	m = mdl.(mainModel)
	if m.state != projectsView {
		t.Fatalf("expected projectsView after esc, got %v", m.state)
	}
}

func TestCreatedProjectLandsInList(t *testing.T) {
	i18n.Init("en")
	m := initialModel(listOnlyRegistry([]model.Project{{ID: 1, Key: "WEB", Name: "Website"}}))
	m.state = projectFormView
	m.form = newProjectFormModel(m.registry)

	mdl, cmd := m.Update(projectCreatedMsg{keys: []string{"WEB"}})
	m = mdl.(mainModel)
	if m.state != projectsView {
		t.Fatalf("expected projectsView after creation, got %v", m.state)
	}
	if m.projects.status == "" {
		t.Fatal("expected a status line announcing the new project")
	}
	if cmd == nil {
		t.Fatal("expected a reload command after creation")
	}
}
