// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Trackmaster.
// This file contains the logic for the project creation form: a key input, a
// name input that mirrors the key until manually edited, and a debounced
// uniqueness probe against the registry.
package tui // import "github.com/toeirei/trackmaster/internal/tui"

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/trackmaster/client"
	"github.com/toeirei/trackmaster/internal/core"
	"github.com/toeirei/trackmaster/internal/i18n"
)

// keyProbeDebounce is how long typing must be quiet before a uniqueness
// probe is issued. Rapid edits within the window collapse into one probe.
const keyProbeDebounce = 250 * time.Millisecond

// projectCreatedMsg signals that projects were created and the view should
// return to the project list. Carries the new keys for the parent.
type projectCreatedMsg struct {
	keys []string
}

// keyProbeTickMsg fires when the debounce window for a key edit elapses.
// Only the latest sequence number is honored.
type keyProbeTickMsg struct {
	seq int
}

// keyProbeResultMsg carries the outcome of a uniqueness probe. The key is
// echoed back so stale results can be discarded.
type keyProbeResultMsg struct {
	key   string
	taken bool
}

// submitResultMsg carries the outcome of a creation attempt.
type submitResultMsg struct {
	key string
	err error
}

const (
	focusKey = iota
	focusName
	focusSubmit
	focusCount
)

// projectFormModel holds the state for the project creation form.
type projectFormModel struct {
	registry   client.Registry
	form       core.ProjectForm
	inputs     [2]textinput.Model // key, name
	focusIndex int
	probeSeq   int // latest debounce sequence; older ticks are dropped
	button     ButtonStyles
	err        error
}

// newProjectFormModel creates a new, empty project creation form.
func newProjectFormModel(registry client.Registry) projectFormModel {
	key := textinput.New()
	key.Placeholder = i18n.T("project_form.key_placeholder")
	key.Prompt = "> "
	key.CharLimit = 0
	key.Width = 48
	key.TextStyle = focusedStyle
	key.Cursor.Style = focusedStyle
	key.Focus()

	name := textinput.New()
	name.Placeholder = i18n.T("project_form.name_placeholder")
	name.Prompt = "> "
	name.CharLimit = 0
	name.Width = 48

	return projectFormModel{
		registry: registry,
		inputs:   [2]textinput.Model{key, name},
		button:   PrimaryButton(DefaultTheme()),
	}
}

// Init initializes the form model, returning a command to start the cursor blinking.
func (m projectFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the form model's state.
func (m projectFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToListMsg{} }

		case "tab", "down":
			m.focusIndex = (m.focusIndex + 1) % focusCount
			return m, m.applyFocus()

		case "shift+tab", "up":
			m.focusIndex = (m.focusIndex - 1 + focusCount) % focusCount
			return m, m.applyFocus()

		case "enter":
			return m.submit()
		}

	case keyProbeTickMsg:
		// A newer edit supersedes this tick; let its own tick do the probe.
		// No probe either when the current value failed local validation.
		if msg.seq != m.probeSeq || !m.form.Validating {
			return m, nil
		}
		return m, probeKeyCmd(m.registry, m.form.Key)

	case keyProbeResultMsg:
		m.form.ApplyProbeResult(msg.key, msg.taken)
		return m, nil

	case submitResultMsg:
		if msg.err != nil {
			// Keep the form alive so the user can retry.
			m.form.Submitting = false
			m.err = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return projectCreatedMsg{keys: []string{msg.key}} }
	}

	// Delegate remaining messages to the focused input and fold any value
	// change back into the form state.
	switch m.focusIndex {
	case focusKey:
		before := m.inputs[focusKey].Value()
		m.inputs[focusKey], cmd = m.inputs[focusKey].Update(msg)
		after := m.inputs[focusKey].Value()
		if after != before {
			if m.form.SetKey(after) {
				m.probeSeq++
				cmd = tea.Batch(cmd, debounceProbeCmd(m.probeSeq))
			}
			if !m.form.NameEdited {
				m.inputs[focusName].SetValue(m.form.Name)
			}
		}
	case focusName:
		before := m.inputs[focusName].Value()
		m.inputs[focusName], cmd = m.inputs[focusName].Update(msg)
		after := m.inputs[focusName].Value()
		if after != before {
			m.form.SetName(after)
		}
	}
	return m, cmd
}

// applyFocus moves textinput focus to match focusIndex.
func (m *projectFormModel) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focusIndex {
			cmd = m.inputs[i].Focus()
			m.inputs[i].TextStyle = focusedStyle
			m.inputs[i].Cursor.Style = focusedStyle
		} else {
			m.inputs[i].Blur()
			m.inputs[i].TextStyle = lipgloss.NewStyle()
		}
	}
	return cmd
}

// submit starts a creation attempt if the form is currently eligible.
// A probe still in flight does not block submission.
func (m projectFormModel) submit() (tea.Model, tea.Cmd) {
	if m.form.Submitting || !core.CanSubmit(m.form) {
		return m, nil
	}
	m.form.Submitting = true
	m.err = nil
	return m, createProjectCmd(m.registry, m.form.Key, m.form.SubmitName())
}

// debounceProbeCmd waits out the debounce window, then delivers a tick
// carrying the sequence number of the edit that scheduled it.
func debounceProbeCmd(seq int) tea.Cmd {
	return tea.Tick(keyProbeDebounce, func(time.Time) tea.Msg {
		return keyProbeTickMsg{seq: seq}
	})
}

// probeKeyCmd asks the registry whether a key is taken. A failed probe is
// reported as available; uncertainty must not block the user.
func probeKeyCmd(registry client.Registry, key string) tea.Cmd {
	return func() tea.Msg {
		taken, err := registry.ProjectExists(context.Background(), key)
		if err != nil {
			taken = false
		}
		return keyProbeResultMsg{key: key, taken: taken}
	}
}

// createProjectCmd performs the actual creation call.
func createProjectCmd(registry client.Registry, key, name string) tea.Cmd {
	return func() tea.Msg {
		p, err := registry.CreateProject(context.Background(), key, name)
		if err != nil {
			return submitResultMsg{key: key, err: err}
		}
		return submitResultMsg{key: p.Key}
	}
}

// fieldErrorText maps a validation error to localized display text.
func fieldErrorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, core.ErrKeyTaken):
		return i18n.T("project_key.taken")
	case errors.Is(err, core.ErrNameEmpty), errors.Is(err, core.ErrNameTooLong):
		return i18n.T("project_name.error")
	default:
		return i18n.T("project_key.error")
	}
}

// View renders the project creation form UI.
func (m projectFormModel) View() string {
	title := mainTitleStyle.Render("📁 " + i18n.T("project_form.title"))

	var items []string
	items = append(items, helpStyle.Render(i18n.T("project_form.key_label")))
	items = append(items, m.inputs[focusKey].View())
	if m.form.Touched && m.form.KeyErr != nil {
		items = append(items, errorStyle.Render(fieldErrorText(m.form.KeyErr)))
	} else if m.form.Validating {
		items = append(items, helpStyle.Render(i18n.T("project_form.checking")))
	}
	items = append(items, "")

	items = append(items, helpStyle.Render(i18n.T("project_form.name_label")))
	items = append(items, m.inputs[focusName].View())
	if m.form.Touched && m.form.NameErr != nil {
		items = append(items, errorStyle.Render(fieldErrorText(m.form.NameErr)))
	}

	style := m.button.Pick(core.CanSubmit(m.form), m.focusIndex == focusSubmit)
	items = append(items, style.Render(i18n.T("project_form.submit")))

	if m.err != nil {
		items = append(items, "", errorStyle.Render(fmt.Sprintf(i18n.T("project_form.submit_error"), m.err)))
	}

	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(1, 2).
		Width(60).
		Render(lipgloss.JoinVertical(lipgloss.Left, items...))

	helpLine := helpStyle.Render(i18n.T("project_form.help"))

	return lipgloss.JoinVertical(lipgloss.Left, title, pane, "", helpLine)
}
