// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

// This file defines the theme abstraction and the primary button variant.
// A Theme is a plain bag of colors; the lookup helpers are pure functions so
// the derived styles can be tested by comparing rendered output.
package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the colors a themed widget may draw from.
type Theme struct {
	Background lipgloss.Color
	Hover      lipgloss.Color
	Contrast   lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme matches the palette used by the rest of the TUI.
func DefaultTheme() Theme {
	return Theme{
		Background: colorHighlight,
		Hover:      colorSpecial,
		Contrast:   colorWhite,
		Border:     colorSubtle,
	}
}

// themeColor returns the widget background for the given theme, preferring
// the hover color when the widget is focused.
func themeColor(t Theme, focused bool) lipgloss.Color {
	if focused {
		return t.Hover
	}
	return t.Background
}

// themeContrast returns the foreground color that stays readable on top of
// the theme's background.
func themeContrast(t Theme) lipgloss.Color {
	return t.Contrast
}

// themeBorder returns the border color for themed widgets.
func themeBorder(t Theme) lipgloss.Color {
	return t.Border
}

// ButtonStyles is the style triple for a button across its interaction states.
type ButtonStyles struct {
	Disabled lipgloss.Style
	Blurred  lipgloss.Style
	Focused  lipgloss.Style
}

// PrimaryButton derives the primary button variant from a theme. The mapping
// is deterministic; calling it twice with the same theme yields styles that
// render identically.
func PrimaryButton(t Theme) ButtonStyles {
	base := lipgloss.NewStyle().
		Padding(0, 3).
		MarginTop(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(themeBorder(t))

	return ButtonStyles{
		Disabled: base.
			Foreground(colorSubtle).
			Background(lipgloss.Color("237")),
		Blurred: base.
			Foreground(themeContrast(t)).
			Background(themeColor(t, false)),
		Focused: base.
			Foreground(themeContrast(t)).
			Background(themeColor(t, true)).
			Underline(true),
	}
}

// Pick returns the style matching the button's current state.
func (b ButtonStyles) Pick(enabled, focused bool) lipgloss.Style {
	switch {
	case !enabled:
		return b.Disabled
	case focused:
		return b.Focused
	default:
		return b.Blurred
	}
}
