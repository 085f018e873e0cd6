// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPrimaryButtonDeterministic(t *testing.T) {
	theme := DefaultTheme()
	a := PrimaryButton(theme)
	b := PrimaryButton(theme)

	if a.Focused.Render("Create") != b.Focused.Render("Create") {
		t.Error("focused style should render identically for the same theme")
	}
	if a.Blurred.Render("Create") != b.Blurred.Render("Create") {
		t.Error("blurred style should render identically for the same theme")
	}
	if a.Disabled.Render("Create") != b.Disabled.Render("Create") {
		t.Error("disabled style should render identically for the same theme")
	}
}

func TestPrimaryButtonUsesThemeColors(t *testing.T) {
	theme := Theme{
		Background: lipgloss.Color("21"),
		Hover:      lipgloss.Color("93"),
		Contrast:   lipgloss.Color("231"),
		Border:     lipgloss.Color("240"),
	}

	if got := themeColor(theme, false); got != theme.Background {
		t.Errorf("expected background color, got %v", got)
	}
	if got := themeColor(theme, true); got != theme.Hover {
		t.Errorf("expected hover color when focused, got %v", got)
	}
	if got := themeContrast(theme); got != theme.Contrast {
		t.Errorf("expected contrast color, got %v", got)
	}
	if got := themeBorder(theme); got != theme.Border {
		t.Errorf("expected border color, got %v", got)
	}
}

func TestButtonStylesPick(t *testing.T) {
	b := PrimaryButton(DefaultTheme())

	if b.Pick(false, true).Render("x") != b.Disabled.Render("x") {
		t.Error("disabled wins over focus")
	}
	if b.Pick(true, true).Render("x") != b.Focused.Render("x") {
		t.Error("enabled and focused should pick the focused style")
	}
	if b.Pick(true, false).Render("x") != b.Blurred.Render("x") {
		t.Error("enabled and blurred should pick the blurred style")
	}
}
