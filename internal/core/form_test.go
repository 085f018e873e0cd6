// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import "testing"

func TestSetKeyMirrorsNameUntilEdited(t *testing.T) {
	var f ProjectForm

	if probe := f.SetKey("my-project"); !probe {
		t.Fatalf("valid key must schedule a probe")
	}
	if f.Name != "my-project" {
		t.Fatalf("name must mirror key while unedited, got %q", f.Name)
	}
	if f.NameErr != nil {
		t.Fatalf("mirrored name must be revalidated, got %v", f.NameErr)
	}
	if !f.Touched || !f.Validating {
		t.Fatalf("key edit must set touched and validating, got %+v", f)
	}

	f.SetName("Custom Name")
	f.SetKey("other-key")
	if f.Name != "Custom Name" {
		t.Fatalf("name must stop mirroring once edited, got %q", f.Name)
	}
}

func TestSetKeyInvalidSkipsProbe(t *testing.T) {
	var f ProjectForm

	if probe := f.SetKey("123"); probe {
		t.Fatalf("locally invalid key must not schedule a probe")
	}
	if f.KeyErr != ErrKeyFormat {
		t.Fatalf("expected ErrKeyFormat, got %v", f.KeyErr)
	}
	if f.Validating {
		t.Fatalf("validating must be clear when no probe is scheduled")
	}
	if CanSubmit(f) {
		t.Fatalf("submission must be blocked by a key error")
	}
}

func TestApplyProbeResult(t *testing.T) {
	var f ProjectForm
	f.SetKey("taken-key")

	// Stale result for an old key must not touch the form.
	f.ApplyProbeResult("old-key", true)
	if f.KeyErr != nil || !f.Validating {
		t.Fatalf("stale probe result must be discarded, got %+v", f)
	}

	f.ApplyProbeResult("taken-key", true)
	if f.KeyErr != ErrKeyTaken {
		t.Fatalf("expected ErrKeyTaken, got %v", f.KeyErr)
	}
	if f.Validating {
		t.Fatalf("probe completion must clear validating")
	}
	if CanSubmit(f) {
		t.Fatalf("taken key must block submission")
	}

	// Editing the key and getting a clean probe recovers.
	f.SetKey("taken-key2")
	f.ApplyProbeResult("taken-key2", false)
	if f.KeyErr != nil || f.Validating {
		t.Fatalf("clean probe must clear the error, got %+v", f)
	}
	if !CanSubmit(f) {
		t.Fatalf("expected submission to be allowed")
	}
}

func TestCanSubmitIgnoresValidating(t *testing.T) {
	var f ProjectForm
	f.SetKey("my-project")
	if !f.Validating {
		t.Fatalf("expected a pending probe")
	}
	// A probe in flight does not gate submission; only recorded errors do.
	if !CanSubmit(f) {
		t.Fatalf("submission must be allowed while validating")
	}

	if CanSubmit(ProjectForm{}) {
		t.Fatalf("empty form must not be submittable")
	}
}

func TestSubmitName(t *testing.T) {
	f := ProjectForm{Key: "my-key", Name: "  My Project  "}
	if got := f.SubmitName(); got != "My Project" {
		t.Fatalf("expected trimmed name, got %q", got)
	}

	f = ProjectForm{Key: " my-key ", Name: "   "}
	if got := f.SubmitName(); got != "my-key" {
		t.Fatalf("expected fallback to trimmed key, got %q", got)
	}
}
