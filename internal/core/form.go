// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import "strings"

// ProjectForm holds the state of the manual project-creation workflow. The
// zero value is a fresh, untouched form. The form owns its state for the
// lifetime of one creation attempt; asynchronous results are folded in via
// ApplyProbeResult, which discards anything stale.
type ProjectForm struct {
	Key     string
	KeyErr  error // nil means valid-or-unchecked
	Name    string
	NameErr error

	// NameEdited tracks whether the user has manually edited the name.
	// Until then the name mirrors the key on every key edit.
	NameEdited bool

	Touched    bool
	Validating bool
	Submitting bool
}

// SetKey applies a single edit of the key field and reports whether a
// uniqueness probe should be scheduled for the new value. KeyErr only
// reflects local validation here; a pending probe may still overturn it,
// which is what Validating signals.
func (f *ProjectForm) SetKey(key string) bool {
	f.Key = key
	f.KeyErr = ValidateProjectKey(key)
	if !f.NameEdited {
		f.Name = key
		f.NameErr = ValidateProjectName(key)
	}
	f.Touched = true
	if f.KeyErr != nil {
		f.Validating = false
		return false
	}
	f.Validating = true
	return true
}

// SetName applies a single edit of the name field. Once edited, the name no
// longer mirrors the key.
func (f *ProjectForm) SetName(name string) {
	f.Name = name
	f.NameErr = ValidateProjectName(name)
	f.NameEdited = true
	f.Touched = true
}

// ApplyProbeResult folds the outcome of a uniqueness probe into the form.
// Results for a key that no longer matches the current value are discarded;
// relevance, not arrival order, decides which probe wins. A probe that
// failed outright is reported by the caller as taken=false: availability is
// assumed under uncertainty.
func (f *ProjectForm) ApplyProbeResult(key string, taken bool) {
	if key != f.Key {
		return
	}
	if taken {
		f.KeyErr = ErrKeyTaken
	} else {
		f.KeyErr = nil
	}
	f.Validating = false
}

// SubmitName returns the display name to send on submission: the trimmed
// name, falling back to the trimmed key when the name trims to nothing.
func (f ProjectForm) SubmitName() string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = strings.TrimSpace(f.Key)
	}
	return name
}

// CanSubmit reports whether submission is currently allowed: both fields
// non-empty and error-free. A probe still in flight does not block
// submission; only a recorded key error does.
func CanSubmit(f ProjectForm) bool {
	return f.Key != "" && f.Name != "" && f.KeyErr == nil && f.NameErr == nil
}
