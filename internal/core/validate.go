// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

// package core holds the pure domain logic for Trackmaster: project
// key/name validation and the state transitions of the manual
// project-creation workflow.
package core

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

// Limits for project identifiers. Keys are machine-facing and may be long;
// names are display text.
const (
	MaxProjectKeyLength  = 400
	MaxProjectNameLength = 255
)

// projectKeyPattern accepts word characters, hyphens, dots and colons, and
// requires at least one ASCII letter so a key can never be purely numeric.
var projectKeyPattern = regexp.MustCompile(`^[\w\-.:]*[a-zA-Z]+[\w\-.:]*$`)

// Validation failures are sentinel errors so callers can branch on them and
// map them to catalog messages at the presentation layer.
var (
	ErrKeyTooLong  = errors.New("project key exceeds maximum length")
	ErrKeyFormat   = errors.New("project key has invalid format")
	ErrKeyTaken    = errors.New("project key already in use")
	ErrNameEmpty   = errors.New("project name is empty")
	ErrNameTooLong = errors.New("project name exceeds maximum length")
)

// ValidateProjectKey checks a candidate project key. It is a pure function
// of the key string; uniqueness is checked separately against the registry.
func ValidateProjectKey(key string) error {
	if utf8.RuneCountInString(key) > MaxProjectKeyLength {
		return ErrKeyTooLong
	}
	if !projectKeyPattern.MatchString(key) {
		return ErrKeyFormat
	}
	return nil
}

// ValidateProjectName checks a candidate display name.
func ValidateProjectName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxProjectNameLength {
		return ErrNameTooLong
	}
	return nil
}
