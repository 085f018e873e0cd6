// Copyright (c) 2026 Trackmaster Team
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the Trackmaster command-line interface. The root
// command launches the interactive TUI; subcommands cover scripting and
// operational tasks like backup, restore and database maintenance.
package cli
