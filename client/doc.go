// Copyright (c) 2026 Trackmaster Team
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package client provides the Registry API used by the TUI, the CLI and
// external tooling to interact with Trackmaster programmatically.
package client
