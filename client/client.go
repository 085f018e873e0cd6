// Copyright (c) 2026 Trackmaster Team
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"context"

	"github.com/toeirei/trackmaster/internal/model"
)

// Registry is the high-level API for managing projects. UI layers talk to a
// Registry rather than the storage package directly so they can be tested
// against a mock.
type Registry interface {
	// --- Lifecycle ---

	// Close cleans up resources held by the registry and closes any open
	// connections. Calls should pass a context for cancellation/timeouts.
	Close(ctx context.Context) error

	// --- Project Management ---

	// ProjectExists reports whether a project with the given key is already
	// registered. Used by forms to probe key uniqueness while typing.
	ProjectExists(ctx context.Context, key string) (bool, error)

	CreateProject(ctx context.Context, key, name string) (model.Project, error)

	GetProject(ctx context.Context, key string) (*model.Project, error)

	ListProjects(ctx context.Context) ([]model.Project, error)

	RenameProject(ctx context.Context, key, name string) error

	DeleteProject(ctx context.Context, key string) error
}
