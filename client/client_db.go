// Copyright (c) 2026 Trackmaster Team
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"context"
	"fmt"

	"github.com/toeirei/trackmaster/internal/core"
	"github.com/toeirei/trackmaster/internal/db"
	"github.com/toeirei/trackmaster/internal/model"
)

// DBRegistry is the store-backed Registry implementation.
type DBRegistry struct {
	store db.Store
}

// *DBRegistry implements Registry
var _ Registry = (*DBRegistry)(nil)

// NewDBRegistry opens the configured database, runs migrations and returns a
// ready-to-use registry.
func NewDBRegistry(dbType, dsn string) (*DBRegistry, error) {
	store, err := db.NewStoreFromDSN(dbType, dsn)
	if err != nil {
		return nil, err
	}
	return &DBRegistry{store: store}, nil
}

// NewDBRegistryFromStore wraps an already-open store. Mainly for tests.
func NewDBRegistryFromStore(store db.Store) *DBRegistry {
	return &DBRegistry{store: store}
}

// Close closes the underlying store.
func (r *DBRegistry) Close(ctx context.Context) error {
	return r.store.Close()
}

// ProjectExists reports whether a project with the given key is registered.
func (r *DBRegistry) ProjectExists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.store.HasProject(key)
}

// CreateProject validates and registers a new project, returning the stored
// record. Validation failures and duplicate keys surface as errors.
func (r *DBRegistry) CreateProject(ctx context.Context, key, name string) (model.Project, error) {
	if err := ctx.Err(); err != nil {
		return model.Project{}, err
	}
	if err := core.ValidateProjectKey(key); err != nil {
		return model.Project{}, err
	}
	if err := core.ValidateProjectName(name); err != nil {
		return model.Project{}, err
	}

	if _, err := r.store.AddProject(key, name); err != nil {
		return model.Project{}, err
	}
	p, err := r.store.GetProjectByKey(key)
	if err != nil {
		return model.Project{}, err
	}
	if p == nil {
		return model.Project{}, fmt.Errorf("project %s vanished after insert", key)
	}
	return *p, nil
}

// GetProject retrieves a project by key, or (nil, nil) if absent.
func (r *DBRegistry) GetProject(ctx context.Context, key string) (*model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.GetProjectByKey(key)
}

// ListProjects returns all registered projects ordered by key.
func (r *DBRegistry) ListProjects(ctx context.Context) ([]model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.GetAllProjects()
}

// RenameProject changes a project's display name.
func (r *DBRegistry) RenameProject(ctx context.Context, key, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := core.ValidateProjectName(name); err != nil {
		return err
	}
	return r.store.UpdateProjectName(key, name)
}

// DeleteProject removes a project by key.
func (r *DBRegistry) DeleteProject(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.store.DeleteProject(key)
}
