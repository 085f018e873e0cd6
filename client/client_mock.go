// Copyright (c) 2026 Trackmaster Team
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"context"

	"github.com/toeirei/trackmaster/internal/model"
)

type MockRegistry struct {
	BaseRegistry Registry
	Overwrites   MockRegistryOverwrites
}

type MockRegistryOverwrites struct {
	Close         func(ctx context.Context) error
	CreateProject func(ctx context.Context, key, name string) (model.Project, error)
	DeleteProject func(ctx context.Context, key string) error
	GetProject    func(ctx context.Context, key string) (*model.Project, error)
	ListProjects  func(ctx context.Context) ([]model.Project, error)
	ProjectExists func(ctx context.Context, key string) (bool, error)
	RenameProject func(ctx context.Context, key, name string) error
}

var _ Registry = (*MockRegistry)(nil)

// registry := NewMockRegistry(nil, MockRegistryOverwrites{ /* overwrite Registry methods here... */ })
func NewMockRegistry(base Registry, overwrites MockRegistryOverwrites) *MockRegistry {
	return &MockRegistry{
		BaseRegistry: base,
		Overwrites:   overwrites,
	}
}

// --- Registry implementation ---

func (m *MockRegistry) Close(ctx context.Context) error {
	if m.Overwrites.Close != nil {
		return m.Overwrites.Close(ctx)
	} else if m.BaseRegistry != nil {
		return m.BaseRegistry.Close(ctx)
	}
	panic("MockRegistry.Close not implemented")
}
func (m *MockRegistry) CreateProject(ctx context.Context, key, name string) (model.Project, error) {
	if m.Overwrites.CreateProject != nil {
		return m.Overwrites.CreateProject(ctx, key, name)
	} else if m.BaseRegistry != nil {
		return m.BaseRegistry.CreateProject(ctx, key, name)
	}
	panic("MockRegistry.CreateProject not implemented")
}
func (m *MockRegistry) DeleteProject(ctx context.Context, key string) error {
	if m.Overwrites.DeleteProject != nil {
		return m.Overwrites.DeleteProject(ctx, key)
	} else if m.BaseRegistry != nil {
		return m.BaseRegistry.DeleteProject(ctx, key)
	}
	panic("MockRegistry.DeleteProject not implemented")
}
func (m *MockRegistry) GetProject(ctx context.Context, key string) (*model.Project, error) {
	if m.Overwrites.GetProject != nil {
		return m.Overwrites.GetProject(ctx, key)
	} else if m.BaseRegistry != nil {
		return m.BaseRegistry.GetProject(ctx, key)
	}
	panic("MockRegistry.GetProject not implemented")
}
func (m *MockRegistry) ListProjects(ctx context.Context) ([]model.Project, error) {
	if m.Overwrites.ListProjects != nil {
		return m.Overwrites.ListProjects(ctx)
	} else if m.BaseRegistry != nil {
		return m.BaseRegistry.ListProjects(ctx)
	}
	panic("MockRegistry.ListProjects not implemented")
}
func (m *MockRegistry) ProjectExists(ctx context.Context, key string) (bool, error) {
	if m.Overwrites.ProjectExists != nil {
		return m.Overwrites.ProjectExists(ctx, key)
	} else if m.BaseRegistry != nil {
		return m.BaseRegistry.ProjectExists(ctx, key)
	}
	panic("MockRegistry.ProjectExists not implemented")
}
func (m *MockRegistry) RenameProject(ctx context.Context, key, name string) error {
	if m.Overwrites.RenameProject != nil {
		return m.Overwrites.RenameProject(ctx, key, name)
	} else if m.BaseRegistry != nil {
		return m.BaseRegistry.RenameProject(ctx, key, name)
	}
	panic("MockRegistry.RenameProject not implemented")
}
