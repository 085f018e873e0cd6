// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "github.com/toeirei/trackmaster/internal/model"

// Store defines the interface for all database operations in Trackmaster.
// This allows for multiple database backends to be implemented.
type Store interface {
	// Project methods
	AddProject(key, name string) (int, error)
	GetProjectByKey(key string) (*model.Project, error)
	HasProject(key string) (bool, error)
	GetAllProjects() ([]model.Project, error)
	UpdateProjectName(key, name string) error
	DeleteProject(key string) error

	// Audit Log methods
	LogAction(action string, details string) error
	GetAllAuditLogEntries() ([]model.AuditLogEntry, error)

	// Backup methods
	ExportDataForBackup() (*model.BackupData, error)
	ImportDataFromBackup(backup *model.BackupData) error
	IntegrateDataFromBackup(backup *model.BackupData) error

	Close() error
}
