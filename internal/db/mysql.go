// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"fmt"

	"github.com/toeirei/trackmaster/internal/model"
	"github.com/uptrace/bun"
)

// MySQLStore is the MySQL/MariaDB implementation of the Store interface.
type MySQLStore struct {
	bun *bun.DB
}

// Close closes the underlying database connection.
func (s *MySQLStore) Close() error {
	return s.bun.Close()
}

// AddProject inserts a new project and records the action in the audit log.
func (s *MySQLStore) AddProject(key, name string) (int, error) {
	id, err := AddProjectBun(s.bun, key, name)
	if err != nil {
		return 0, err
	}
	_ = s.LogAction("ADD_PROJECT", fmt.Sprintf("Key: %s, Name: %s", key, name))
	return id, nil
}

// GetProjectByKey retrieves a single project by its unique key.
func (s *MySQLStore) GetProjectByKey(key string) (*model.Project, error) {
	return GetProjectByKeyBun(s.bun, key)
}

// HasProject reports whether a project with the given key exists.
func (s *MySQLStore) HasProject(key string) (bool, error) {
	return HasProjectBun(s.bun, key)
}

// GetAllProjects retrieves all projects ordered by key.
func (s *MySQLStore) GetAllProjects() ([]model.Project, error) {
	return GetAllProjectsBun(s.bun)
}

// UpdateProjectName changes a project's display name.
func (s *MySQLStore) UpdateProjectName(key, name string) error {
	if err := UpdateProjectNameBun(s.bun, key, name); err != nil {
		return err
	}
	_ = s.LogAction("UPDATE_PROJECT_NAME", fmt.Sprintf("Key: %s, Name: %s", key, name))
	return nil
}

// DeleteProject removes a project by its key.
func (s *MySQLStore) DeleteProject(key string) error {
	if err := DeleteProjectBun(s.bun, key); err != nil {
		return err
	}
	_ = s.LogAction("DELETE_PROJECT", fmt.Sprintf("Key: %s", key))
	return nil
}

// LogAction records an event in the audit log.
func (s *MySQLStore) LogAction(action string, details string) error {
	return LogActionBun(s.bun, action, details)
}

// GetAllAuditLogEntries retrieves all audit log entries, most recent first.
func (s *MySQLStore) GetAllAuditLogEntries() ([]model.AuditLogEntry, error) {
	return GetAllAuditLogEntriesBun(s.bun)
}

// ExportDataForBackup exports all data for a backup.
func (s *MySQLStore) ExportDataForBackup() (*model.BackupData, error) {
	return ExportDataForBackupBun(s.bun)
}

// ImportDataFromBackup restores the database from a backup, replacing all data.
func (s *MySQLStore) ImportDataFromBackup(backup *model.BackupData) error {
	return ImportDataFromBackupBun(s.bun, backup)
}

// IntegrateDataFromBackup merges backup data, skipping existing projects.
func (s *MySQLStore) IntegrateDataFromBackup(backup *model.BackupData) error {
	return IntegrateDataFromBackupBun(s.bun, backup)
}
