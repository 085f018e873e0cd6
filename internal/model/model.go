// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures for Trackmaster.
package model

import "fmt"

// Project represents a single registered project. The key is the unique
// textual identifier; the name is the human-readable display name.
type Project struct {
	ID        int    `json:"id"`
	Key       string `json:"key"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// String returns the "KEY (name)" representation used in lists and logs.
func (p Project) String() string {
	return fmt.Sprintf("%s (%s)", p.Key, p.Name)
}

// AuditLogEntry represents a single recorded action in the audit trail.
type AuditLogEntry struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

// BackupData is a container for all data to be exported for a backup.
type BackupData struct {
	// SchemaVersion helps in handling migrations during restore.
	SchemaVersion int `json:"schema_version"`

	Projects        []Project       `json:"projects"`
	AuditLogEntries []AuditLogEntry `json:"audit_log_entries"`
}
