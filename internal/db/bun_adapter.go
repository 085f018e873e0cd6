// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"os/user"
	"strings"
	"time"

	"github.com/toeirei/trackmaster/internal/model"
	"github.com/uptrace/bun"
)

// ProjectModel maps the `projects` table for Bun queries.
type ProjectModel struct {
	bun.BaseModel `bun:"table:projects"`
	ID            int    `bun:"id,pk,autoincrement"`
	Key           string `bun:"key"`
	Name          string `bun:"name"`
	CreatedAt     string `bun:"created_at"`
}

// AuditLogModel maps the `audit_log` table.
type AuditLogModel struct {
	bun.BaseModel `bun:"table:audit_log"`
	ID            int    `bun:"id,pk,autoincrement"`
	Timestamp     string `bun:"timestamp"`
	Username      string `bun:"username"`
	Action        string `bun:"action"`
	Details       string `bun:"details"`
}

func projectModelToModel(p ProjectModel) model.Project {
	return model.Project{
		ID:        p.ID,
		Key:       p.Key,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func auditLogModelToModel(e AuditLogModel) model.AuditLogEntry {
	return model.AuditLogEntry{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Username:  e.Username,
		Action:    e.Action,
		Details:   e.Details,
	}
}

// AddProjectBun inserts a new project and returns its assigned ID.
// Duplicate keys surface as ErrDuplicate.
func AddProjectBun(bdb *bun.DB, key, name string) (int, error) {
	ctx := context.Background()
	pm := &ProjectModel{
		Key:       key,
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	// Use Returning to get the assigned ID in a DB-agnostic way.
	if _, err := bdb.NewInsert().Model(pm).Column("key", "name", "created_at").Returning("id").Exec(ctx); err != nil {
		return 0, MapDBError(err)
	}
	return pm.ID, nil
}

// GetProjectByKeyBun retrieves a single project by its unique key.
// It returns (nil, nil) when no such project exists.
func GetProjectByKeyBun(bdb *bun.DB, key string) (*model.Project, error) {
	ctx := context.Background()

	var pm ProjectModel
	// `key` is a reserved word on some engines; let Bun quote it per dialect.
	err := bdb.NewSelect().Model(&pm).Where("? = ?", bun.Ident("key"), key).Limit(1).Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	m := projectModelToModel(pm)
	return &m, nil
}

// HasProjectBun reports whether a project with the given key exists.
func HasProjectBun(bdb *bun.DB, key string) (bool, error) {
	ctx := context.Background()
	count, err := bdb.NewSelect().Model((*ProjectModel)(nil)).Where("? = ?", bun.Ident("key"), key).Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAllProjectsBun retrieves all projects ordered by key.
func GetAllProjectsBun(bdb *bun.DB) ([]model.Project, error) {
	ctx := context.Background()

	var pms []ProjectModel
	if err := bdb.NewSelect().Model(&pms).OrderExpr("? ASC", bun.Ident("key")).Scan(ctx); err != nil {
		return nil, err
	}

	projects := make([]model.Project, 0, len(pms))
	for _, pm := range pms {
		projects = append(projects, projectModelToModel(pm))
	}
	return projects, nil
}

// UpdateProjectNameBun updates the display name of the project with the given key.
func UpdateProjectNameBun(bdb *bun.DB, key, name string) error {
	ctx := context.Background()
	_, err := bdb.NewUpdate().Model((*ProjectModel)(nil)).
		Set("? = ?", bun.Ident("name"), name).
		Where("? = ?", bun.Ident("key"), key).
		Exec(ctx)
	return err
}

// DeleteProjectBun removes a project by its key.
func DeleteProjectBun(bdb *bun.DB, key string) error {
	ctx := context.Background()
	_, err := bdb.NewDelete().Model((*ProjectModel)(nil)).Where("? = ?", bun.Ident("key"), key).Exec(ctx)
	return err
}

// LogActionBun inserts an audit log entry with the current OS user.
func LogActionBun(bdb *bun.DB, action string, details string) error {
	ctx := context.Background()
	curUser, err := user.Current()
	username := "unknown"
	if err == nil {
		if parts := strings.Split(curUser.Username, `\`); len(parts) > 1 {
			username = parts[1]
		} else {
			username = curUser.Username
		}
	}
	entry := &AuditLogModel{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Username:  username,
		Action:    action,
		Details:   details,
	}
	_, err = bdb.NewInsert().Model(entry).Column("timestamp", "username", "action", "details").Exec(ctx)
	return MapDBError(err)
}

// GetAllAuditLogEntriesBun retrieves all audit entries, most recent first.
func GetAllAuditLogEntriesBun(bdb *bun.DB) ([]model.AuditLogEntry, error) {
	ctx := context.Background()

	var ems []AuditLogModel
	if err := bdb.NewSelect().Model(&ems).OrderExpr("id DESC").Scan(ctx); err != nil {
		return nil, err
	}

	entries := make([]model.AuditLogEntry, 0, len(ems))
	for _, em := range ems {
		entries = append(entries, auditLogModelToModel(em))
	}
	return entries, nil
}

// ExportDataForBackupBun exports all tables' data into a model.BackupData
// using a Bun transaction for a consistent snapshot.
func ExportDataForBackupBun(bdb *bun.DB) (*model.BackupData, error) {
	ctx := context.Background()
	var backup *model.BackupData
	err := WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		backup = &model.BackupData{SchemaVersion: 1}

		var pms []ProjectModel
		if err := tx.NewSelect().Model(&pms).Scan(ctx); err != nil {
			return err
		}
		for _, pm := range pms {
			backup.Projects = append(backup.Projects, projectModelToModel(pm))
		}

		var ems []AuditLogModel
		if err := tx.NewSelect().Model(&ems).Scan(ctx); err != nil {
			return err
		}
		for _, em := range ems {
			backup.AuditLogEntries = append(backup.AuditLogEntries, auditLogModelToModel(em))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return backup, nil
}

// ImportDataFromBackupBun restores the database from a backup with a full
// wipe-and-replace inside a single transaction.
func ImportDataFromBackupBun(bdb *bun.DB, backup *model.BackupData) error {
	ctx := context.Background()
	return WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		// Bun requires a WHERE clause on deletes; raw statements wipe the tables.
		if _, err := ExecRaw(ctx, tx, "DELETE FROM audit_log"); err != nil {
			return err
		}
		if _, err := ExecRaw(ctx, tx, "DELETE FROM projects"); err != nil {
			return err
		}

		for _, p := range backup.Projects {
			pm := ProjectModel{Key: p.Key, Name: p.Name, CreatedAt: p.CreatedAt}
			if _, err := tx.NewInsert().Model(&pm).Column("key", "name", "created_at").Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		for _, e := range backup.AuditLogEntries {
			em := AuditLogModel{Timestamp: e.Timestamp, Username: e.Username, Action: e.Action, Details: e.Details}
			if _, err := tx.NewInsert().Model(&em).Column("timestamp", "username", "action", "details").Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		return nil
	})
}

// IntegrateDataFromBackupBun restores data from a backup non-destructively,
// skipping projects whose key already exists.
func IntegrateDataFromBackupBun(bdb *bun.DB, backup *model.BackupData) error {
	ctx := context.Background()
	return WithTx(ctx, bdb, func(ctx context.Context, tx bun.Tx) error {
		for _, p := range backup.Projects {
			count, err := tx.NewSelect().Model((*ProjectModel)(nil)).Where("? = ?", bun.Ident("key"), p.Key).Count(ctx)
			if err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			pm := ProjectModel{Key: p.Key, Name: p.Name, CreatedAt: p.CreatedAt}
			if _, err := tx.NewInsert().Model(&pm).Column("key", "name", "created_at").Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		return nil
	})
}
