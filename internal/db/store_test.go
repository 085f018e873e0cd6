// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"testing"

	"github.com/toeirei/trackmaster/internal/model"
)

func TestAddAndGetProject(t *testing.T) {
	WithTestStore(t, func(s Store) {
		id, err := s.AddProject("WEB", "Website Relaunch")
		if err != nil {
			t.Fatalf("AddProject failed: %v", err)
		}
		if id <= 0 {
			t.Fatalf("expected positive project id, got %d", id)
		}

		p, err := s.GetProjectByKey("WEB")
		if err != nil {
			t.Fatalf("GetProjectByKey failed: %v", err)
		}
		if p == nil {
			t.Fatal("expected project, got nil")
		}
		if p.Key != "WEB" || p.Name != "Website Relaunch" {
			t.Errorf("unexpected project: %+v", p)
		}
		if p.CreatedAt == "" {
			t.Error("expected created_at to be set")
		}
	})
}

func TestGetProjectByKeyMissing(t *testing.T) {
	WithTestStore(t, func(s Store) {
		p, err := s.GetProjectByKey("NOPE")
		if err != nil {
			t.Fatalf("GetProjectByKey failed: %v", err)
		}
		if p != nil {
			t.Errorf("expected nil for missing key, got %+v", p)
		}
	})
}

func TestAddProjectDuplicateKey(t *testing.T) {
	WithTestStore(t, func(s Store) {
		if _, err := s.AddProject("API", "API Service"); err != nil {
			t.Fatalf("first AddProject failed: %v", err)
		}
		_, err := s.AddProject("API", "Another Name")
		if !errors.Is(err, ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})
}

func TestHasProject(t *testing.T) {
	WithTestStore(t, func(s Store) {
		ok, err := s.HasProject("OPS")
		if err != nil {
			t.Fatalf("HasProject failed: %v", err)
		}
		if ok {
			t.Error("expected HasProject to be false before insert")
		}

		if _, err := s.AddProject("OPS", "Operations"); err != nil {
			t.Fatalf("AddProject failed: %v", err)
		}

		ok, err = s.HasProject("OPS")
		if err != nil {
			t.Fatalf("HasProject failed: %v", err)
		}
		if !ok {
			t.Error("expected HasProject to be true after insert")
		}
	})
}

func TestGetAllProjectsOrderedByKey(t *testing.T) {
	WithTestStore(t, func(s Store) {
		for _, p := range []struct{ key, name string }{
			{"ZETA", "Last"},
			{"ALPHA", "First"},
			{"MID", "Middle"},
		} {
			if _, err := s.AddProject(p.key, p.name); err != nil {
				t.Fatalf("AddProject(%s) failed: %v", p.key, err)
			}
		}

		projects, err := s.GetAllProjects()
		if err != nil {
			t.Fatalf("GetAllProjects failed: %v", err)
		}
		if len(projects) != 3 {
			t.Fatalf("expected 3 projects, got %d", len(projects))
		}
		want := []string{"ALPHA", "MID", "ZETA"}
		for i, w := range want {
			if projects[i].Key != w {
				t.Errorf("position %d: expected key %s, got %s", i, w, projects[i].Key)
			}
		}
	})
}

func TestUpdateProjectName(t *testing.T) {
	WithTestStore(t, func(s Store) {
		if _, err := s.AddProject("DOCS", "Docs"); err != nil {
			t.Fatalf("AddProject failed: %v", err)
		}
		if err := s.UpdateProjectName("DOCS", "Documentation Portal"); err != nil {
			t.Fatalf("UpdateProjectName failed: %v", err)
		}
		p, err := s.GetProjectByKey("DOCS")
		if err != nil || p == nil {
			t.Fatalf("GetProjectByKey failed: %v", err)
		}
		if p.Name != "Documentation Portal" {
			t.Errorf("expected updated name, got %q", p.Name)
		}
	})
}

func TestDeleteProject(t *testing.T) {
	WithTestStore(t, func(s Store) {
		if _, err := s.AddProject("TMP", "Temporary"); err != nil {
			t.Fatalf("AddProject failed: %v", err)
		}
		if err := s.DeleteProject("TMP"); err != nil {
			t.Fatalf("DeleteProject failed: %v", err)
		}
		ok, err := s.HasProject("TMP")
		if err != nil {
			t.Fatalf("HasProject failed: %v", err)
		}
		if ok {
			t.Error("expected project to be gone after delete")
		}
	})
}

func TestAuditLogRecordsMutations(t *testing.T) {
	WithTestStore(t, func(s Store) {
		if _, err := s.AddProject("SEC", "Security"); err != nil {
			t.Fatalf("AddProject failed: %v", err)
		}
		if err := s.DeleteProject("SEC"); err != nil {
			t.Fatalf("DeleteProject failed: %v", err)
		}

		entries, err := s.GetAllAuditLogEntries()
		if err != nil {
			t.Fatalf("GetAllAuditLogEntries failed: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 audit entries, got %d", len(entries))
		}
		// Most recent first.
		if entries[0].Action != "DELETE_PROJECT" {
			t.Errorf("expected DELETE_PROJECT first, got %s", entries[0].Action)
		}
		if entries[1].Action != "ADD_PROJECT" {
			t.Errorf("expected ADD_PROJECT second, got %s", entries[1].Action)
		}
		if entries[0].Username == "" {
			t.Error("expected audit username to be set")
		}
	})
}

func TestBackupExportImportRoundtrip(t *testing.T) {
	WithTestStore(t, func(s Store) {
		if _, err := s.AddProject("ONE", "First Project"); err != nil {
			t.Fatalf("AddProject failed: %v", err)
		}
		if _, err := s.AddProject("TWO", "Second Project"); err != nil {
			t.Fatalf("AddProject failed: %v", err)
		}

		backup, err := s.ExportDataForBackup()
		if err != nil {
			t.Fatalf("ExportDataForBackup failed: %v", err)
		}
		if len(backup.Projects) != 2 {
			t.Fatalf("expected 2 projects in backup, got %d", len(backup.Projects))
		}

		// Wipe-and-replace into the same store.
		if err := s.DeleteProject("ONE"); err != nil {
			t.Fatalf("DeleteProject failed: %v", err)
		}
		if err := s.ImportDataFromBackup(backup); err != nil {
			t.Fatalf("ImportDataFromBackup failed: %v", err)
		}

		projects, err := s.GetAllProjects()
		if err != nil {
			t.Fatalf("GetAllProjects failed: %v", err)
		}
		if len(projects) != 2 {
			t.Fatalf("expected 2 projects after restore, got %d", len(projects))
		}
	})
}

func TestBackupIntegrateSkipsExisting(t *testing.T) {
	WithTestStore(t, func(s Store) {
		if _, err := s.AddProject("KEEP", "Original Name"); err != nil {
			t.Fatalf("AddProject failed: %v", err)
		}

		backup := &model.BackupData{
			SchemaVersion: 1,
			Projects: []model.Project{
				{Key: "KEEP", Name: "Imported Name", CreatedAt: "2026-01-01T00:00:00Z"},
				{Key: "NEW", Name: "Brand New", CreatedAt: "2026-01-01T00:00:00Z"},
			},
		}
		if err := s.IntegrateDataFromBackup(backup); err != nil {
			t.Fatalf("IntegrateDataFromBackup failed: %v", err)
		}

		p, err := s.GetProjectByKey("KEEP")
		if err != nil || p == nil {
			t.Fatalf("GetProjectByKey failed: %v", err)
		}
		if p.Name != "Original Name" {
			t.Errorf("existing project should not be overwritten, got %q", p.Name)
		}

		ok, err := s.HasProject("NEW")
		if err != nil {
			t.Fatalf("HasProject failed: %v", err)
		}
		if !ok {
			t.Error("expected NEW project to be integrated")
		}
	})
}

func TestMapDBError(t *testing.T) {
	if MapDBError(nil) != nil {
		t.Error("nil should map to nil")
	}
	if !errors.Is(MapDBError(errors.New("UNIQUE constraint failed: projects.key")), ErrDuplicate) {
		t.Error("sqlite unique violation should map to ErrDuplicate")
	}
	if !errors.Is(MapDBError(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)")), ErrDuplicate) {
		t.Error("postgres unique violation should map to ErrDuplicate")
	}
	other := errors.New("connection refused")
	if MapDBError(other) != other {
		t.Error("unrelated errors should pass through unchanged")
	}
}
