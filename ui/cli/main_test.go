// Copyright (c) 2026 Trackmaster Team
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

//nolint:errcheck
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/toeirei/trackmaster/client"
	"github.com/toeirei/trackmaster/internal/db"
	"github.com/toeirei/trackmaster/internal/i18n"
)

// setupTestDB initializes an in-memory SQLite database for isolated testing.
// It configures viper to use this database and ensures the i18n system is ready.
func setupTestDB(t *testing.T) {
	t.Helper()

	// Ensure tests are isolated from any previously loaded configuration.
	viper.Reset()
	// Keep generated config files out of the real user config dir.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Use a unique in-memory SQLite database per test to avoid file locks on
	// Windows while preserving isolation across tests.
	uniq := fmt.Sprintf("memdb_%d", time.Now().UnixNano())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uniq)

	viper.Set("database.type", "sqlite")
	viper.Set("database.dsn", dsn)
	viper.Set("language", "en")

	i18n.Init("en")
	if err := db.InitDB("sqlite", dsn); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	r, err := client.NewDBRegistry("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to initialize test registry: %v", err)
	}
	registry = r
	t.Cleanup(func() { registry = nil })
}

// executeCommand runs a cobra command with the given arguments and captures its output.
func executeCommand(t *testing.T, args ...string) string {
	t.Helper()

	// Redirect stdout and stderr to a buffer so we capture log output.
	oldOut := os.Stdout
	oldErr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w
	log.SetOutput(w)
	defer log.SetOutput(os.Stderr)
	defer func() {
		os.Stdout = oldOut
		os.Stderr = oldErr
	}()

	// Create a new root command for each test to ensure isolation
	root := NewRootCmd()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		t.Fatalf("command execution failed: %v", err)
	}

	w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read command output: %v", err)
	}

	return buf.String()
}

func TestProjectCreateAndListCmd(t *testing.T) {
	setupTestDB(t)

	output := executeCommand(t, "project", "create", "WEB", "Website Relaunch")
	if !strings.Contains(output, "Created project WEB") {
		t.Errorf("expected creation message, got:\n%s", output)
	}

	output = executeCommand(t, "project", "list")
	if !strings.Contains(output, "WEB") || !strings.Contains(output, "Website Relaunch") {
		t.Errorf("expected project in list output, got:\n%s", output)
	}
}

func TestProjectCreateDefaultsNameToKey(t *testing.T) {
	setupTestDB(t)

	executeCommand(t, "project", "create", "OPS")

	output := executeCommand(t, "project", "list")
	if !strings.Contains(output, "OPS") {
		t.Errorf("expected OPS in list output, got:\n%s", output)
	}
}

func TestProjectExistsCmd(t *testing.T) {
	setupTestDB(t)

	output := executeCommand(t, "project", "exists", "WEB")
	if !strings.Contains(output, "available") {
		t.Errorf("expected available message, got:\n%s", output)
	}

	executeCommand(t, "project", "create", "WEB")

	output = executeCommand(t, "project", "exists", "WEB")
	if !strings.Contains(output, "taken") {
		t.Errorf("expected taken message, got:\n%s", output)
	}
}

func TestProjectDeleteCmd(t *testing.T) {
	setupTestDB(t)

	executeCommand(t, "project", "create", "TMP")
	output := executeCommand(t, "project", "delete", "TMP")
	if !strings.Contains(output, "Deleted project TMP") {
		t.Errorf("expected deletion message, got:\n%s", output)
	}

	output = executeCommand(t, "project", "exists", "TMP")
	if !strings.Contains(output, "available") {
		t.Errorf("expected key to be available after delete, got:\n%s", output)
	}
}

func TestAuditCmdRecordsCreations(t *testing.T) {
	setupTestDB(t)

	executeCommand(t, "project", "create", "SEC", "Security")
	output := executeCommand(t, "audit")
	if !strings.Contains(output, "ADD_PROJECT") {
		t.Errorf("expected ADD_PROJECT in audit output, got:\n%s", output)
	}
}

func TestBackupAndRestoreCmd(t *testing.T) {
	setupTestDB(t)

	executeCommand(t, "project", "create", "ONE", "First")
	executeCommand(t, "project", "create", "TWO", "Second")

	backupFile := t.TempDir() + "/backup.json"
	output := executeCommand(t, "backup", backupFile)
	if !strings.Contains(output, "Backup written") {
		t.Errorf("expected backup message, got:\n%s", output)
	}

	executeCommand(t, "project", "delete", "ONE")

	output = executeCommand(t, "restore", backupFile+".zst")
	if !strings.Contains(output, "Restore complete") {
		t.Errorf("expected restore message, got:\n%s", output)
	}

	output = executeCommand(t, "project", "list")
	if !strings.Contains(output, "ONE") || !strings.Contains(output, "TWO") {
		t.Errorf("expected both projects after restore, got:\n%s", output)
	}
}

func TestVersionCmd(t *testing.T) {
	setupTestDB(t)

	output := executeCommand(t, "version")
	if !strings.Contains(output, "version:") {
		t.Errorf("expected version output, got:\n%s", output)
	}
}

func TestResolveBuildVersionFallsBackToCommit(t *testing.T) {
	oldVersion, oldCommit := version, gitCommit
	defer func() { version, gitCommit = oldVersion, oldCommit }()

	version = "dev"
	gitCommit = "abc1234"
	v, _, _ := resolveBuildVersion(nil)
	if v == "dev" {
		t.Errorf("expected version to fall back to commit, got %q", v)
	}
}
