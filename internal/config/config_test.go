// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/trackmaster/internal/config"
)

func withTempUserConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	return tmp
}

func TestLoadConfigDefaults(t *testing.T) {
	withTempUserConfig(t)

	defaults := map[string]any{
		"database.type": "sqlite",
		"database.dsn":  "./trackmaster.db",
		"language":      "en",
	}
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, defaults, nil)
	// Without a config file on disk the not-found error is reported so
	// callers can write a default file; the parsed defaults are still valid.
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got.Database.Type != "sqlite" || got.Database.Dsn != "./trackmaster.db" {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if got.Language != "en" {
		t.Fatalf("expected default language en, got %q", got.Language)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tmp := withTempUserConfig(t)

	cfgDir := filepath.Join(tmp, "trackmaster")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "database:\n  type: postgres\n  dsn: postgresql://filedb\nlanguage: de\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "trackmaster.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	defaults := map[string]any{"database.type": "sqlite", "database.dsn": "./trackmaster.db", "language": "en"}
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, defaults, nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got.Database.Type != "postgres" {
		t.Fatalf("expected postgres from file, got %q", got.Database.Type)
	}
	if got.Database.Dsn != "postgresql://filedb" {
		t.Fatalf("expected file DSN, got %q", got.Database.Dsn)
	}
	if got.Language != "de" {
		t.Fatalf("expected de from file, got %q", got.Language)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	tmp := withTempUserConfig(t)

	cfgDir := filepath.Join(tmp, "trackmaster")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "language: de\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "trackmaster.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TRACKMASTER_LANGUAGE", "es")

	defaults := map[string]any{"language": "en"}
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, defaults, nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got.Language != "es" {
		t.Fatalf("expected es from env, got %q", got.Language)
	}
}

func TestWriteConfigFileCreatesFile(t *testing.T) {
	withTempUserConfig(t)

	c := cfg.Config{}
	c.Database.Type = "sqlite"
	c.Database.Dsn = "./trackmaster.db"
	c.Language = "en"

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
}
