package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestConfigLoadSave(t *testing.T) {
	// Create a temporary directory to act as the user's home directory
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// 1. Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and save
	cfg.AccentColor = "205"
	cfg.TermStart = "2025-08-11"
	cfg.TermWeeks = 16
	cfg.Timezone = "Asia/Manila"
	cfg.OutputDir = "exports"
	cfg.DefaultFormat = "ics"

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	configPath := filepath.Join(tempDir, ".rosterctl.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Load the saved file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".rosterctl.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestConfigSaveRejectsInvalid(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	bad := []*AppConfig{
		{TermStart: "11/08/2025"},
		{TermWeeks: -1},
		{Timezone: "Mars/Olympus_Mons"},
		{DefaultFormat: "pdf"},
	}
	for _, cfg := range bad {
		if err := Save(cfg); err == nil {
			t.Errorf("expected Save to reject %+v", cfg)
		}
	}

	if _, err := os.Stat(filepath.Join(tempDir, ".rosterctl.json")); !os.IsNotExist(err) {
		t.Errorf("expected no config file after rejected saves")
	}
}

func TestTermStartDate(t *testing.T) {
	cfg := &AppConfig{TermStart: "2025-08-11", Timezone: "UTC"}
	start, err := cfg.TermStartDate(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Format("2006-01-02") != "2025-08-11" {
		t.Errorf("expected 2025-08-11, got %s", start)
	}

	// Without a saved date, the Monday of the given week is used
	cfg = &AppConfig{Timezone: "UTC"}
	thursday := time.Date(2025, 8, 14, 15, 0, 0, 0, time.UTC)
	start, err = cfg.TermStartDate(thursday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Format("2006-01-02") != "2025-08-11" || start.Weekday() != time.Monday {
		t.Errorf("expected Monday 2025-08-11, got %s", start)
	}
}

func TestWeeksDefault(t *testing.T) {
	if got := (&AppConfig{}).Weeks(); got != DefaultWeeks {
		t.Errorf("expected default %d weeks, got %d", DefaultWeeks, got)
	}
	if got := (&AppConfig{TermWeeks: 12}).Weeks(); got != 12 {
		t.Errorf("expected 12 weeks, got %d", got)
	}
}
