package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rollcall/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "rollcall", "data")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.ExportDir != filepath.Join(tempHome, "rollcall", "exports") {
		t.Fatalf("unexpected export dir: %q", cfg.Paths.ExportDir)
	}
	if cfg.Source.RequestTimeout != 30 {
		t.Fatalf("unexpected request timeout: %d", cfg.Source.RequestTimeout)
	}
	if cfg.Demographics.YouthMinAge != 18 || cfg.Demographics.YouthMaxAge != 35 {
		t.Fatalf("unexpected youth band: %+v", cfg.Demographics)
	}
	if len(cfg.Columns.Timestamp) != 2 || cfg.Columns.Timestamp[1] != "Training date" {
		t.Fatalf("expected timestamp fallback aliases, got %v", cfg.Columns.Timestamp)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.ExportDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "rollcall.toml")

	content := strings.Join([]string{
		"[source]",
		`sheet_url = "https://example.com/roster.csv"`,
		"request_timeout = 5",
		"",
		"[columns]",
		`identity = [" ID Number ", "ID Number", ""]`,
		"",
		"[logging]",
		`format = "JSON"`,
		`level = "DEBUG"`,
	}, "\n")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected the custom path to resolve, got %q exists=%v", resolved, exists)
	}
	if cfg.Source.SheetURL != "https://example.com/roster.csv" {
		t.Fatalf("unexpected sheet url: %q", cfg.Source.SheetURL)
	}
	if cfg.Source.RequestTimeout != 5 {
		t.Fatalf("unexpected timeout: %d", cfg.Source.RequestTimeout)
	}
	// Aliases are trimmed and deduplicated case-insensitively.
	if len(cfg.Columns.Identity) != 1 || cfg.Columns.Identity[0] != "ID Number" {
		t.Fatalf("unexpected identity aliases: %v", cfg.Columns.Identity)
	}
	// Unconfigured alias lists keep their defaults.
	if len(cfg.Columns.Contact) == 0 {
		t.Fatal("expected contact aliases to default")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging values lowered, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadDemographics(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "rollcall.toml")
	content := "[demographics]\nyouth_min_age = 40\nyouth_max_age = 20\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected validation error for inverted youth band")
	}
}

func TestLoadRejectsBadSheetScheme(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "rollcall.toml")
	content := "[source]\nsheet_url = \"ftp://example.com/data.csv\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected validation error for ftp scheme")
	}
}

func TestSheetURLFromEnv(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("ROLLCALL_SHEET_URL", " https://example.com/sheet.csv ")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source.SheetURL != "https://example.com/sheet.csv" {
		t.Fatalf("expected env sheet url, got %q", cfg.Source.SheetURL)
	}
}

func TestCreateSample(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "nested", "config.toml")

	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[columns]") {
		t.Fatal("sample config missing [columns] section")
	}

	// The sample must itself parse and validate.
	if _, _, _, err := config.Load(target); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}
