package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"rollcall/internal/config"
	"rollcall/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	base := testsupport.BaseDir(cfg)

	configPath := filepath.Join(base, "rollcall.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nexport_dir = %q\nlog_dir = %q\n\n[logging]\nformat = \"json\"\nlevel = \"info\"\n",
		cfg.Paths.DataDir,
		cfg.Paths.ExportDir,
		cfg.Paths.LogDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	full := args
	if configPath != "" {
		full = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(full)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSampleCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "registrations.csv")
	content := "" +
		"Timestamp,WHAT IS YOUR NATIONAL ID?,Business phone number,Business Location,Gender of owner,Age of owner (full years),PWD Status\n" +
		"2024-03-01 09:00:00,11111111,0700000001,Nairobi,Female,24,No\n" +
		"2024-03-01 09:05:00,11111111,0700000001,Nairobi,Female,24,No\n" +
		"2024-03-02 10:00:00,22222222,0700000002,Mombasa,Male,40,Yes\n" +
		"2024-03-03 11:00:00,33333333,0700000003,Kisumu,Female,30,\n"
	testsupport.WriteCSV(t, path, content)
	return path
}
