package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSource()
	c.normalizeColumns()
	c.normalizeDemographics()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		c.Paths.ExportDir = defaultExportDir
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSource() {
	c.Source.SheetURL = strings.TrimSpace(c.Source.SheetURL)
	if c.Source.SheetURL == "" {
		if value, ok := os.LookupEnv("ROLLCALL_SHEET_URL"); ok {
			c.Source.SheetURL = strings.TrimSpace(value)
		}
	}
	if c.Source.RequestTimeout <= 0 {
		c.Source.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeColumns() {
	defaults := Default().Columns
	c.Columns.Identity = normalizeAliases(c.Columns.Identity, defaults.Identity)
	c.Columns.Contact = normalizeAliases(c.Columns.Contact, defaults.Contact)
	c.Columns.Location = normalizeAliases(c.Columns.Location, defaults.Location)
	c.Columns.Gender = normalizeAliases(c.Columns.Gender, defaults.Gender)
	c.Columns.Age = normalizeAliases(c.Columns.Age, defaults.Age)
	c.Columns.Disability = normalizeAliases(c.Columns.Disability, defaults.Disability)
	c.Columns.Timestamp = normalizeAliases(c.Columns.Timestamp, defaults.Timestamp)
}

// normalizeAliases trims entries, drops blanks and duplicates, and falls back
// to the defaults when nothing usable remains.
func normalizeAliases(aliases, fallback []string) []string {
	out := make([]string, 0, len(aliases))
	seen := make(map[string]struct{}, len(aliases))
	for _, alias := range aliases {
		trimmed := strings.TrimSpace(alias)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		cp := make([]string, len(fallback))
		copy(cp, fallback)
		return cp
	}
	return out
}

func (c *Config) normalizeDemographics() {
	if c.Demographics.YouthMinAge <= 0 {
		c.Demographics.YouthMinAge = defaultYouthMinAge
	}
	if c.Demographics.YouthMaxAge <= 0 {
		c.Demographics.YouthMaxAge = defaultYouthMaxAge
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
