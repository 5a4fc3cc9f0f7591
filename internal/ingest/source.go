package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"rollcall/internal/config"
	"rollcall/internal/records"
)

// ResolveSheetURL rewrites a Google Sheets share link to its CSV export
// form. Other values pass through unchanged.
func ResolveSheetURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.Contains(trimmed, "docs.google.com/spreadsheets/") {
		return trimmed
	}
	if idx := strings.Index(trimmed, "/edit"); idx >= 0 {
		return trimmed[:idx] + "/export?format=csv"
	}
	return trimmed
}

// Load reads the source into a dataset. The source may be a local file path
// or an http(s) URL; when empty, the configured sheet URL is used. The
// returned label names what was actually read, for logs and snapshot rows.
func Load(ctx context.Context, cfg *config.Config, source string) (records.Dataset, string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		source = cfg.Source.SheetURL
	}
	if source == "" {
		return records.Dataset{}, "", errors.New("no source: pass a file or URL, or set source.sheet_url")
	}

	if isHTTP(source) {
		resolved := ResolveSheetURL(source)
		ds, err := fetch(ctx, resolved, time.Duration(cfg.Source.RequestTimeout)*time.Second, cfg.Columns)
		return ds, resolved, err
	}

	path, err := config.ExpandPath(source)
	if err != nil {
		return records.Dataset{}, "", err
	}
	file, err := os.Open(path)
	if err != nil {
		return records.Dataset{}, "", fmt.Errorf("open source: %w", err)
	}
	defer file.Close()

	ds, err := Read(file, cfg.Columns)
	if err != nil {
		return records.Dataset{}, "", fmt.Errorf("parse %s: %w", path, err)
	}
	return ds, path, nil
}

func isHTTP(source string) bool {
	parsed, err := url.Parse(source)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

func fetch(ctx context.Context, sheetURL string, timeout time.Duration, cols config.Columns) (records.Dataset, error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sheetURL, nil)
	if err != nil {
		return records.Dataset{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return records.Dataset{}, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return records.Dataset{}, fmt.Errorf("fetch sheet: unexpected status %s", resp.Status)
	}

	ds, err := Read(resp.Body, cols)
	if err != nil {
		return records.Dataset{}, fmt.Errorf("parse %s: %w", sheetURL, err)
	}
	return ds, nil
}
