package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"

	"rollcall/internal/records"
)

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
)

// colorizeOutput reports whether the writer is an interactive terminal.
func colorizeOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func sectionHeader(title string, colorize bool) string {
	line := fmt.Sprintf("== %s ==", title)
	if colorize {
		return ansiCyan + line + ansiReset
	}
	return line
}

func okLine(message string, colorize bool) string {
	if colorize {
		return ansiGreen + message + ansiReset
	}
	return message
}

// parseDateFlag accepts a YYYY-MM-DD value; an empty value yields nil.
func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("parse --%s: expected YYYY-MM-DD, got %q", name, value)
	}
	return &ts, nil
}

func formatCount(n int) string {
	return strconv.Itoa(n)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func formatAge(age *float64) string {
	if age == nil {
		return ""
	}
	return strconv.FormatFloat(*age, 'f', -1, 64)
}

func formatTimestamp(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format("2006-01-02 15:04:05")
}

// missingColumns lists the logical columns the source sheet did not carry.
func missingColumns(ds records.Dataset) []records.Column {
	var missing []records.Column
	for _, col := range records.AllColumns() {
		if !ds.Columns.Has(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

var recordTableHeader = []string{"Row", "National ID", "Phone", "Location", "Gender", "Age", "Timestamp"}

func recordTableRows(rows []records.Record) [][]string {
	out := make([][]string, 0, len(rows))
	for _, rec := range rows {
		out = append(out, []string{
			strconv.Itoa(rec.Row),
			rec.IdentityKey,
			rec.ContactKey,
			rec.Location,
			rec.Gender,
			formatAge(rec.AgeYears),
			formatTimestamp(rec.Timestamp),
		})
	}
	return out
}
