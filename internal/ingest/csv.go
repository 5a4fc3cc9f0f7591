package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"rollcall/internal/config"
	"rollcall/internal/records"
)

// ErrNoHeader indicates the source had no header row to map columns from.
var ErrNoHeader = errors.New("sheet has no header row")

// Read parses CSV data into a normalized dataset using the configured column
// aliases. Rows shorter than the header are padded with empty cells and rows
// whose every cell is blank are skipped. Row numbers count kept data rows in
// input order.
func Read(r io.Reader, cols config.Columns) (records.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return records.Dataset{}, ErrNoHeader
	}
	if err != nil {
		return records.Dataset{}, fmt.Errorf("read header: %w", err)
	}

	indexes, present := mapHeader(header, cols)

	ds := records.Dataset{Columns: present}
	row := 0
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return records.Dataset{}, fmt.Errorf("read row %d: %w", row+1, err)
		}
		if blankRow(cells) {
			continue
		}
		values := make(map[records.Column]string, len(indexes))
		for col, idx := range indexes {
			if idx < len(cells) {
				values[col] = cells[idx]
			}
		}
		ds.Rows = append(ds.Rows, records.Normalize(row, values, present))
		row++
	}
	return ds, nil
}

// mapHeader resolves each logical column to a header index. Aliases are
// checked in configured order against trimmed, case-folded headers, so a
// sheet carrying both "Timestamp" and "Training date" binds the former.
func mapHeader(header []string, cols config.Columns) (map[records.Column]int, records.ColumnSet) {
	byName := make(map[string]int, len(header))
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name == "" {
			continue
		}
		if _, taken := byName[name]; !taken {
			byName[name] = i
		}
	}

	aliasesFor := map[records.Column][]string{
		records.ColumnIdentity:   cols.Identity,
		records.ColumnContact:    cols.Contact,
		records.ColumnLocation:   cols.Location,
		records.ColumnGender:     cols.Gender,
		records.ColumnAge:        cols.Age,
		records.ColumnDisability: cols.Disability,
		records.ColumnTimestamp:  cols.Timestamp,
	}

	indexes := make(map[records.Column]int)
	present := records.NewColumnSet()
	for col, aliases := range aliasesFor {
		for _, alias := range aliases {
			if idx, ok := byName[strings.ToLower(strings.TrimSpace(alias))]; ok {
				indexes[col] = idx
				present[col] = struct{}{}
				break
			}
		}
	}
	return indexes, present
}

func blankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
