// Package export writes pipeline results to multi-sheet Excel workbooks so
// program staff can review cleaned data and summaries in spreadsheet tools.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is one sheet of an export workbook.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

// sheetNameLimit is the Excel cap on sheet name length.
const sheetNameLimit = 31

// sanitizeSheetName strips characters Excel rejects in sheet names and
// truncates to the 31-character limit.
func sanitizeSheetName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		cleaned = "Sheet"
	}
	if len(cleaned) > sheetNameLimit {
		cleaned = cleaned[:sheetNameLimit]
	}
	return cleaned
}

// WriteWorkbook writes the tables to an xlsx file, one sheet per table in
// order. At least one table is required.
func WriteWorkbook(path string, tables []Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("write workbook: no tables to write")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, table := range tables {
		sheet := sanitizeSheetName(table.Name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("rename first sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %q: %w", sheet, err)
			}
		}

		header := make([]any, len(table.Header))
		for j, col := range table.Header {
			header[j] = col
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fmt.Errorf("write header for %q: %w", sheet, err)
		}

		for rowIdx, row := range table.Rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("cell name for %q row %d: %w", sheet, rowIdx, err)
			}
			values := append([]any(nil), row...)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return fmt.Errorf("write row %d for %q: %w", rowIdx, sheet, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
