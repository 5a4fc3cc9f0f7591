package records

import (
	"strconv"
	"strings"
	"time"
)

// timestampLayouts covers the formats the upstream sheets have produced so
// far: RFC3339 exports, Google-Forms style slashed dates, and plain dates.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// ParseAge coerces a free-text age cell into whole or fractional years.
// Unparsable input returns nil, never an error.
func ParseAge(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &value
}

// ParseTimestamp tries each known layout in order and returns nil when none
// match. Parsing failures map to nil so a malformed date drops the record out
// of date-filtered views instead of failing the run.
func ParseTimestamp(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return &parsed
		}
	}
	return nil
}

// Normalize builds a typed Record from raw cell values keyed by logical
// column. The present set controls nullability: a disability cell from an
// absent column stays nil so the enricher can distinguish "column missing"
// from "blank answer".
func Normalize(row int, cells map[Column]string, present ColumnSet) Record {
	rec := Record{
		Row:         row,
		IdentityKey: strings.TrimSpace(cells[ColumnIdentity]),
		ContactKey:  strings.TrimSpace(cells[ColumnContact]),
		Location:    strings.TrimSpace(cells[ColumnLocation]),
		Gender:      strings.TrimSpace(cells[ColumnGender]),
	}
	if present.Has(ColumnAge) {
		rec.AgeYears = ParseAge(cells[ColumnAge])
	}
	if present.Has(ColumnDisability) {
		value := strings.TrimSpace(cells[ColumnDisability])
		rec.Disability = &value
	}
	if present.Has(ColumnTimestamp) {
		rec.Timestamp = ParseTimestamp(cells[ColumnTimestamp])
	}
	return rec
}
