package testsupport

import (
	"rollcall/internal/records"
)

// Dataset builds a dataset from raw cell values, normalizing each row the way
// ingestion does. Columns absent from the slice stay absent from the result.
func Dataset(cols []records.Column, rows []map[records.Column]string) records.Dataset {
	present := records.NewColumnSet(cols...)
	out := make([]records.Record, 0, len(rows))
	for i, cells := range rows {
		out = append(out, records.Normalize(i, cells, present))
	}
	return records.Dataset{Rows: out, Columns: present}
}
