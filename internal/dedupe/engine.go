package dedupe

import "rollcall/internal/records"

// Result reports the canonical survivors and the bookkeeping for each
// reduction stage. RawCount - CleanedCount always equals the sum of the three
// removal counts.
type Result struct {
	Kept []records.Record

	RawCount        int
	PairRemoved     int
	IdentityRemoved int
	ContactRemoved  int
	CleanedCount    int
}

// TotalRemoved returns the number of rows dropped across all stages.
func (r Result) TotalRemoved() int {
	return r.PairRemoved + r.IdentityRemoved + r.ContactRemoved
}

// Deduplicate applies the three-stage keep-first reduction to the snapshot.
// Empty keys are matched literally: two rows with blank identity keys
// collide. A key column absent from the source turns its stage into a no-op,
// since every row is trivially unique with respect to a column that never
// existed.
func Deduplicate(ds records.Dataset) Result {
	hasIdentity := ds.Columns.Has(records.ColumnIdentity)
	hasContact := ds.Columns.Has(records.ColumnContact)

	result := Result{RawCount: ds.Len()}

	rows := ds.Rows
	if hasIdentity && hasContact {
		rows, result.PairRemoved = keepFirst(rows, func(r records.Record) pairKey {
			return pairKey{identity: r.IdentityKey, contact: r.ContactKey}
		})
	}
	if hasIdentity {
		rows, result.IdentityRemoved = keepFirst(rows, func(r records.Record) pairKey {
			return pairKey{identity: r.IdentityKey}
		})
	}
	if hasContact {
		rows, result.ContactRemoved = keepFirst(rows, func(r records.Record) pairKey {
			return pairKey{contact: r.ContactKey}
		})
	}

	result.Kept = rows
	result.CleanedCount = len(rows)
	return result
}

type pairKey struct {
	identity string
	contact  string
}

// keepFirst returns the rows whose key has not been seen before, preserving
// input order, plus the number of rows dropped. The input slice is never
// mutated.
func keepFirst(rows []records.Record, key func(records.Record) pairKey) ([]records.Record, int) {
	seen := make(map[pairKey]struct{}, len(rows))
	kept := make([]records.Record, 0, len(rows))
	for _, row := range rows {
		k := key(row)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, row)
	}
	return kept, len(rows) - len(kept)
}
