package conflict

import (
	"sort"

	"rollcall/internal/records"
)

// Report holds the three audit subsets. Each subset is ordered by its group
// key ascending, with the original input order preserved inside a group. A
// row can appear in more than one subset.
type Report struct {
	// SameIdentityDiffContact holds every row whose identity key is shared
	// by rows carrying more than one distinct contact key.
	SameIdentityDiffContact []records.Record
	// SameContactDiffIdentity holds every row whose contact key is shared
	// by rows carrying more than one distinct identity key.
	SameContactDiffIdentity []records.Record
	// ExactDuplicates holds every occurrence of any (identity, contact)
	// pair that appears at least twice, first occurrences included.
	ExactDuplicates []records.Record
}

// Counts returns the subset sizes in declaration order.
func (r Report) Counts() (sameIdentity, sameContact, exact int) {
	return len(r.SameIdentityDiffContact), len(r.SameContactDiffIdentity), len(r.ExactDuplicates)
}

// Detect computes the audit subsets for the snapshot. It is pure: the same
// snapshot always yields the same report and the input rows are untouched.
// Subsets that need an absent key column come back empty.
func Detect(ds records.Dataset) Report {
	hasIdentity := ds.Columns.Has(records.ColumnIdentity)
	hasContact := ds.Columns.Has(records.ColumnContact)

	var report Report
	if hasIdentity && hasContact {
		report.SameIdentityDiffContact = crossKeyConflicts(ds.Rows,
			func(r records.Record) string { return r.IdentityKey },
			func(r records.Record) string { return r.ContactKey },
		)
		report.SameContactDiffIdentity = crossKeyConflicts(ds.Rows,
			func(r records.Record) string { return r.ContactKey },
			func(r records.Record) string { return r.IdentityKey },
		)
		report.ExactDuplicates = exactDuplicates(ds.Rows)
	}
	return report
}

// crossKeyConflicts collects rows grouped by groupKey where the group spans
// more than one distinct otherKey value. Groups of size 1 never qualify.
func crossKeyConflicts(rows []records.Record, groupKey, otherKey func(records.Record) string) []records.Record {
	members := make(map[string][]records.Record)
	distinct := make(map[string]map[string]struct{})
	for _, row := range rows {
		key := groupKey(row)
		members[key] = append(members[key], row)
		if distinct[key] == nil {
			distinct[key] = make(map[string]struct{})
		}
		distinct[key][otherKey(row)] = struct{}{}
	}

	keys := make([]string, 0, len(members))
	for key, group := range members {
		if len(group) >= 2 && len(distinct[key]) > 1 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var out []records.Record
	for _, key := range keys {
		out = append(out, members[key]...)
	}
	return out
}

// exactDuplicates collects every occurrence of a repeated (identity, contact)
// pair, ordered by pair ascending.
func exactDuplicates(rows []records.Record) []records.Record {
	type pair struct{ identity, contact string }
	groups := make(map[pair][]records.Record)
	for _, row := range rows {
		key := pair{row.IdentityKey, row.ContactKey}
		groups[key] = append(groups[key], row)
	}

	keys := make([]pair, 0, len(groups))
	for key, group := range groups {
		if len(group) >= 2 {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].identity != keys[j].identity {
			return keys[i].identity < keys[j].identity
		}
		return keys[i].contact < keys[j].contact
	})

	var out []records.Record
	for _, key := range keys {
		out = append(out, groups[key]...)
	}
	return out
}
