package conflict_test

import (
	"testing"

	"rollcall/internal/conflict"
	"rollcall/internal/records"
)

func snapshot(pairs ...[2]string) records.Dataset {
	rows := make([]records.Record, len(pairs))
	for i, p := range pairs {
		rows[i] = records.Record{Row: i, IdentityKey: p[0], ContactKey: p[1]}
	}
	return records.Dataset{
		Rows:    rows,
		Columns: records.NewColumnSet(records.ColumnIdentity, records.ColumnContact),
	}
}

func rowNumbers(recs []records.Record) []int {
	out := make([]int, len(recs))
	for i, r := range recs {
		out[i] = r.Row
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDetectAllThreeSubsets(t *testing.T) {
	// (A,1) (A,1) (A,2) (B,1): one exact-duplicate pair plus cross-key
	// conflicts on both keys.
	ds := snapshot(
		[2]string{"A", "1"},
		[2]string{"A", "1"},
		[2]string{"A", "2"},
		[2]string{"B", "1"},
	)

	report := conflict.Detect(ds)

	if got := rowNumbers(report.SameIdentityDiffContact); !equalInts(got, []int{0, 1, 2}) {
		t.Fatalf("SameIdentityDiffContact rows = %v, want [0 1 2]", got)
	}
	if got := rowNumbers(report.SameContactDiffIdentity); !equalInts(got, []int{0, 1, 3}) {
		t.Fatalf("SameContactDiffIdentity rows = %v, want [0 1 3]", got)
	}
	if got := rowNumbers(report.ExactDuplicates); !equalInts(got, []int{0, 1}) {
		t.Fatalf("ExactDuplicates rows = %v, want [0 1]", got)
	}
}

func TestDetectGroupOfOneNeverQualifies(t *testing.T) {
	ds := snapshot(
		[2]string{"A", "1"},
		[2]string{"B", "2"},
		[2]string{"C", "3"},
	)

	report := conflict.Detect(ds)

	s1, s2, s3 := report.Counts()
	if s1 != 0 || s2 != 0 || s3 != 0 {
		t.Fatalf("unique rows should yield empty subsets, got %d/%d/%d", s1, s2, s3)
	}
}

func TestDetectRepeatedKeySameOtherValue(t *testing.T) {
	// Same identity twice but with the same contact: an exact duplicate,
	// not a cross-key conflict.
	ds := snapshot(
		[2]string{"A", "1"},
		[2]string{"A", "1"},
	)

	report := conflict.Detect(ds)

	if len(report.SameIdentityDiffContact) != 0 {
		t.Fatalf("expected no identity conflicts, got %v", rowNumbers(report.SameIdentityDiffContact))
	}
	if got := rowNumbers(report.ExactDuplicates); !equalInts(got, []int{0, 1}) {
		t.Fatalf("ExactDuplicates rows = %v, want [0 1]", got)
	}
}

func TestDetectSortsByGroupKey(t *testing.T) {
	ds := snapshot(
		[2]string{"Z", "5"},
		[2]string{"Z", "6"},
		[2]string{"A", "7"},
		[2]string{"A", "8"},
	)

	report := conflict.Detect(ds)

	// Group "A" sorts before group "Z"; input order holds inside groups.
	if got := rowNumbers(report.SameIdentityDiffContact); !equalInts(got, []int{2, 3, 0, 1}) {
		t.Fatalf("subset order = %v, want [2 3 0 1]", got)
	}
}

func TestDetectEmptyKeysFormGroups(t *testing.T) {
	ds := snapshot(
		[2]string{"", "1"},
		[2]string{"", "2"},
	)

	report := conflict.Detect(ds)

	if got := rowNumbers(report.SameIdentityDiffContact); !equalInts(got, []int{0, 1}) {
		t.Fatalf("blank identity keys should group, got %v", got)
	}
}

func TestDetectMissingKeyColumnYieldsEmptyReport(t *testing.T) {
	ds := records.Dataset{
		Rows: []records.Record{
			{Row: 0, IdentityKey: "A", ContactKey: "1"},
			{Row: 1, IdentityKey: "A", ContactKey: "2"},
		},
		Columns: records.NewColumnSet(records.ColumnIdentity),
	}

	report := conflict.Detect(ds)

	s1, s2, s3 := report.Counts()
	if s1 != 0 || s2 != 0 || s3 != 0 {
		t.Fatalf("missing contact column should empty the report, got %d/%d/%d", s1, s2, s3)
	}
}

func TestDetectDoesNotMutateInput(t *testing.T) {
	ds := snapshot(
		[2]string{"A", "1"},
		[2]string{"A", "2"},
	)
	before := make([]records.Record, len(ds.Rows))
	copy(before, ds.Rows)

	_ = conflict.Detect(ds)

	for i := range before {
		if ds.Rows[i] != before[i] {
			t.Fatalf("input row %d mutated", i)
		}
	}
}

func TestDetectConsistentWithDedupStageOne(t *testing.T) {
	// Every exact-duplicate group of size n contributes n-1 stage-1
	// removals, so subset size minus distinct pairs equals the removals.
	ds := snapshot(
		[2]string{"A", "1"},
		[2]string{"A", "1"},
		[2]string{"A", "1"},
		[2]string{"B", "2"},
		[2]string{"B", "2"},
		[2]string{"C", "3"},
	)

	report := conflict.Detect(ds)

	distinct := map[[2]string]struct{}{}
	for _, rec := range report.ExactDuplicates {
		distinct[[2]string{rec.IdentityKey, rec.ContactKey}] = struct{}{}
	}
	expectedRemovals := len(report.ExactDuplicates) - len(distinct)
	if expectedRemovals != 3 {
		t.Fatalf("expected 3 implied stage-1 removals, got %d", expectedRemovals)
	}
}
