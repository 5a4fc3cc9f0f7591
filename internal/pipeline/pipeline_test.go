package pipeline_test

import (
	"reflect"
	"testing"
	"time"

	"rollcall/internal/pipeline"
	"rollcall/internal/records"
)

func fullColumns() records.ColumnSet {
	return records.NewColumnSet(
		records.ColumnIdentity,
		records.ColumnContact,
		records.ColumnLocation,
		records.ColumnGender,
		records.ColumnAge,
		records.ColumnDisability,
		records.ColumnTimestamp,
	)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func sampleDataset() records.Dataset {
	age := func(v float64) *float64 { return &v }
	resp := func(v string) *string { return &v }
	return records.Dataset{
		Columns: fullColumns(),
		Rows: []records.Record{
			{Row: 0, IdentityKey: "A", ContactKey: "1", Location: "Nairobi", Gender: "Female", AgeYears: age(25), Disability: resp("no"), Timestamp: datePtr(2024, 3, 1)},
			{Row: 1, IdentityKey: "A", ContactKey: "1", Location: "Nairobi", Gender: "Female", AgeYears: age(25), Disability: resp("no"), Timestamp: datePtr(2024, 3, 2)},
			{Row: 2, IdentityKey: "A", ContactKey: "2", Location: "Mombasa", Gender: "Male", AgeYears: age(40), Disability: resp("yes"), Timestamp: datePtr(2024, 3, 3)},
			{Row: 3, IdentityKey: "B", ContactKey: "1", Location: "Nairobi", Gender: "Female", AgeYears: age(17), Disability: resp(""), Timestamp: datePtr(2024, 3, 4)},
			{Row: 4, IdentityKey: "C", ContactKey: "3", Location: "Kisumu", Gender: "Male", AgeYears: nil, Disability: nil, Timestamp: nil},
		},
	}
}

func TestRunUnfiltered(t *testing.T) {
	// No filters: row 4 has no timestamp but stays because no range is set.
	out := pipeline.Run(sampleDataset(), pipeline.Options{})

	if out.Filtered.Len() != 5 {
		t.Fatalf("filtered = %d rows, want 5", out.Filtered.Len())
	}
	if out.Dedup.RawCount != 5 || out.Dedup.CleanedCount != 2 {
		t.Fatalf("dedup counts raw/cleaned = %d/%d, want 5/2", out.Dedup.RawCount, out.Dedup.CleanedCount)
	}
	// Survivors: row 0 (A,1) and row 4 (C,3); row 2 loses identity A, row 3
	// loses contact 1.
	if len(out.Canonical) != 2 || out.Canonical[0].Row != 0 || out.Canonical[1].Row != 4 {
		t.Fatalf("unexpected canonical rows: %+v", out.Canonical)
	}
	if out.Summary.Total != 2 || out.Summary.Youth != 1 || out.Summary.Female != 1 {
		t.Fatalf("unexpected summary: %+v", out.Summary)
	}
	if len(out.Audit.ExactDuplicates) != 2 {
		t.Fatalf("expected the (A,1) pair in exact duplicates, got %+v", out.Audit.ExactDuplicates)
	}
}

func TestRunDateFilterInclusiveBounds(t *testing.T) {
	out := pipeline.Run(sampleDataset(), pipeline.Options{
		From: datePtr(2024, 3, 2),
		To:   datePtr(2024, 3, 3),
	})

	var rowsSeen []int
	for _, rec := range out.Filtered.Rows {
		rowsSeen = append(rowsSeen, rec.Row)
	}
	if !reflect.DeepEqual(rowsSeen, []int{1, 2}) {
		t.Fatalf("filtered rows = %v, want [1 2]", rowsSeen)
	}
}

func TestRunDateFilterExcludesNilTimestamps(t *testing.T) {
	out := pipeline.Run(sampleDataset(), pipeline.Options{From: datePtr(2024, 1, 1)})

	for _, rec := range out.Filtered.Rows {
		if rec.Timestamp == nil {
			t.Fatal("nil-timestamp record survived a date-bounded filter")
		}
	}
}

func TestRunLocationFilterNormalizes(t *testing.T) {
	out := pipeline.Run(sampleDataset(), pipeline.Options{Location: "  nairobi "})

	if out.Filtered.Len() != 3 {
		t.Fatalf("filtered = %d rows, want 3", out.Filtered.Len())
	}
	for _, rec := range out.Filtered.Rows {
		if rec.Location != "Nairobi" {
			t.Fatalf("unexpected location %q", rec.Location)
		}
	}
}

func TestRunAuditScopedToLocationFilter(t *testing.T) {
	// With only Nairobi selected, the (A,2) Mombasa row is invisible, so
	// identity A no longer spans two contacts.
	out := pipeline.Run(sampleDataset(), pipeline.Options{Location: "Nairobi"})

	if len(out.Audit.SameIdentityDiffContact) != 0 {
		t.Fatalf("cross-location conflict should be hidden, got %+v", out.Audit.SameIdentityDiffContact)
	}
	if len(out.Audit.ExactDuplicates) != 2 {
		t.Fatalf("in-location exact duplicates should remain, got %+v", out.Audit.ExactDuplicates)
	}
}

func TestRunIdempotent(t *testing.T) {
	ds := sampleDataset()
	opts := pipeline.Options{From: datePtr(2024, 3, 1), To: datePtr(2024, 3, 4)}

	first := pipeline.Run(ds, opts)
	second := pipeline.Run(ds, opts)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different outcomes")
	}
}

func TestRunEmptyInput(t *testing.T) {
	out := pipeline.Run(records.Dataset{Columns: fullColumns()}, pipeline.Options{})

	if out.Summary.Total != 0 || out.Summary.YouthPct != 0 {
		t.Fatalf("empty input summary should be zero: %+v", out.Summary)
	}
	if len(out.Canonical) != 0 || out.Dedup.TotalRemoved() != 0 {
		t.Fatal("empty input should produce empty outputs")
	}
}

func TestRunDoesNotAliasInput(t *testing.T) {
	ds := sampleDataset()
	out := pipeline.Run(ds, pipeline.Options{})

	ds.Rows[0].IdentityKey = "mutated"
	if out.Filtered.Rows[0].IdentityKey != "A" {
		t.Fatal("outcome aliases the caller's input slice")
	}
}
