package records_test

import (
	"testing"
	"time"

	"rollcall/internal/records"
)

func TestParseAge(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want *float64
	}{
		{"integer", "30", ptr(30.0)},
		{"fractional", "30.5", ptr(30.5)},
		{"padded", "  42 ", ptr(42.0)},
		{"empty", "", nil},
		{"text", "thirty", nil},
		{"mixed", "30 years", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := records.ParseAge(tc.raw)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("ParseAge(%q) = %v, want %v", tc.raw, got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Fatalf("ParseAge(%q) = %v, want %v", tc.raw, *got, *tc.want)
			}
		})
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", "2024-03-01T10:30:00Z", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"dashed datetime", "2024-03-01 10:30:00", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"dashed date", "2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"slashed forms export", "3/1/2024 10:30:00", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"slashed date", "3/1/2024", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := records.ParseTimestamp(tc.raw)
			if got == nil {
				t.Fatalf("ParseTimestamp(%q) returned nil", tc.raw)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseTimestamp(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseTimestampFailuresAreNil(t *testing.T) {
	for _, raw := range []string{"", "not a date", "2024-13-45", "soon"} {
		if got := records.ParseTimestamp(raw); got != nil {
			t.Fatalf("ParseTimestamp(%q) = %v, want nil", raw, got)
		}
	}
}

func TestNormalizeTrimsAndTypes(t *testing.T) {
	present := records.NewColumnSet(
		records.ColumnIdentity,
		records.ColumnContact,
		records.ColumnLocation,
		records.ColumnGender,
		records.ColumnAge,
		records.ColumnDisability,
		records.ColumnTimestamp,
	)
	rec := records.Normalize(3, map[records.Column]string{
		records.ColumnIdentity:   " 12345678 ",
		records.ColumnContact:    "0712 ",
		records.ColumnLocation:   " Nairobi",
		records.ColumnGender:     "Female ",
		records.ColumnAge:        "27",
		records.ColumnDisability: " No ",
		records.ColumnTimestamp:  "2024-03-01",
	}, present)

	if rec.Row != 3 {
		t.Fatalf("Row = %d, want 3", rec.Row)
	}
	if rec.IdentityKey != "12345678" || rec.ContactKey != "0712" {
		t.Fatalf("keys not trimmed: %q %q", rec.IdentityKey, rec.ContactKey)
	}
	if rec.Location != "Nairobi" || rec.Gender != "Female" {
		t.Fatalf("unexpected location/gender: %q %q", rec.Location, rec.Gender)
	}
	if rec.AgeYears == nil || *rec.AgeYears != 27 {
		t.Fatalf("unexpected age: %v", rec.AgeYears)
	}
	if rec.Disability == nil || *rec.Disability != "No" {
		t.Fatalf("unexpected disability: %v", rec.Disability)
	}
	if rec.Timestamp == nil {
		t.Fatal("expected timestamp to parse")
	}
	if rec.AgeGroup != "" || rec.DisabilityStatus != "" {
		t.Fatal("derived fields must stay empty before enrichment")
	}
}

func TestNormalizeAbsentColumnsStayNil(t *testing.T) {
	present := records.NewColumnSet(records.ColumnIdentity, records.ColumnContact)
	rec := records.Normalize(0, map[records.Column]string{
		records.ColumnIdentity: "A",
		records.ColumnContact:  "1",
	}, present)

	if rec.AgeYears != nil || rec.Disability != nil || rec.Timestamp != nil {
		t.Fatalf("absent columns should produce nil fields: %+v", rec)
	}
}

func TestWithRowsCopies(t *testing.T) {
	ds := records.Dataset{
		Rows:    []records.Record{{Row: 0, IdentityKey: "A"}},
		Columns: records.NewColumnSet(records.ColumnIdentity),
	}
	rows := []records.Record{{Row: 1, IdentityKey: "B"}}
	derived := ds.WithRows(rows)
	rows[0].IdentityKey = "mutated"

	if derived.Rows[0].IdentityKey != "B" {
		t.Fatalf("WithRows must copy its input, got %q", derived.Rows[0].IdentityKey)
	}
	if !derived.Columns.Has(records.ColumnIdentity) {
		t.Fatal("WithRows should share the column set")
	}
}

func ptr(v float64) *float64 { return &v }
