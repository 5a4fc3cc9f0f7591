package records

import "time"

// Column identifies one logical input column. Sheets label these columns
// freely; ingest maps the labels onto this vocabulary via config aliases.
type Column string

const (
	ColumnIdentity   Column = "identity"
	ColumnContact    Column = "contact"
	ColumnLocation   Column = "location"
	ColumnGender     Column = "gender"
	ColumnAge        Column = "age"
	ColumnDisability Column = "disability"
	ColumnTimestamp  Column = "timestamp"
)

var allColumns = []Column{
	ColumnIdentity,
	ColumnContact,
	ColumnLocation,
	ColumnGender,
	ColumnAge,
	ColumnDisability,
	ColumnTimestamp,
}

// AllColumns returns the logical column vocabulary in canonical order.
func AllColumns() []Column {
	cp := make([]Column, len(allColumns))
	copy(cp, allColumns)
	return cp
}

// ColumnSet records which logical columns the source sheet actually carried.
// Missing columns degrade the dependent feature instead of failing: a dedup
// stage keyed on an absent column is a no-op and classifications fall back to
// their unspecified values.
type ColumnSet map[Column]struct{}

// NewColumnSet builds a set from the provided columns.
func NewColumnSet(cols ...Column) ColumnSet {
	set := make(ColumnSet, len(cols))
	for _, col := range cols {
		set[col] = struct{}{}
	}
	return set
}

// Has reports whether the column was present in the source.
func (s ColumnSet) Has(col Column) bool {
	_, ok := s[col]
	return ok
}

// Columns returns the present columns in canonical order.
func (s ColumnSet) Columns() []Column {
	out := make([]Column, 0, len(s))
	for _, col := range allColumns {
		if s.Has(col) {
			out = append(out, col)
		}
	}
	return out
}

// AgeGroup classifies a participant by age.
type AgeGroup string

const (
	AgeGroupYouth   AgeGroup = "Youth"
	AgeGroupAdult   AgeGroup = "Adult"
	AgeGroupUnknown AgeGroup = "Unknown"
)

// DisabilityStatus classifies the free-text disability response.
type DisabilityStatus string

const (
	DisabilityYes         DisabilityStatus = "Yes"
	DisabilityNo          DisabilityStatus = "No"
	DisabilityUnspecified DisabilityStatus = "Unspecified"
)

// Record is one registration entry. String fields are trimmed but otherwise
// kept verbatim, including empty identity and contact keys: the dedup rules
// match empty keys literally. AgeGroup and DisabilityStatus stay zero-valued
// until the enricher fills them on a copy.
type Record struct {
	Row         int
	IdentityKey string
	ContactKey  string
	Location    string
	Gender      string
	AgeYears    *float64
	Disability  *string
	Timestamp   *time.Time

	AgeGroup         AgeGroup
	DisabilityStatus DisabilityStatus
}

// Dataset is one immutable snapshot of normalized records plus the column set
// the source provided.
type Dataset struct {
	Rows    []Record
	Columns ColumnSet
}

// Len returns the number of rows in the snapshot.
func (d Dataset) Len() int {
	return len(d.Rows)
}

// WithRows returns a dataset sharing this one's column set but holding the
// provided rows. The input slice is copied so callers cannot alias.
func (d Dataset) WithRows(rows []Record) Dataset {
	cp := make([]Record, len(rows))
	copy(cp, rows)
	return Dataset{Rows: cp, Columns: d.Columns}
}
