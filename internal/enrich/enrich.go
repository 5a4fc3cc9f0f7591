package enrich

import (
	"strings"

	"rollcall/internal/records"
)

// AgeBounds holds the inclusive youth age band. Ages above Max classify as
// Adult; nil or below-Min ages classify as Unknown.
type AgeBounds struct {
	Min float64
	Max float64
}

// DefaultAgeBounds matches the program definition of youth: 18 through 35.
func DefaultAgeBounds() AgeBounds {
	return AgeBounds{Min: 18, Max: 35}
}

// Enrich returns a copy of rows with AgeGroup and DisabilityStatus filled.
// When the disability column is absent from the source every row comes back
// Unspecified.
func Enrich(ds records.Dataset, bounds AgeBounds) []records.Record {
	hasDisability := ds.Columns.Has(records.ColumnDisability)

	out := make([]records.Record, len(ds.Rows))
	for i, rec := range ds.Rows {
		rec.AgeGroup = classifyAge(rec.AgeYears, bounds)
		if hasDisability {
			rec.DisabilityStatus = ClassifyDisability(rec.Disability)
		} else {
			rec.DisabilityStatus = records.DisabilityUnspecified
		}
		out[i] = rec
	}
	return out
}

func classifyAge(age *float64, bounds AgeBounds) records.AgeGroup {
	switch {
	case age == nil:
		return records.AgeGroupUnknown
	case *age >= bounds.Min && *age <= bounds.Max:
		return records.AgeGroupYouth
	case *age > bounds.Max:
		return records.AgeGroupAdult
	default:
		return records.AgeGroupUnknown
	}
}

// ClassifyDisability maps a free-text response onto Yes/No/Unspecified. The
// match is case-insensitive on the trimmed text and checks "yes" before
// "no", so "yes, partially" wins over its trailing "no"-free text and
// "no idea" still classifies as No (preserved upstream quirk).
func ClassifyDisability(response *string) records.DisabilityStatus {
	if response == nil {
		return records.DisabilityUnspecified
	}
	normalized := strings.ToLower(strings.TrimSpace(*response))
	switch {
	case strings.Contains(normalized, "yes"):
		return records.DisabilityYes
	case strings.Contains(normalized, "no"):
		return records.DisabilityNo
	default:
		return records.DisabilityUnspecified
	}
}
