package export

import (
	"rollcall/internal/pipeline"
	"rollcall/internal/records"
	"rollcall/internal/report"
)

var recordHeader = []string{
	"Row", "National ID", "Phone", "Location", "Gender",
	"Age", "Age Group", "Disability", "PWD Status", "Timestamp",
}

// Tables converts a pipeline outcome into the workbook layout: cleaned data
// first, then summary sheets, then the audit sheets.
func Tables(out pipeline.Outcome) []Table {
	return []Table{
		recordTable("Cleaned_Data", out.Canonical),
		summaryTable(out.Summary),
		keyCountTable("County_Summary", "County", out.ByLocation),
		pairCountTable("Gender_Summary", "Gender", out.ByLocationGender),
		pairCountTable("Age_Group_Summary", "Age Group", out.ByLocationAgeGroup),
		pairCountTable("PWD_Summary", "Disability", out.ByLocationDisability),
		dedupTable(out),
		recordTable("ID_Conflicts", out.Audit.SameIdentityDiffContact),
		recordTable("Phone_Conflicts", out.Audit.SameContactDiffIdentity),
		recordTable("Exact_Duplicates", out.Audit.ExactDuplicates),
	}
}

func recordTable(name string, rows []records.Record) Table {
	table := Table{Name: name, Header: recordHeader, Rows: make([][]any, 0, len(rows))}
	for _, rec := range rows {
		table.Rows = append(table.Rows, recordRow(rec))
	}
	return table
}

func recordRow(rec records.Record) []any {
	var age any
	if rec.AgeYears != nil {
		age = *rec.AgeYears
	}
	var disability any
	if rec.Disability != nil {
		disability = *rec.Disability
	}
	var timestamp any
	if rec.Timestamp != nil {
		timestamp = rec.Timestamp.Format("2006-01-02 15:04:05")
	}
	return []any{
		rec.Row,
		rec.IdentityKey,
		rec.ContactKey,
		rec.Location,
		rec.Gender,
		age,
		string(rec.AgeGroup),
		disability,
		string(rec.DisabilityStatus),
		timestamp,
	}
}

func summaryTable(s report.Summary) Table {
	return Table{
		Name:   "Summary",
		Header: []string{"Metric", "Value"},
		Rows: [][]any{
			{"Total Participants", s.Total},
			{"Youth", s.Youth},
			{"Adult", s.Adult},
			{"Female", s.Female},
			{"PWD (Yes)", s.DisabilityYes},
			{"Youth %", s.YouthPct},
			{"Female %", s.FemalePct},
			{"PWD %", s.DisabilityPct},
		},
	}
}

func keyCountTable(name, keyLabel string, counts []report.KeyCount) Table {
	table := Table{Name: name, Header: []string{keyLabel, "Count"}, Rows: make([][]any, 0, len(counts))}
	for _, kc := range counts {
		table.Rows = append(table.Rows, []any{report.Label(kc.Key), kc.Count})
	}
	return table
}

func pairCountTable(name, keyLabel string, counts []report.PairCount) Table {
	table := Table{Name: name, Header: []string{"County", keyLabel, "Count"}, Rows: make([][]any, 0, len(counts))}
	for _, pc := range counts {
		table.Rows = append(table.Rows, []any{report.Label(pc.Location), report.Label(pc.Key), pc.Count})
	}
	return table
}

func dedupTable(out pipeline.Outcome) Table {
	return Table{
		Name:   "Dedup_Metrics",
		Header: []string{"Metric", "Value"},
		Rows: [][]any{
			{"Raw Records", out.Dedup.RawCount},
			{"Removed (ID + Phone)", out.Dedup.PairRemoved},
			{"Removed (ID)", out.Dedup.IdentityRemoved},
			{"Removed (Phone)", out.Dedup.ContactRemoved},
			{"Removed Total", out.Dedup.TotalRemoved()},
			{"Cleaned Records", out.Dedup.CleanedCount},
		},
	}
}
