package pipeline

import (
	"time"

	"rollcall/internal/conflict"
	"rollcall/internal/dedupe"
	"rollcall/internal/enrich"
	"rollcall/internal/records"
	"rollcall/internal/report"
)

// Options select the snapshot subset a run operates on. From and To bound the
// record timestamp's calendar date inclusively; a nil bound is open. Location
// is an exact match after trimming and lowering; empty means all locations.
type Options struct {
	From     *time.Time
	To       *time.Time
	Location string

	// AgeBounds defaults to the standard youth band when zero.
	AgeBounds enrich.AgeBounds
}

// Outcome is the full result of one pipeline run. Everything in it is derived
// from the filtered snapshot; nothing holds references into the caller's
// input slice.
type Outcome struct {
	Filtered  records.Dataset
	Audit     conflict.Report
	Dedup     dedupe.Result
	Canonical []records.Record

	Summary              report.Summary
	CrossTabs            []report.CrossTab
	CrossTabsDisabled    []report.CrossTab
	ByLocation           []report.KeyCount
	ByLocationGender     []report.PairCount
	ByLocationAgeGroup   []report.PairCount
	ByLocationDisability []report.PairCount
}

// Run filters the snapshot, computes the audit report and the canonical set
// from that same filtered view, enriches the survivors, and aggregates.
func Run(ds records.Dataset, opts Options) Outcome {
	bounds := opts.AgeBounds
	if bounds == (enrich.AgeBounds{}) {
		bounds = enrich.DefaultAgeBounds()
	}

	filtered := filter(ds, opts)

	out := Outcome{
		Filtered: filtered,
		Audit:    conflict.Detect(filtered),
		Dedup:    dedupe.Deduplicate(filtered),
	}
	out.Canonical = enrich.Enrich(filtered.WithRows(out.Dedup.Kept), bounds)

	out.Summary = report.Summarize(out.Canonical)
	out.CrossTabs = report.CrossTabAgeGender(out.Canonical)
	out.CrossTabsDisabled = report.CrossTabAgeGenderDisabled(out.Canonical)
	out.ByLocation = report.CountByLocation(out.Canonical)
	out.ByLocationGender = report.CountByLocationGender(out.Canonical)
	out.ByLocationAgeGroup = report.CountByLocationAgeGroup(out.Canonical)
	out.ByLocationDisability = report.CountByLocationDisability(out.Canonical)
	return out
}

func filter(ds records.Dataset, opts Options) records.Dataset {
	location := report.NormalizeGroupKey(opts.Location)
	dateBound := opts.From != nil || opts.To != nil

	kept := make([]records.Record, 0, len(ds.Rows))
	for _, rec := range ds.Rows {
		if dateBound {
			// Records without a parseable timestamp drop out of any
			// date-bounded view.
			if rec.Timestamp == nil {
				continue
			}
			day := dateOnly(*rec.Timestamp)
			if opts.From != nil && day.Before(dateOnly(*opts.From)) {
				continue
			}
			if opts.To != nil && day.After(dateOnly(*opts.To)) {
				continue
			}
		}
		if location != "" && report.NormalizeGroupKey(rec.Location) != location {
			continue
		}
		kept = append(kept, rec)
	}
	return ds.WithRows(kept)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
