// Package pipeline chains the filter, detector, engine, enricher, and
// aggregator over one immutable snapshot.
//
// A run is a deterministic function of the snapshot and the filter options:
// no state survives between runs, so re-running with the same inputs yields
// the same Outcome. The audit report and the dedup engine both consume the
// filtered snapshot, which keeps their counts mutually consistent; note that
// this also means audit subsets are scoped to the active location filter, so
// cross-location conflicts only show in unfiltered runs.
package pipeline
