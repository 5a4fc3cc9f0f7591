// Package records defines the registration record model shared by every
// pipeline stage.
//
// It owns the logical column vocabulary, the Dataset snapshot type, and the
// normalizer that coerces raw spreadsheet cells into typed values. Parsing is
// deliberately forgiving: unreadable ages and timestamps become nil rather
// than errors so a single bad cell never aborts a report.
//
// Datasets are treated as immutable snapshots. Stages that need to change
// rows copy them; nothing downstream writes back into a Dataset it was given.
package records
