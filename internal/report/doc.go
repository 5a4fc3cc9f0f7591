// Package report computes summary metrics and grouped breakdowns over the
// enriched canonical set.
//
// Every function here is a pure derived view: counts, percentages, and
// group-bys over a slice of records, with deterministic ordering so the same
// canonical set always renders and exports identically. Percentages are
// defined as zero when the total is zero.
package report
