// Package enrich derives demographic classifications on the canonical set.
//
// Enrichment copies rows and fills AgeGroup and DisabilityStatus; the input
// slice is never written to. The disability rule is a substring match kept
// for compatibility with the upstream reports: any response containing "no"
// classifies as No, so "no idea" lands there too. Do not tighten the match
// without checking the downstream consumers first.
package enrich
