// Package conflict surfaces identity conflicts in a filtered snapshot before
// deduplication touches it.
//
// Three audit subsets come out of one pass: rows sharing an identity key
// across more than one contact key, rows sharing a contact key across more
// than one identity key, and rows whose full (identity, contact) pair
// repeats. The subsets are diagnostic only; the detector never mutates its
// input and the dedupe engine never consults these results.
package conflict
