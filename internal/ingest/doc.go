// Package ingest reads registration sheets into normalized datasets.
//
// A source is a local CSV file or an http(s) URL; Google Sheets share links
// are rewritten to their CSV export form before fetching. Headers are matched
// case-insensitively against the configured aliases, so the same binary
// serves sheets with different labels. Missing columns are recorded in the
// dataset's column set rather than treated as errors; the only fatal inputs
// are unreadable sources and sheets without a header row.
package ingest
