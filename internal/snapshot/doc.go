// Package snapshot persists ingested registration datasets in SQLite so
// reports and exports can run against a stable copy of the data without
// re-fetching the source sheet.
//
// The Store manages database connections, schema initialization, and
// round-tripping datasets with row order preserved. Each Save records the
// source label, an ingest-run identifier, the ingestion time, and the column
// set observed in the input so later reads can reproduce the same
// missing-column behavior the pipeline saw at ingest time.
//
// The database is treated as a working cache rather than a long-term archive.
// Schema changes bump the version in schema.go; users clear the database to
// adopt the new schema.
package snapshot
