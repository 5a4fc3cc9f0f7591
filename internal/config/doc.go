// Package config loads, normalizes, and validates Rollcall configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and centralizes every knob the CLI needs:
// data/export/log directories, the registration sheet source, column aliases
// for mapping sheet headers onto the logical schema, demographic thresholds,
// and logging options.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, trimmed alias lists, and clear validation errors.
package config
