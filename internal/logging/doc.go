// Package logging assembles the structured slog loggers used across
// Rollcall commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and prunes aged log files. Prefer these constructors over
// hand-rolled slog setup so every command emits data with the same shape.
package logging
