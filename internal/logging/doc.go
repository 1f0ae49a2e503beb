// Package logging assembles structured slog loggers and formatting helpers used
// across subtag.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so every line of a compile run
// carries the same run identifier. The package also provides a no-op logger
// for tests and library callers that do not want output.
package logging
