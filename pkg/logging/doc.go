// Package logging provides structured logging setup shared across bbgrep
// components: JSON records to stderr via log/slog, module/version context
// on every record, level configuration from a flag or the LOG_LEVEL
// environment variable, and source locations at debug level.
package logging
