// Package logging provides structured logging utilities for stratus components.
//
// # Overview
//
// This package wraps the standard library slog package with stratus-specific
// defaults and conventions for consistent logging across the CLI and the
// daemon. It supports environment-based log level configuration,
// module/version context injection, and automatic source location tracking
// for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("stratus", "v1.0.0")
//
//	    slog.Info("provisioning started", "project", projectID)
//	    slog.Debug("describe result", "resource", name)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("stratus", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug stratus lb setup --domain www.example.com
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "resource created",
//	    "module": "stratus",
//	    "version": "v1.0.0",
//	    "kind": "ssl-certificate"
//	}
package logging
