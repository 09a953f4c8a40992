// Package errors provides structured error types with classification codes
// for the stratus CLI and daemon.
//
// Every failure surfaced to a user carries an ErrorCode so callers can branch
// programmatically instead of string-matching messages. The codes also drive
// the process exit status: ErrCodePrerequisite maps to exit 2 (missing tool
// or credentials), any other error maps to exit 1.
//
// Usage:
//
//	if _, err := exec.LookPath("gcloud"); err != nil {
//	    return errors.Wrap(errors.ErrCodePrerequisite, "gcloud not found in PATH", err)
//	}
//
// Inspecting errors:
//
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // resource absent, safe to create
//	}
//
//	os.Exit(errors.ExitCode(err))
package errors
