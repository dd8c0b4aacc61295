// Package runner defines the narrow interface txsync uses to locate and run
// external command-line tools, plus an os/exec implementation that streams
// the tool's combined stdout/stderr line by line. Callers substitute a fake
// Runner in tests.
package runner
