// Package tx wraps the Transifex command-line client. It checks that the
// client is installed, builds the pull invocation, and reads the client's
// version for the minimum-version gate.
package tx
