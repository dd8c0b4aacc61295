package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// maxLineSize bounds a single line of tool output.
const maxLineSize = 1024 * 1024

// ExecRunner runs tools with os/exec.
type ExecRunner struct{}

// LookPath wraps exec.LookPath.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run starts c with stdout and stderr sharing one pipe and copies each line
// to out as soon as it is read. Output after a line longer than maxLineSize
// is copied through as it arrives.
func (ExecRunner) Run(ctx context.Context, c Command, out io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, fmt.Errorf("creating output pipe for %s: %w", c.Name, err)
	}
	// Both streams share the pipe's write end so lines interleave the way the
	// tool emitted them.
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("starting %s: %w", c.Name, err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		fmt.Fprintln(out, scanner.Text())
	}
	scanErr := scanner.Err()
	if scanErr != nil {
		// An oversized line stops the scanner. The rest is forwarded unsplit so
		// the tool never blocks writing to a full pipe.
		_, _ = io.Copy(out, stdout)
		_, _ = io.Copy(io.Discard, stdout)
		if errors.Is(scanErr, bufio.ErrTooLong) {
			scanErr = nil
		}
	}

	// Wait closes the pipe, so it must come after the read loop.
	err = cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("waiting for %s: %w", c.Name, err)
	}
	if scanErr != nil {
		return 0, fmt.Errorf("reading output of %s: %w", c.Name, scanErr)
	}
	return 0, nil
}
