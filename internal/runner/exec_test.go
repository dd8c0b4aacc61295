package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestExecRunner_StreamsCombinedOutput(t *testing.T) {
	requireShell(t)

	var out bytes.Buffer
	code, err := ExecRunner{}.Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo one; echo two >&2; echo three"},
	}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}

	got := out.String()
	for _, line := range []string{"one\n", "two\n", "three\n"} {
		if !strings.Contains(got, line) {
			t.Errorf("output %q missing line %q", got, line)
		}
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireShell(t)

	var out bytes.Buffer
	code, err := ExecRunner{}.Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo intentional failure >&2; exit 42"},
	}, &out)
	if err != nil {
		t.Fatalf("unexpected error (non-zero exit should not be an error): %v", err)
	}
	if code != 42 {
		t.Errorf("expected exit code 42, got %d", code)
	}
	if !strings.Contains(out.String(), "intentional failure") {
		t.Errorf("expected stderr to be forwarded, got %q", out.String())
	}
}

func TestExecRunner_WorkingDir(t *testing.T) {
	requireShell(t)

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if _, err := (ExecRunner{}).Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "pwd -P"},
		Dir:  dir,
	}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), dir) {
		t.Errorf("expected pwd output to contain %s, got %q", dir, out.String())
	}
}

func TestExecRunner_OversizedLine(t *testing.T) {
	requireShell(t)
	for _, tool := range []string{"head", "tr"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not available, skipping", tool)
		}
	}

	// Kills the child if Run stops reading the pipe.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	script := fmt.Sprintf("head -c %d /dev/zero | tr '\\0' x; head -c 200000 /dev/zero | tr '\\0' '\\n'; echo done; exit 3", 2*maxLineSize)
	var out bytes.Buffer
	code, err := ExecRunner{}.Run(ctx, Command{Name: "sh", Args: []string{"-c", script}}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run stopped reading output before the tool exited")
	}
	if code != 3 {
		t.Errorf("expected exit code 3, got %d", code)
	}
	if !strings.HasSuffix(out.String(), "done\n") {
		t.Errorf("output after the long line was not forwarded, tail %q", tail(out.String(), 20))
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func TestExecRunner_StartFailure(t *testing.T) {
	var out bytes.Buffer
	_, err := ExecRunner{}.Run(context.Background(), Command{
		Name: "txsync-no-such-binary-for-tests",
	}, &out)
	if err == nil {
		t.Fatal("expected error for missing binary, got nil")
	}
}

func TestCommandString(t *testing.T) {
	c := Command{Name: "tx", Args: []string{"pull", "--force"}}
	if got := c.String(); got != "tx pull --force" {
		t.Errorf("String() = %q, want %q", got, "tx pull --force")
	}
}
