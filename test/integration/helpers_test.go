//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeTx is a stand-in for the Transifex client. It appends its arguments to
// $FAKE_TX_LOG, writes pulled content into every file named in
// $FAKE_TX_WRITE, and exits with $FAKE_TX_EXIT when set.
const fakeTx = `#!/bin/sh
echo "$@" >> "$FAKE_TX_LOG"
if [ "$1" = "--version" ]; then
  echo "TX Client, version=1.6.10, checksum=0000"
  exit 0
fi
echo "Pulling translations for resource discourse.client"
echo "warning: 1 resource skipped" >&2
if [ -n "$FAKE_TX_EXIT" ]; then
  exit "$FAKE_TX_EXIT"
fi
for f in $FAKE_TX_WRITE; do
  printf 'en:\n  js:\n    hello: pulled\n' > "$f"
done
exit 0
`

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ProjectDir string // project root with config/locales
	BinDir     string // holds the fake tx, prepended to PATH
	LogFile    string // fake tx argument log
}

// setupTestEnv creates a sandboxed project and puts the fake client first on
// PATH. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake client is a shell script")
	}

	env := &testEnv{
		ProjectDir: t.TempDir(),
		BinDir:     t.TempDir(),
	}
	env.LogFile = filepath.Join(env.BinDir, "tx.log")

	writeFile(t, filepath.Join(env.BinDir, "tx"), fakeTx)
	if err := os.Chmod(filepath.Join(env.BinDir, "tx"), 0755); err != nil {
		t.Fatalf("chmod fake tx: %v", err)
	}

	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("FAKE_TX_LOG", env.LogFile)
	t.Setenv("FAKE_TX_WRITE", "")
	t.Setenv("FAKE_TX_EXIT", "")
	t.Setenv("TXSYNC_HOME", t.TempDir())

	if err := os.MkdirAll(env.localeDir(), 0755); err != nil {
		t.Fatalf("creating locale dir: %v", err)
	}
	return env
}

func (e *testEnv) localeDir() string {
	return filepath.Join(e.ProjectDir, "config", "locales")
}

func (e *testEnv) localeFile(name string) string {
	return filepath.Join(e.localeDir(), name)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the contents of path, failing the test if it is unreadable.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
