package tx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/translations-manager/txsync/internal/runner"
)

// Defaults for the pull invocation.
const (
	DefaultTool = "tx"
	DefaultMode = "developer"
)

// ErrToolMissing is returned by Preflight when the client is not on the
// execution path.
var ErrToolMissing = errors.New("transifex client needs to be installed")

// InstallHelp is printed when the client is missing.
const InstallHelp = `
The Transifex client needs to be installed to use this script.
Instructions are here: http://docs.transifex.com/client/setup/

On Mac:

  sudo easy_install pip
  sudo pip install transifex-client
`

var versionPattern = regexp.MustCompile(`v?\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z.-]+)?`)

// Client invokes the translation tool through a Runner.
type Client struct {
	Tool   string
	Mode   string
	Runner runner.Runner
}

// New returns a Client, substituting defaults for empty tool and mode.
func New(tool, mode string, r runner.Runner) *Client {
	if tool == "" {
		tool = DefaultTool
	}
	if mode == "" {
		mode = DefaultMode
	}
	return &Client{Tool: tool, Mode: mode, Runner: r}
}

// Preflight resolves the tool on the execution path and returns its location.
func (c *Client) Preflight() (string, error) {
	path, err := c.Runner.LookPath(c.Tool)
	if err != nil {
		return "", fmt.Errorf("%w: looking up %q: %w", ErrToolMissing, c.Tool, err)
	}
	return path, nil
}

// PullArgs builds the arguments for a forced pull of the given languages.
func (c *Client) PullArgs(languages []string) []string {
	return []string{
		"pull",
		"--mode=" + c.Mode,
		"--language=" + strings.Join(languages, ","),
		"--force",
	}
}

// PullCommand returns the full pull invocation run from dir.
func (c *Client) PullCommand(dir string, languages []string) runner.Command {
	return runner.Command{Name: c.Tool, Args: c.PullArgs(languages), Dir: dir}
}

// Pull runs the pull invocation, streaming the tool's output to out, and
// returns the tool's exit status.
func (c *Client) Pull(ctx context.Context, dir string, languages []string, out io.Writer) (int, error) {
	code, err := c.Runner.Run(ctx, c.PullCommand(dir, languages), out)
	if err != nil {
		return code, fmt.Errorf("running %s pull: %w", c.Tool, err)
	}
	return code, nil
}

// Version runs `<tool> --version` and extracts the first version number from
// its output.
func (c *Client) Version(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	code, err := c.Runner.Run(ctx, runner.Command{Name: c.Tool, Args: []string{"--version"}}, &buf)
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", c.Tool, err)
	}
	if code != 0 {
		return "", fmt.Errorf("%s --version exited with code %d", c.Tool, code)
	}
	return ParseVersion(buf.String())
}

// ParseVersion extracts the first version number from tool output such as
// "TX Client, version=1.6.10, checksum=..." or "0.13.12".
func ParseVersion(output string) (string, error) {
	v := versionPattern.FindString(output)
	if v == "" {
		return "", fmt.Errorf("no version number in %q", strings.TrimSpace(output))
	}
	return strings.TrimPrefix(v, "v"), nil
}
