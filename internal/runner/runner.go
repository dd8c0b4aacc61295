package runner

import (
	"context"
	"io"
	"strings"
)

// Runner locates and executes external tools.
type Runner interface {
	// LookPath resolves name against the execution path.
	LookPath(name string) (string, error)

	// Run executes c, forwarding its combined output to out line by line, and
	// blocks until the process exits. A non-zero exit is reported through the
	// exit code; err is reserved for failures to start or read from the process.
	Run(ctx context.Context, c Command, out io.Writer) (exitCode int, err error)
}

// Command describes one invocation of an external tool.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command the way an operator would type it.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}
