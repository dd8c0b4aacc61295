package syncer

import (
	"fmt"

	"github.com/translations-manager/txsync/internal/tx"
)

// ErrToolMissing is returned by Perform when the translation client is not
// installed.
var ErrToolMissing = tx.ErrToolMissing

// PullError reports a pull that exited with a non-zero status. The process
// should exit with the same status.
type PullError struct {
	Tool     string
	ExitCode int
}

func (e *PullError) Error() string {
	return fmt.Sprintf("%s pull exited with code %d", e.Tool, e.ExitCode)
}
