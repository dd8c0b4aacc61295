package locale

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FilePerm is the mode for newly created locale files.
const FilePerm os.FileMode = 0644

// EnsureFile creates an empty file at path when nothing exists there yet.
// It reports whether a file was created. The parent directory must exist.
func EnsureFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, FilePerm)
	if err != nil {
		return false, fmt.Errorf("creating placeholder %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing placeholder %s: %w", path, err)
	}
	return true, nil
}

// Exists reports whether a regular file or symlink exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
