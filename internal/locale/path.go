package locale

import (
	"fmt"
	"path/filepath"
)

// Ext is the extension of every locale file.
const Ext = ".yml"

// Target is one (directory, prefix, language) combination and the file it
// maps to.
type Target struct {
	Dir      string
	Prefix   string
	Language string
	Path     string
}

// FileName returns "<prefix>.<language>.yml".
func FileName(prefix, language string) string {
	return fmt.Sprintf("%s.%s%s", prefix, language, Ext)
}

// Path returns the locale file for language under base/dir.
func Path(base, dir, prefix, language string) string {
	return filepath.Join(base, dir, FileName(prefix, language))
}

// Targets expands every directory, prefix and language into a Target, in
// directory-major order.
func Targets(base string, dirs, prefixes, languages []string) []Target {
	targets := make([]Target, 0, len(dirs)*len(prefixes)*len(languages))
	for _, dir := range dirs {
		for _, prefix := range prefixes {
			for _, lang := range languages {
				targets = append(targets, Target{
					Dir:      dir,
					Prefix:   prefix,
					Language: lang,
					Path:     Path(base, dir, prefix, lang),
				})
			}
		}
	}
	return targets
}
