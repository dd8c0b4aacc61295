package locale

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultBanner is prepended to files that do not already start with a comment.
const DefaultBanner = `# encoding: utf-8
#
# Never edit this file. It will be overwritten when translations are pulled from Transifex.
#
# To work with us on translations, join this project:
# https://www.transifex.com/projects/p/discourse-org/
`

// topLevelKey matches a whole line holding a bare top-level key such as
// "fr:" or "pt_BR: {}".
var topLevelKey = regexp.MustCompile(`(?i)^[a-z_]+:( \{\})?$`)

// NormalizeHeader rewrites the first top-level key line to language, keeping
// a trailing " {}", and prepends banner plus a blank line unless the content
// already opens with a comment. Every line of the result ends in a newline.
func NormalizeHeader(content, language, banner string) string {
	lines := splitLines(content)

	for i, line := range lines {
		body, eol := trimEOL(line)
		if m := topLevelKey.FindStringSubmatch(body); m != nil {
			lines[i] = language + ":" + m[1] + eol
			break
		}
	}

	var b strings.Builder
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "#") {
		b.WriteString(ensureNewline(banner))
		b.WriteString("\n")
	}
	for _, line := range lines {
		b.WriteString(ensureNewline(line))
	}
	return b.String()
}

// ErrInvalidBanner is returned by CheckBanner for a banner that is not made
// of comment lines.
var ErrInvalidBanner = errors.New("banner lines must start with #")

// CheckBanner rejects a banner with any line that is not a YAML comment.
// Such a banner would leave the file invalid, and since the file would still
// not open with "#", every later rewrite would prepend it again.
func CheckBanner(banner string) error {
	if banner == "" {
		return fmt.Errorf("%w: banner is empty", ErrInvalidBanner)
	}
	for i, line := range splitLines(banner) {
		if body, _ := trimEOL(line); !strings.HasPrefix(body, "#") {
			return fmt.Errorf("%w: line %d is %q", ErrInvalidBanner, i+1, body)
		}
	}
	return nil
}

// RewriteFile applies NormalizeHeader to the file at path in place.
func RewriteFile(path, language, banner string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out := NormalizeHeader(string(data), language, banner)
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// splitLines splits s after each "\n", keeping the terminators.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func trimEOL(line string) (string, string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return strings.TrimSuffix(line, "\r\n"), "\r\n"
	case strings.HasSuffix(line, "\n"):
		return strings.TrimSuffix(line, "\n"), "\n"
	default:
		return line, ""
	}
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
