package locale

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Verify inspects a locale file after a pull and returns a description of
// each problem found. A nil slice means the file is well-formed: it opens
// with a comment, parses as YAML, and has language as its only top-level key.
// A file holding only the header is what a pull leaves for a language with
// no translations yet, and is well-formed too. The error return is for I/O
// failures.
func Verify(path, language string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return []string{"file is empty"}, nil
	}

	var problems []string
	if !strings.HasPrefix(string(data), "#") {
		problems = append(problems, "missing header comment")
	}

	if commentsOnly(string(data)) {
		return problems, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return append(problems, fmt.Sprintf("invalid YAML: %v", err)), nil
	}

	keys := topLevelKeys(&doc)
	switch {
	case len(keys) == 0:
		problems = append(problems, "no top-level key")
	case len(keys) > 1:
		problems = append(problems, fmt.Sprintf("expected a single top-level key, found %d (%s)", len(keys), strings.Join(keys, ", ")))
	case keys[0] != language:
		problems = append(problems, fmt.Sprintf("top-level key is %q, want %q", keys[0], language))
	}
	return problems, nil
}

func commentsOnly(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return false
		}
	}
	return true
}

func topLevelKeys(doc *yaml.Node) []string {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}
	return keys
}
