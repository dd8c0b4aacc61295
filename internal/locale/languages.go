package locale

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultSourceLanguage is the language translations are made from. Its
// files are maintained by hand and never pulled.
const DefaultSourceLanguage = "en"

// DiscoverLanguages lists the languages that already have a
// "<prefix>.<lang>.yml" file under base/dir.
func DiscoverLanguages(base, dir, prefix string) ([]string, error) {
	pattern := filepath.Join(base, dir, prefix+".*"+Ext)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}

	langs := make([]string, 0, len(matches))
	for _, m := range matches {
		if lang := languageFromFileName(filepath.Base(m)); lang != "" {
			langs = append(langs, lang)
		}
	}
	return langs, nil
}

// languageFromFileName returns the second-to-last dot-separated segment.
func languageFromFileName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-2]
}

// ResolveLanguages picks explicit when non-empty, otherwise discovered, then
// drops the source language and duplicates and sorts the result.
func ResolveLanguages(explicit, discovered []string, source string) []string {
	candidates := explicit
	if len(candidates) == 0 {
		candidates = discovered
	}
	if source == "" {
		source = DefaultSourceLanguage
	}

	seen := make(map[string]bool, len(candidates))
	result := make([]string, 0, len(candidates))
	for _, lang := range candidates {
		lang = strings.TrimSpace(lang)
		if lang == "" || lang == source || seen[lang] {
			continue
		}
		seen[lang] = true
		result = append(result, lang)
	}
	sort.Strings(result)
	return result
}

// ValidateCode reports whether code is a well-formed language tag. Both
// "pt-BR" and the file-name style "pt_BR" are accepted.
func ValidateCode(code string) error {
	if strings.ContainsAny(code, "./\\ ,") {
		return fmt.Errorf("invalid language code %q", code)
	}
	if _, err := language.Parse(strings.ReplaceAll(code, "_", "-")); err != nil {
		return fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return nil
}
