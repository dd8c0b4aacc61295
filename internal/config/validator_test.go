package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_YAML(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		valid     bool
		wantPaths []string
	}{
		{
			name:  "minimal",
			data:  "dirs: [config/locales]\nprefixes: [client, server]\n",
			valid: true,
		},
		{
			name: "full",
			data: `tool: tx
mode: developer
source_language: en
dirs:
  - config/locales
  - plugins/poll/config/locales
prefixes: [client, server]
languages: [de, fr, pt_BR, zh_TW]
min_tool_version: "1.6.0"
banner: |
  # Managed by txsync
`,
			valid: true,
		},
		{
			name:      "missing dirs",
			data:      "prefixes: [client]\n",
			valid:     false,
			wantPaths: []string{""},
		},
		{
			name:      "unknown key",
			data:      "dirs: [a]\nprefixes: [client]\nlanguage: fr\n",
			valid:     false,
			wantPaths: []string{""},
		},
		{
			name:      "bad language code",
			data:      "dirs: [a]\nprefixes: [client]\nlanguages: [fr, \"../x\"]\n",
			valid:     false,
			wantPaths: []string{"/languages/1"},
		},
		{
			name:      "prefix with slash",
			data:      "dirs: [a]\nprefixes: [\"js/client\"]\n",
			valid:     false,
			wantPaths: []string{"/prefixes/0"},
		},
		{
			name:      "banner without comment marker",
			data:      "dirs: [a]\nprefixes: [client]\nbanner: \"Do not edit: pulled from Transifex\\n\"\n",
			valid:     false,
			wantPaths: []string{"/banner"},
		},
		{
			name:      "banner with a plain line",
			data:      "dirs: [a]\nprefixes: [client]\nbanner: |\n  # header\n  not a comment\n",
			valid:     false,
			wantPaths: []string{"/banner"},
		},
		{
			name:      "bad version",
			data:      "dirs: [a]\nprefixes: [client]\nmin_tool_version: latest\n",
			valid:     false,
			wantPaths: []string{"/min_tool_version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data), "yaml")
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if result.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (issues: %v)", result.Valid, tt.valid, result.Issues)
			}
			for _, want := range tt.wantPaths {
				found := false
				for _, issue := range result.Issues {
					if issue.Path == want {
						found = true
					}
				}
				if !found {
					t.Errorf("expected an issue at %q, got %v", want, result.Issues)
				}
			}
		})
	}
}

func TestValidate_TOML(t *testing.T) {
	data := `dirs = ["config/locales"]
prefixes = ["client"]
languages = ["fr", "de"]
`
	result, err := Validate([]byte(data), "toml")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues %v", result.Issues)
	}

	result, err = Validate([]byte("dirs = \"config/locales\"\nprefixes = [\"client\"]\n"), "toml")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Error("expected dirs as a string to be invalid")
	}
}

func TestValidate_DecodeErrors(t *testing.T) {
	if _, err := Validate([]byte("dirs: [a\n"), "yaml"); err == nil {
		t.Error("expected YAML parse error")
	}
	if _, err := Validate([]byte("dirs = [\n"), "toml"); err == nil {
		t.Error("expected TOML parse error")
	}
	if _, err := Validate([]byte("{}"), "json5"); err == nil {
		t.Error("expected unsupported format error")
	}
}

func TestValidateFile_FormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "txsync.toml")
	if err := os.WriteFile(path, []byte("dirs = [\"a\"]\nprefixes = [\"client\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %v", result.Issues)
	}
}

func TestInvalidProjectError(t *testing.T) {
	err := &InvalidProjectError{
		Path: "txsync.yaml",
		Issues: []ValidationIssue{
			{Path: "/languages/1", Message: "does not match pattern"},
			{Message: "missing property 'dirs'"},
		},
	}
	got := err.Error()
	if !strings.Contains(got, "txsync.yaml") || !strings.Contains(got, "/languages/1: does not match pattern") {
		t.Errorf("unexpected message %q", got)
	}
}
