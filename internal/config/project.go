package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/translations-manager/txsync/internal/branding"
)

// Project defaults.
const (
	DefaultMode           = "developer"
	DefaultSourceLanguage = "en"
)

// projectExts are tried in order when looking for the project file.
var projectExts = []string{".yaml", ".yml", ".toml"}

// ErrNoProjectFile is returned by FindProjectFile when baseDir has none.
var ErrNoProjectFile = errors.New("no project file found")

// Project holds the settings of one project. Slice fields are never nil
// after LoadProject.
type Project struct {
	// File is the project file that was read, or empty when none exists.
	File    string
	BaseDir string

	Tool           string
	Mode           string
	SourceLanguage string
	Dirs           []string
	Prefixes       []string
	Languages      []string
	Banner         string
	MinToolVersion string
}

// FindProjectFile returns the first txsync.yaml, txsync.yml or txsync.toml in
// baseDir.
func FindProjectFile(baseDir string) (string, error) {
	for _, ext := range projectExts {
		p := filepath.Join(baseDir, branding.ProjectFile()+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoProjectFile, baseDir)
}

// LoadProject reads the project file (file, or the one FindProjectFile
// locates in baseDir) and overlays TXSYNC_* environment variables. A missing
// project file is not an error: the result then carries defaults and
// environment values only. A file that fails schema validation returns
// *InvalidProjectError.
func LoadProject(baseDir, file string) (*Project, error) {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault("tool", "")
	v.SetDefault("mode", DefaultMode)
	v.SetDefault("source_language", DefaultSourceLanguage)
	v.SetDefault("dirs", []string{})
	v.SetDefault("prefixes", []string{})
	v.SetDefault("languages", []string{})
	v.SetDefault("banner", "")
	v.SetDefault("min_tool_version", "")

	if file == "" {
		found, err := FindProjectFile(baseDir)
		if err != nil && !errors.Is(err, ErrNoProjectFile) {
			return nil, err
		}
		file = found
	}

	if file != "" {
		result, err := ValidateFile(file)
		if err != nil {
			return nil, fmt.Errorf("validating %s: %w", file, err)
		}
		if !result.Valid {
			return nil, &InvalidProjectError{Path: file, Issues: result.Issues}
		}

		v.SetConfigFile(file)
		v.SetConfigType(formatOf(file))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading project file %s: %w", file, err)
		}
	}

	return &Project{
		File:           file,
		BaseDir:        baseDir,
		Tool:           v.GetString("tool"),
		Mode:           v.GetString("mode"),
		SourceLanguage: v.GetString("source_language"),
		Dirs:           stringSlice(v, "dirs"),
		Prefixes:       stringSlice(v, "prefixes"),
		Languages:      stringSlice(v, "languages"),
		Banner:         v.GetString("banner"),
		MinToolVersion: v.GetString("min_tool_version"),
	}, nil
}

// stringSlice reads a list setting. Environment values are comma separated,
// e.g. TXSYNC_LANGUAGES=de,fr.
func stringSlice(v *viper.Viper, key string) []string {
	result := []string{}
	for _, item := range v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

// LoadDotenv loads baseDir/.env into the process environment without
// overriding variables that are already set, so credentials such as TX_TOKEN
// reach the translation client. A missing file is ignored.
func LoadDotenv(baseDir string) (bool, error) {
	path := filepath.Join(baseDir, ".env")
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("loading %s: %w", path, err)
	}
	return true, nil
}
