package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/translations-manager/txsync/internal/branding"
	"github.com/translations-manager/txsync/internal/config"
	"github.com/translations-manager/txsync/internal/runner"
	"github.com/translations-manager/txsync/internal/syncer"
	"github.com/translations-manager/txsync/internal/tx"
)

// newRunner is replaced in tests.
var newRunner = func() runner.Runner { return runner.ExecRunner{} }

var (
	flagBaseDir        string
	flagConfigFile     string
	flagDirs           []string
	flagPrefixes       []string
	flagTool           string
	flagMode           string
	flagSourceLanguage string
)

// addProjectFlags registers the flags shared by every command that works on
// a project's locale files.
func addProjectFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&flagBaseDir, "base-dir", "", "Project root that locale directories are relative to (default: current directory)")
	f.StringVar(&flagConfigFile, "config", "", "Project file (default: txsync.yaml, txsync.yml or txsync.toml in the base dir)")
	f.StringArrayVar(&flagDirs, "dir", nil, "Locale directory relative to the base dir (repeatable)")
	f.StringArrayVar(&flagPrefixes, "prefix", nil, "Locale file prefix, e.g. client for client.fr.yml (repeatable)")
	f.StringVar(&flagTool, "tool", "", "Transifex client binary (default: tx)")
	f.StringVar(&flagMode, "mode", "", "Pull mode passed to the client (default: developer)")
	f.StringVar(&flagSourceLanguage, "source-language", "", "Language that is never pulled (default: en)")
}

// loadProject resolves the base dir, loads .env and the project file, and
// applies command-line overrides. Precedence: flags, environment, project
// file, user config (tool only), defaults.
func loadProject() (*config.Project, error) {
	base := flagBaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		base = wd
	}
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolving base dir %s: %w", base, err)
	}

	loaded, err := config.LoadDotenv(base)
	if err != nil {
		return nil, err
	}
	if loaded {
		log.WithField("file", filepath.Join(base, ".env")).Debug("loaded environment file")
	}

	p, err := config.LoadProject(base, flagConfigFile)
	if err != nil {
		return nil, err
	}
	if p.File != "" {
		log.WithField("file", p.File).Debug("loaded project file")
	}

	if len(flagDirs) > 0 {
		p.Dirs = flagDirs
	}
	if len(flagPrefixes) > 0 {
		p.Prefixes = flagPrefixes
	}
	if flagTool != "" {
		p.Tool = flagTool
	}
	if flagMode != "" {
		p.Mode = flagMode
	}
	if flagSourceLanguage != "" {
		p.SourceLanguage = flagSourceLanguage
	}
	if p.Tool == "" {
		user, err := config.LoadUser()
		if err != nil {
			return nil, err
		}
		p.Tool = user.Tool()
	}
	if p.Tool == "" {
		p.Tool = tx.DefaultTool
	}
	return p, nil
}

func requireLocales(p *config.Project) error {
	if len(p.Dirs) == 0 || len(p.Prefixes) == 0 {
		return fmt.Errorf("no locale directories configured: add dirs and prefixes to %s.yaml or pass --dir and --prefix", branding.ProjectFile())
	}
	return nil
}

// newUpdater builds an Updater for p. Positional languages win over the
// project's list. A nil client skips the installation check.
func newUpdater(cmd *cobra.Command, p *config.Project, client *tx.Client, languages []string) (*syncer.Updater, error) {
	if err := requireLocales(p); err != nil {
		return nil, err
	}
	if len(languages) == 0 {
		languages = p.Languages
	}
	return syncer.New(client, syncer.Options{
		BaseDir:        p.BaseDir,
		Dirs:           p.Dirs,
		Prefixes:       p.Prefixes,
		Languages:      languages,
		SourceLanguage: p.SourceLanguage,
		MinToolVersion: p.MinToolVersion,
		Banner:         p.Banner,
		Out:            cmd.OutOrStdout(),
		Log:            log,
	})
}
