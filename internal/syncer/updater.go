package syncer

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/translations-manager/txsync/internal/locale"
	"github.com/translations-manager/txsync/internal/tx"
)

// Updater pulls translations for a fixed set of locale files and normalizes
// their headers.
type Updater struct {
	// BaseDir is the directory Dirs are relative to and the working
	// directory for the pull.
	BaseDir   string
	Dirs      []string
	Prefixes  []string
	Languages []string

	Client *tx.Client
	// MinToolVersion, when set, is enforced before pulling.
	MinToolVersion string
	Banner         string

	Out io.Writer
	Log logrus.FieldLogger
}

// Options configures New.
type Options struct {
	BaseDir        string
	Dirs           []string
	Prefixes       []string
	Languages      []string
	SourceLanguage string
	MinToolVersion string
	Banner         string
	Out            io.Writer
	Log            logrus.FieldLogger
}

// New checks that the client is installed and resolves the language list.
// When opts.Languages is empty the languages are discovered from the files
// of the first prefix in the first directory.
//
// A nil client skips the installation check; the returned Updater can then
// only run the steps that do not pull.
func New(client *tx.Client, opts Options) (*Updater, error) {
	if len(opts.Dirs) == 0 || len(opts.Prefixes) == 0 {
		return nil, fmt.Errorf("at least one locale directory and one file prefix are required")
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	if client != nil {
		path, err := client.Preflight()
		if err != nil {
			fmt.Fprint(out, tx.InstallHelp)
			return nil, err
		}
		log.WithField("path", path).Debug("found translation client")
	}

	for _, lang := range opts.Languages {
		if err := locale.ValidateCode(lang); err != nil {
			return nil, err
		}
	}

	var discovered []string
	if len(opts.Languages) == 0 {
		var err error
		discovered, err = locale.DiscoverLanguages(opts.BaseDir, opts.Dirs[0], opts.Prefixes[0])
		if err != nil {
			return nil, fmt.Errorf("discovering languages: %w", err)
		}
	}
	languages := locale.ResolveLanguages(opts.Languages, discovered, opts.SourceLanguage)
	log.WithField("languages", languages).Debug("resolved languages")

	banner := opts.Banner
	if banner == "" {
		banner = locale.DefaultBanner
	}
	if err := locale.CheckBanner(banner); err != nil {
		return nil, err
	}

	return &Updater{
		BaseDir:        opts.BaseDir,
		Dirs:           opts.Dirs,
		Prefixes:       opts.Prefixes,
		Languages:      languages,
		Client:         client,
		MinToolVersion: opts.MinToolVersion,
		Banner:         banner,
		Out:            out,
		Log:            log,
	}, nil
}

// Targets returns every locale file the updater manages.
func (u *Updater) Targets() []locale.Target {
	return locale.Targets(u.BaseDir, u.Dirs, u.Prefixes, u.Languages)
}

// Perform runs the full cycle. A failed pull returns *PullError and leaves
// every header untouched.
func (u *Updater) Perform(ctx context.Context) error {
	if u.Client == nil {
		return fmt.Errorf("no translation client configured")
	}
	if err := u.checkToolVersion(ctx); err != nil {
		return err
	}

	// The client does not create files for languages without translations,
	// so the rewrite step needs a file to write into.
	if err := u.EnsurePlaceholders(); err != nil {
		return err
	}

	fmt.Fprintln(u.Out, "Pulling new translations...")
	fmt.Fprintln(u.Out)

	code, err := u.Client.Pull(ctx, u.BaseDir, u.Languages, u.Out)
	if err != nil {
		return err
	}
	fmt.Fprintln(u.Out)

	if code != 0 {
		fmt.Fprintln(u.Out, "Something failed. Check the output above.")
		fmt.Fprintln(u.Out)
		return &PullError{Tool: u.Client.Tool, ExitCode: code}
	}

	return u.NormalizeHeaders()
}

// EnsurePlaceholders creates an empty file for every target that is missing.
func (u *Updater) EnsurePlaceholders() error {
	for _, t := range u.Targets() {
		created, err := locale.EnsureFile(t.Path)
		if err != nil {
			return err
		}
		if created {
			u.Log.WithField("file", t.Path).Debug("created placeholder")
		}
	}
	return nil
}

// NormalizeHeaders rewrites the header of every target that exists.
func (u *Updater) NormalizeHeaders() error {
	for _, t := range u.Targets() {
		if !locale.Exists(t.Path) {
			u.Log.WithField("file", t.Path).Debug("skipping missing file")
			continue
		}
		if err := locale.RewriteFile(t.Path, t.Language, u.Banner); err != nil {
			return err
		}
		u.Log.WithFields(logrus.Fields{"file": t.Path, "language": t.Language}).Debug("normalized header")
	}
	return nil
}

func (u *Updater) checkToolVersion(ctx context.Context) error {
	if u.MinToolVersion == "" {
		return nil
	}
	version, err := u.Client.Version(ctx)
	if err != nil {
		return fmt.Errorf("checking %s version: %w", u.Client.Tool, err)
	}
	u.Log.WithField("version", version).Debug("translation client version")
	return tx.CheckVersion(version, u.MinToolVersion)
}

// Finding lists the problems Verify found in one file.
type Finding struct {
	Target   locale.Target
	Problems []string
}

// Verify checks every target with locale.Verify and returns the files that
// have problems.
func (u *Updater) Verify() ([]Finding, error) {
	var findings []Finding
	for _, t := range u.Targets() {
		if !locale.Exists(t.Path) {
			findings = append(findings, Finding{Target: t, Problems: []string{"file does not exist"}})
			continue
		}
		problems, err := locale.Verify(t.Path, t.Language)
		if err != nil {
			return nil, err
		}
		if len(problems) > 0 {
			findings = append(findings, Finding{Target: t, Problems: problems})
		}
	}
	return findings, nil
}
