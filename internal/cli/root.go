package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/translations-manager/txsync/internal/branding"
	"github.com/translations-manager/txsync/internal/syncer"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	log     = logrus.New()
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` pulls translations with the Transifex client and keeps the pulled
YAML locale files consistent: every configured language gets a file, and every
file gets the standard header comment and its language as the top-level key.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(cmd.ErrOrStderr())
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		log.SetLevel(logrus.WarnLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each step to stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// ExitCode reports err on w and returns the process exit status for it. A
// failed pull exits with the translation client's own status; its output
// has already been shown.
func ExitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	var pullErr *syncer.PullError
	if errors.As(err, &pullErr) && pullErr.ExitCode > 0 {
		return pullErr.ExitCode
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}
