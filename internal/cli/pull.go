package cli

import (
	"github.com/spf13/cobra"
	"github.com/translations-manager/txsync/internal/tx"
)

var pullCmd = &cobra.Command{
	Use:   "pull [languages...]",
	Short: "Pull translations and normalize locale file headers",
	Long: `Pull translations with the Transifex client, then normalize every locale file.

Languages default to the project's list, or to those that already have a file
for the first prefix in the first locale directory. The source language is
never pulled. Missing locale files are created before the pull so that
languages without translations still get a file.

If the client exits with a non-zero status, no file is rewritten and txsync
exits with the same status.

  txsync pull                 # every known language
  txsync pull fr de           # only French and German
  txsync pull --dir config/locales --prefix client --prefix server`,
	RunE: runPull,
}

func init() {
	addProjectFlags(pullCmd)
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}

	client := tx.New(p.Tool, p.Mode, newRunner())
	u, err := newUpdater(cmd, p, client, args)
	if err != nil {
		return err
	}
	return u.Perform(cmd.Context())
}
