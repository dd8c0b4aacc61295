package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [languages...]",
	Short: "Rewrite locale file headers without pulling",
	Long: `Create any missing locale files and rewrite the header comment and top-level
language key of each one, without running the Transifex client. Useful after
editing pulled files by hand or after a pull run outside txsync.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject()
		if err != nil {
			return err
		}
		u, err := newUpdater(cmd, p, nil, args)
		if err != nil {
			return err
		}
		if err := u.EnsurePlaceholders(); err != nil {
			return err
		}
		if err := u.NormalizeHeaders(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Normalized %d locale file(s).\n", len(u.Targets()))
		return nil
	},
}

func init() {
	addProjectFlags(normalizeCmd)
	rootCmd.AddCommand(normalizeCmd)
}
