package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [languages...]",
	Short: "Verify pulled locale files",
	Long: `Check that every locale file exists, opens with a header comment, parses as
YAML, and has its language as the only top-level key. A file holding only the
header comment is fine: that is what a pull leaves for a language without
translations. Exits non-zero when any file has a problem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject()
		if err != nil {
			return err
		}
		u, err := newUpdater(cmd, p, nil, args)
		if err != nil {
			return err
		}

		findings, err := u.Verify()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		total := len(u.Targets())
		if len(findings) == 0 {
			fmt.Fprintf(out, "%s All %d locale file(s) look good.\n", okTag(), total)
			return nil
		}

		for _, f := range findings {
			rel, err := filepath.Rel(p.BaseDir, f.Target.Path)
			if err != nil {
				rel = f.Target.Path
			}
			for _, problem := range f.Problems {
				fmt.Fprintf(out, "%s %s: %s\n", failTag(), rel, problem)
			}
		}
		return fmt.Errorf("%d of %d locale file(s) have problems", len(findings), total)
	},
}

func init() {
	addProjectFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}
