package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages a pull would request",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject()
		if err != nil {
			return err
		}
		u, err := newUpdater(cmd, p, nil, nil)
		if err != nil {
			return err
		}
		for _, lang := range u.Languages {
			fmt.Fprintln(cmd.OutOrStdout(), lang)
		}
		return nil
	},
}

func init() {
	addProjectFlags(languagesCmd)
	rootCmd.AddCommand(languagesCmd)
}
