package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/translations-manager/txsync/internal/branding"
	"github.com/translations-manager/txsync/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd, configGetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long:  configHelp(),
}

// configHelp lists the known keys so the help text cannot drift from
// config.Settings.
func configHelp() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Read and write user settings stored at ~/%s/config.yaml.\n", branding.HomeDir())
	fmt.Fprintf(&b, "Each key can also be set with %s.\n\nKeys:\n", branding.EnvVar("<KEY>"))
	for _, s := range config.Settings {
		fmt.Fprintf(&b, "  %-6s %s\n", s.Key, s.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := config.LoadUser()
		if err != nil {
			return err
		}
		key, value := args[0], args[1]
		if err := user.Set(key, value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		log.WithField("file", user.Path()).Debug("saved user config")
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := config.LoadUser()
		if err != nil {
			return err
		}
		value, err := user.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every setting and its current value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := config.LoadUser()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, s := range config.Settings {
			value, err := user.Get(s.Key)
			if err != nil {
				return err
			}
			if value == "" {
				value = "(unset)"
			}
			fmt.Fprintf(out, "%s = %s\n", s.Key, value)
		}
		return nil
	},
}
