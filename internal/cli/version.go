package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/translations-manager/txsync/internal/branding"
	"github.com/translations-manager/txsync/internal/config"
	"github.com/translations-manager/txsync/internal/tx"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the txsync version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

// versionInfo is the build of txsync plus the translation client it would run.
type versionInfo struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	Date        string `json:"date"`
	Tool        string `json:"tool"`
	ToolPath    string `json:"tool_path,omitempty"`
	ToolVersion string `json:"tool_version,omitempty"`
	ToolError   string `json:"tool_error,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print txsync and Transifex client versions",
	Long: `Print the txsync build and the version of the Transifex client it would run.
The client comes from the user config (config set tool ...) or defaults to tx.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		info := versionInfo{Version: buildVersion, Commit: buildCommit, Date: buildDate}
		probeClient(cmd.Context(), &info)

		if versionJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
		if info.ToolError != "" {
			fmt.Fprintf(out, "Transifex client: %s (%s)\n", info.Tool, info.ToolError)
		} else {
			fmt.Fprintf(out, "Transifex client: %s %s (%s)\n", info.Tool, info.ToolVersion, info.ToolPath)
		}
		return nil
	},
}

// probeClient fills the tool fields of info. Failures are recorded, not
// returned: a missing client should not break version output.
func probeClient(ctx context.Context, info *versionInfo) {
	tool := tx.DefaultTool
	if user, err := config.LoadUser(); err != nil {
		log.WithError(err).Debug("ignoring unreadable user config")
	} else if t := user.Tool(); t != "" {
		tool = t
	}
	info.Tool = tool

	client := tx.New(tool, "", newRunner())
	path, err := client.Preflight()
	if err != nil {
		info.ToolError = "not found on PATH"
		return
	}
	info.ToolPath = path

	v, err := client.Version(ctx)
	if err != nil {
		info.ToolError = err.Error()
		return
	}
	info.ToolVersion = v
}
