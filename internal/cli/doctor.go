package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/translations-manager/txsync/internal/config"
	"github.com/translations-manager/txsync/internal/tx"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the translation setup",
	Long: `Run diagnostic checks on the project: the Transifex client is installed and
recent enough, the project file is valid, and every locale directory exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		problems := 0

		// The project file is validated first so schema issues are listed
		// instead of aborting the load.
		if n := checkProjectFile(out); n > 0 {
			return fmt.Errorf("doctor found %d problem(s)", n)
		}

		p, err := loadProject()
		if err != nil {
			return err
		}

		problems += checkClient(cmd, out, p)
		problems += checkLocaleDirs(out, p)

		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		return nil
	},
}

func init() {
	addProjectFlags(doctorCmd)
	rootCmd.AddCommand(doctorCmd)
}

func checkProjectFile(w io.Writer) int {
	fmt.Fprintln(w, "Project file check:")

	path := flagConfigFile
	if path == "" {
		base := flagBaseDir
		if base == "" {
			base, _ = os.Getwd()
		}
		found, err := config.FindProjectFile(base)
		if errors.Is(err, config.ErrNoProjectFile) {
			fmt.Fprintf(w, "  %s %v (using flags and environment only)\n", missTag(), err)
			return 0
		}
		if err != nil {
			fmt.Fprintf(w, "  %s %v\n", failTag(), err)
			return 1
		}
		path = found
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  %s %v\n", failTag(), err)
		return 1
	}
	if !result.Valid {
		fmt.Fprintf(w, "  %s %s has %d validation issue(s):\n", failTag(), path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "    - %s\n", issue)
		}
		return 1
	}
	fmt.Fprintf(w, "  %s %s is valid\n", okTag(), path)
	return 0
}

func checkClient(cmd *cobra.Command, w io.Writer, p *config.Project) int {
	fmt.Fprintln(w, "Translation client check:")

	client := tx.New(p.Tool, p.Mode, newRunner())
	path, err := client.Preflight()
	if err != nil {
		fmt.Fprintf(w, "  %s %s not found\n", missTag(), client.Tool)
		fmt.Fprint(w, tx.InstallHelp)
		return 1
	}
	fmt.Fprintf(w, "  %s %s found at %s\n", okTag(), client.Tool, path)

	version, err := client.Version(cmd.Context())
	if err != nil {
		fmt.Fprintf(w, "  %s could not read version: %v\n", failTag(), err)
		return 1
	}
	if err := tx.CheckVersion(version, p.MinToolVersion); err != nil {
		fmt.Fprintf(w, "  %s %v\n", failTag(), err)
		return 1
	}
	if p.MinToolVersion != "" {
		fmt.Fprintf(w, "  %s version %s (minimum %s)\n", okTag(), version, p.MinToolVersion)
	} else {
		fmt.Fprintf(w, "  %s version %s\n", okTag(), version)
	}
	return 0
}

func checkLocaleDirs(w io.Writer, p *config.Project) int {
	fmt.Fprintln(w, "Locale directory check:")

	if err := requireLocales(p); err != nil {
		fmt.Fprintf(w, "  %s %v\n", failTag(), err)
		return 1
	}

	missing := 0
	for _, dir := range p.Dirs {
		full := filepath.Join(p.BaseDir, dir)
		info, err := os.Stat(full)
		if err != nil || !info.IsDir() {
			fmt.Fprintf(w, "  %s %s\n", missTag(), dir)
			missing++
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", okTag(), dir)
	}
	return missing
}
