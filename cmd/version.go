package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fusionprintdesign/fusionsite/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

var (
	versionFormat string
	versionShort  bool
)

func init() {
	rootCmd.AddCommand(versionCmd)

	addFormatFlag(versionCmd, &versionFormat, formatText, formatText, formatJSON)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show only the version number")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if versionShort {
		fmt.Fprintln(out, version.GetShortVersion())

		return nil
	}

	info := version.GetBuildInfo()
	if versionFormat == formatJSON {
		return writeStructured(out, formatJSON, info)
	}

	fmt.Fprintf(out, "fusionsite %s\n", info.Version)
	fmt.Fprintf(out, "  Git commit: %s\n", info.GitCommit)
	if !info.BuildTime.IsZero() {
		fmt.Fprintf(out, "  Built:      %s\n", info.BuildTime.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Fprintf(out, "  Go version: %s\n", info.GoVersion)
	fmt.Fprintf(out, "  Platform:   %s\n", info.Platform)
	if info.Dirty {
		fmt.Fprintln(out, "  Working tree had uncommitted changes")
	}

	return nil
}
