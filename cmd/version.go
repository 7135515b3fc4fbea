package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/hooke/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hooke",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "hooke v%s\n", version.Version)
		fmt.Fprintf(out, "Commit: %s  Built: %s\n", version.GitCommit, version.BuildTime)
		fmt.Fprintln(out, "Hooke's Law spring calculator (F = kx)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
