package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"crest/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print crest version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "crest", version.Version)

	if showHash, _ := cmd.Flags().GetBool("hash"); showHash && version.GitCommit != "" {
		fmt.Fprintln(out, "commit:", version.GitCommit)
	}
	if showDate, _ := cmd.Flags().GetBool("date"); showDate && version.BuildDate != "" {
		fmt.Fprintln(out, "built:", version.BuildDate)
	}
	return nil
}
