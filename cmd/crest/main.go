package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"crest/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "crest",
	Short: "Crest syntax tree toolkit",
	Long:  `Crest inspects, validates and reconstructs full-fidelity syntax trees produced by crest frontends`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
