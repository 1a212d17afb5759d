package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rcl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rcl",
	Short: "RCL configuration language toolchain",
	Long:  `rcl parses RCL configuration files into lossless syntax trees and reports precise errors`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Uint("max-depth", 0, "maximum expression nesting depth (0 = default)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
