package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rcl/internal/driver"
	"rcl/internal/project"
)

func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

// parseOptsFor merges persistent flags with the nearest rcl.toml.
// Explicit flags win; manifest values fill the gaps; built-in defaults
// close the rest.
func parseOptsFor(cmd *cobra.Command, path string) (driver.ParseOpts, error) {
	flags := cmd.Root().PersistentFlags()

	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return driver.ParseOpts{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	maxDepth, err := flags.GetUint("max-depth")
	if err != nil {
		return driver.ParseOpts{}, fmt.Errorf("failed to get max-depth flag: %w", err)
	}

	manifest, ok, err := project.LoadNearestManifest(filepath.Dir(path))
	if err != nil {
		return driver.ParseOpts{}, err
	}
	if ok {
		if !flags.Changed("max-diagnostics") && manifest.Parser.MaxDiagnostics > 0 {
			maxDiagnostics = manifest.Parser.MaxDiagnostics
		}
		if !flags.Changed("max-depth") && manifest.Parser.MaxDepth > 0 {
			maxDepth = manifest.Parser.MaxDepth
		}
	}

	return driver.ParseOpts{
		MaxDiagnostics: maxDiagnostics,
		MaxDepth:       maxDepth,
	}, nil
}
