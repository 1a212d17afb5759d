package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rcl/internal/diagfmt"
	"rcl/internal/driver"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] file.rcl",
	Short: "Parse and print an RCL file back out",
	Long: `Render parses a file and writes the tree back as source text.
For a well-formed file the output is byte-identical to the input, which
makes this the round-trip check for the tree's lossless trivia handling`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	opts, err := parseOptsFor(cmd, filePath)
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, opts)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if result.Err != nil {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color: colorEnabled(cmd, os.Stderr),
		})
		return fmt.Errorf("%s: %s", filePath, result.Err.Error())
	}

	return diagfmt.Render(os.Stdout, result.Tree)
}
