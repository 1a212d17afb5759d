package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rcl/internal/diagfmt"
	"rcl/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.rcl",
	Short: "Parse an RCL source file into a syntax tree",
	Long:  `Parse builds the full concrete syntax tree for an RCL source file, trivia included, and dumps it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
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

	switch format {
	case "pretty":
		return diagfmt.FormatCSTPretty(os.Stdout, result.Tree, result.FileSet)
	case "json":
		return diagfmt.FormatCSTJSON(os.Stdout, result.Tree)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
