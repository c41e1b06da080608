package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmateo/resume-optimizer/internal/fingerprint"
	"github.com/jmateo/resume-optimizer/internal/observability"
	"github.com/jmateo/resume-optimizer/internal/parsing"
)

var parseVerbose bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume text file into its structured form",
	Long:  `Parse reads a plain-text resume, applies header and section detection, and prints the structured document plus its content fingerprint as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseVerbose, "verbose", false, "Print a human-readable summary instead of JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	doc := parsing.Parse(string(data))
	if parseVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintResume(doc)
		return nil
	}

	output := map[string]any{
		"resume":       doc,
		"content_hash": fingerprint.Hash(doc.RawContent),
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
