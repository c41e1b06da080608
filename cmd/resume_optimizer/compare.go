package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmateo/resume-optimizer/internal/comparison"
	"github.com/jmateo/resume-optimizer/internal/normalize"
	"github.com/jmateo/resume-optimizer/internal/observability"
)

var compareVerbose bool

var compareCmd = &cobra.Command{
	Use:   "compare <original> <modified>",
	Short: "Compare two versions of a resume",
	Long:  `Compare reads two resume text files and reports line-level changes, similarity, and detected improvement areas.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareVerbose, "verbose", false, "Print a human-readable summary instead of JSON")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	original, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	modified, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}

	result := comparison.Compare(
		normalize.Normalize(string(original)),
		normalize.Normalize(string(modified)),
	)

	if compareVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintComparison(&result)
		return nil
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{
		"comparison":              result,
		"has_significant_changes": result.HasSignificantChanges(),
	})
}
