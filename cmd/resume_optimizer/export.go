package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmateo/resume-optimizer/internal/export"
)

var (
	exportFormat string
	exportOut    string
	exportHTML   bool
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export a resume file as TXT, RTF, or PDF",
	Long:  `Export reads resume content from a file and writes the rendered artifact next to it, or to the path given with --out.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "pdf", "Output format: txt, rtf, or pdf")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output path (defaults to optimized-<name>.<ext> beside the input)")
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "Treat the input as editor HTML rather than plain text")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	result, err := export.Export(string(data), exportFormat, exportHTML)
	if err != nil {
		return err
	}

	outPath := exportOut
	if outPath == "" {
		name := export.DownloadName(filepath.Base(args[0]), result.Extension)
		outPath = filepath.Join(filepath.Dir(args[0]), name)
	}

	if err := os.WriteFile(outPath, result.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", outPath, len(result.Data))
	return nil
}
