// Package main provides the entry point for the Resume Optimizer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_optimizer",
	Short: "Resume Optimizer HTTP API Server",
	Long:  "Resume Optimizer structures raw resume text, tracks enhancement rounds per content fingerprint, and exports optimized documents as TXT, RTF, or PDF via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
