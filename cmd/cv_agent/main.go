// Package main provides the entry point for the CV analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_agent",
	Short: "CV structured-data extractor",
	Long:  "cv_agent extracts structured candidate data (personal info, work experience, education, skills, custom-field suggestions) from stored CV documents, falling back from AI extraction to rule-based parsing so a result is always produced.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
