// Package main provides the entry point for the ATS analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_analyzer",
	Short: "ATS resume analysis pipeline",
	Long:  "ats_analyzer scores structured resumes against free-text job descriptions: keyword match, bullet quality, quantified achievements, and section completeness, with LLM-generated improvement suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
