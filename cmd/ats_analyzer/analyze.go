package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/jonathan/ats-analyzer/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one resume against a job description",
	Long:  "Analyze a structured resume JSON file against a job description (text file, HTML file, or URL) and print the scored breakdown with improvement suggestions.",
	RunE:  runAnalyze,
}

var (
	analyzeResume  string
	analyzeJob     string
	analyzeJobURL  string
	analyzeConfig  string
	analyzeAPIKey  string
	analyzeOut     string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text or HTML file")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the full result as JSON to this path")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")

	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfigIfSet(analyzeConfig)
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	flags := config.Config{Job: analyzeJob, JobURL: analyzeJobURL, Verbose: analyzeVerbose}
	merged := flags.MergeWithDefaults(*cfg)

	apiKey, err := resolveAPIKey(analyzeAPIKey, cfg)
	if err != nil {
		return err
	}

	resume, err := loadResume(analyzeResume)
	if err != nil {
		return err
	}

	jobText, err := resolveJobText(ctx, merged.Job, merged.JobURL)
	if err != nil {
		return err
	}

	orchestrator, client, err := buildOrchestrator(ctx, cfg, apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := orchestrator.Analyze(ctx, resume, jobText)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysisResult(result)
	if merged.Verbose {
		printer.PrintSuggestions(result.Suggestions)
	}

	if analyzeOut != "" {
		if err := writeJSON(analyzeOut, result); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Result written to %s\n", analyzeOut)
	}

	return nil
}
